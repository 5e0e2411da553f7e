package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	mw "github.com/case-framework/case-forms/pkg/apihelpers/middlewares"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"github.com/case-framework/case-forms/pkg/monitoring"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *HttpEndpoints) AddResponsesAPI(rg *gin.RouterGroup) {
	responsesGroup := rg.Group("/responses")
	{
		submitHandlers := append(h.submissionMiddlewares(), mw.RequirePayload(), h.submitResponse)
		responsesGroup.POST("", submitHandlers...)

		authorGroup := responsesGroup.Group("/form/:formId")
		authorGroup.Use(mw.HasValidAPIKey(h.authorAPIKeys))
		{
			authorGroup.GET("", h.getResponsesForForm)
			authorGroup.GET("/export", h.exportResponses)
		}
	}
}

func (h *HttpEndpoints) submitResponse(c *gin.Context) {
	var req types.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		slog.Warn("invalid form id in submission", slog.String("formID", req.FormID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid formId"})
		return
	}

	answers := req.Answers
	if answers == nil {
		answers = map[string]any{}
	}

	response := types.Response{
		FormID:      formID,
		Answers:     answers,
		SubmittedAt: time.Now(),
		UserAgent:   c.Request.UserAgent(),
		IPAddress:   c.ClientIP(),
	}

	responseID, err := h.formsDB.AddResponse(response)
	if err != nil {
		respondWithError(c, "failed to save response", err)
		return
	}
	if err := h.formsDB.IncrementResponseCount(formID); err != nil {
		respondWithError(c, "failed to update response count", err)
		return
	}
	monitoring.ResponsesSubmitted.Inc()

	slog.Info("response submitted", slog.String("formID", req.FormID), slog.String("responseID", responseID))
	c.JSON(http.StatusCreated, gin.H{"message": "Response submitted successfully"})
}

func (h *HttpEndpoints) getResponsesForForm(c *gin.Context) {
	responses, err := h.formsDB.GetResponsesForForm(c.Param("formId"))
	if err != nil {
		respondWithError(c, "failed to get responses", err)
		return
	}
	c.JSON(http.StatusOK, responses)
}
