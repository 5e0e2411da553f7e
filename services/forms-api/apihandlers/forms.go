package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/case-framework/case-forms/pkg/apihelpers/middlewares"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"github.com/case-framework/case-forms/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddFormsAPI(rg *gin.RouterGroup) {
	formsGroup := rg.Group("/forms")
	{
		formsGroup.GET("", h.getForms)
		formsGroup.GET("/:id", h.getForm)
		formsGroup.POST("", mw.HasValidAPIKey(h.authorAPIKeys), mw.RequirePayload(), h.createForm)
		formsGroup.PUT("/:id", mw.HasValidAPIKey(h.authorAPIKeys), mw.RequirePayload(), h.updateForm)
	}
}

func (h *HttpEndpoints) getForms(c *gin.Context) {
	forms, err := h.formsDB.GetForms()
	if err != nil {
		respondWithError(c, "failed to get forms", err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *HttpEndpoints) getForm(c *gin.Context) {
	form, err := h.formsDB.GetFormByID(c.Param("id"))
	if err != nil {
		respondWithError(c, "failed to get form", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *HttpEndpoints) bindForm(c *gin.Context) (types.Form, bool) {
	var form types.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return form, false
	}
	if form.Questions == nil {
		form.Questions = []types.Question{}
	}

	if h.enforceValidation {
		if err := form.Validate(); err != nil {
			respondWithError(c, "invalid form", err)
			return form, false
		}
	}
	return form, true
}

func (h *HttpEndpoints) createForm(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	created, err := h.formsDB.CreateForm(form)
	if err != nil {
		respondWithError(c, "failed to create form", err)
		return
	}
	monitoring.FormsSaved.WithLabelValues("create").Inc()

	slog.Info("form created", slog.String("formID", created.ID.Hex()), slog.Int("questions", len(created.Questions)))
	c.JSON(http.StatusCreated, created)
}

func (h *HttpEndpoints) updateForm(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	updated, err := h.formsDB.ReplaceForm(c.Param("id"), form)
	if err != nil {
		respondWithError(c, "failed to update form", err)
		return
	}
	monitoring.FormsSaved.WithLabelValues("update").Inc()

	slog.Info("form updated", slog.String("formID", updated.ID.Hex()))
	c.JSON(http.StatusOK, updated)
}
