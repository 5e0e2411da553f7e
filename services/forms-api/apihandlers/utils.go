package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/case-framework/case-forms/pkg/fault"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"github.com/gin-gonic/gin"
)

// respondWithError answers with the status matching err. Internal details are logged, not returned.
func respondWithError(c *gin.Context, msg string, err error) {
	var vErr *types.ValidationError
	if errors.As(err, &vErr) {
		slog.Debug("validation failed", slog.String("field", vErr.Field), slog.String("reason", vErr.Reason))
		body := gin.H{"error": vErr.Reason, "field": vErr.Field}
		if errors.Is(vErr, types.ErrInvalidQuestion) {
			body["questionId"] = vErr.QuestionID
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	status := fault.HTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		slog.Warn(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "not found"})
	case http.StatusBadRequest:
		slog.Warn(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
	default:
		slog.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
	}
}
