package apihandlers

import (
	"context"
	"net/http"
	"time"

	mw "github.com/case-framework/case-forms/pkg/apihelpers/middlewares"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"github.com/case-framework/case-forms/pkg/storage"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const healthyMessage = "Server is running!"

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": healthyMessage})
}

// FormsStore is the persistence the handlers need. Implemented by forms.FormsDBService.
type FormsStore interface {
	CreateForm(form types.Form) (types.Form, error)
	GetForms() ([]types.Form, error)
	GetFormByID(id string) (types.Form, error)
	ReplaceForm(id string, form types.Form) (types.Form, error)
	IncrementResponseCount(formID primitive.ObjectID) error

	AddResponse(response types.Response) (string, error)
	GetResponsesForForm(formID string) ([]types.Response, error)
	FindAndExecuteOnResponses(
		ctx context.Context,
		formID primitive.ObjectID,
		since time.Time,
		returnOnError bool,
		fn func(r types.Response) error,
	) error
}

type HttpEndpoints struct {
	formsDB           FormsStore
	storage           storage.Provider
	authorAPIKeys     []string
	enforceValidation bool
	maxUploadSize     int64
	submissionLimiter *mw.RateLimiter
}

func NewHTTPHandler(
	formsDB FormsStore,
	storageProvider storage.Provider,
	authorAPIKeys []string,
	enforceValidation bool,
	maxUploadSize int64,
	submissionLimiter *mw.RateLimiter,
) *HttpEndpoints {
	return &HttpEndpoints{
		formsDB:           formsDB,
		storage:           storageProvider,
		authorAPIKeys:     authorAPIKeys,
		enforceValidation: enforceValidation,
		maxUploadSize:     maxUploadSize,
		submissionLimiter: submissionLimiter,
	}
}

// submissionMiddlewares returns the rate limiter if one is configured.
func (h *HttpEndpoints) submissionMiddlewares() []gin.HandlerFunc {
	if h.submissionLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{h.submissionLimiter.Middleware()}
}
