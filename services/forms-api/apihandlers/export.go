package apihandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/case-framework/case-forms/pkg/apihelpers"
	formresponses "github.com/case-framework/case-forms/pkg/exporter/form-responses"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"github.com/case-framework/case-forms/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) exportResponses(c *gin.Context) {
	query, err := apihelpers.ParseExportQueryFromCtx(c, formresponses.FORMAT_WIDE)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !slices.Contains(formresponses.Formats, query.Format) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format: %s", query.Format)})
		return
	}

	form, err := h.formsDB.GetFormByID(c.Param("formId"))
	if err != nil {
		respondWithError(c, "failed to get form", err)
		return
	}

	filename := fmt.Sprintf("%s_responses%s", form.ID.Hex(), formresponses.FileExtension(query.Format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", formresponses.ContentType(query.Format))
	c.Status(http.StatusOK)

	parser := formresponses.NewResponseParser(form, formresponses.DEFAULT_QUESTION_OPTION_SEP)
	exporter, err := formresponses.NewResponseExporter(parser, c.Writer, query.Format)
	if err != nil {
		slog.Error("failed to create exporter", slog.String("error", err.Error()))
		return
	}

	err = h.formsDB.FindAndExecuteOnResponses(
		c.Request.Context(),
		form.ID,
		query.Since,
		true,
		func(r types.Response) error {
			return exporter.WriteResponse(&r)
		},
	)
	if err != nil {
		slog.Error("export interrupted", slog.String("formID", form.ID.Hex()), slog.String("error", err.Error()))
		return
	}
	if err := exporter.Finish(); err != nil {
		slog.Error("failed to finish export", slog.String("error", err.Error()))
		return
	}

	monitoring.ResponsesExported.WithLabelValues(query.Format).Add(float64(exporter.Count()))
	slog.Info("responses exported", slog.String("formID", form.ID.Hex()), slog.Int("count", exporter.Count()))
}
