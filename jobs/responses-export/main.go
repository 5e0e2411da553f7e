package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	formresponses "github.com/case-framework/case-forms/pkg/exporter/form-responses"
	"github.com/case-framework/case-forms/pkg/forms/types"
)

func main() {
	slog.Info("Starting responses export job")
	start := time.Now()
	ctx := context.Background()

	forms, err := formsToExport()
	if err != nil {
		slog.Error("Error loading forms", slog.String("error", err.Error()))
	}

	var since time.Time
	if exportWindow > 0 {
		since = start.Add(-exportWindow)
	}

	for _, form := range forms {
		filename := filepath.Join(conf.ExportPath, responseFileName(start, form.ID.Hex(), conf.ResponseExports.ExportFormat))
		if fileExists(filename) && !conf.ResponseExports.OverrideOld {
			slog.Debug("export file already exists, skipping", slog.String("file", filename))
			continue
		}

		count, err := exportFormResponses(ctx, form, since, filename)
		if err != nil {
			slog.Error("Error exporting responses", slog.String("formID", form.ID.Hex()), slog.String("error", err.Error()))
			continue
		}
		slog.Info("Exported responses", slog.String("formID", form.ID.Hex()), slog.Int("count", count), slog.String("file", filename))
	}

	removed, err := cleanUpOldExports(conf.ExportPath, conf.ResponseExports.RetentionDays, start)
	if err != nil {
		slog.Error("Error cleaning up old exports", slog.String("error", err.Error()))
	} else if removed > 0 {
		slog.Info("Removed old exports", slog.Int("count", removed))
	}

	if err := formsDBService.Close(); err != nil {
		slog.Error("Error closing DB connection", slog.String("error", err.Error()))
	}
	slog.Info("Responses export job completed", slog.String("duration", time.Since(start).String()))
}

func formsToExport() ([]types.Form, error) {
	if len(conf.ResponseExports.FormIDs) == 0 {
		return formsDBService.GetForms()
	}

	forms := []types.Form{}
	for _, id := range conf.ResponseExports.FormIDs {
		form, err := formsDBService.GetFormByID(id)
		if err != nil {
			slog.Error("Error loading form", slog.String("formID", id), slog.String("error", err.Error()))
			continue
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// exportFormResponses writes into a temporary file first so an interrupted run never leaves a partial export.
func exportFormResponses(ctx context.Context, form types.Form, since time.Time, filename string) (int, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), ".export-*")
	if err != nil {
		return 0, err
	}
	tmpName := tmpFile.Name()
	defer os.Remove(tmpName)

	parser := formresponses.NewResponseParser(form, conf.ResponseExports.Separator)
	exporter, err := formresponses.NewResponseExporter(parser, tmpFile, conf.ResponseExports.ExportFormat)
	if err != nil {
		tmpFile.Close()
		return 0, err
	}

	err = formsDBService.FindAndExecuteOnResponses(ctx, form.ID, since, true, func(r types.Response) error {
		return exporter.WriteResponse(&r)
	})
	if err != nil {
		tmpFile.Close()
		return 0, fmt.Errorf("reading responses: %w", err)
	}
	if err := exporter.Finish(); err != nil {
		tmpFile.Close()
		return 0, err
	}
	if err := tmpFile.Close(); err != nil {
		return 0, err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return 0, err
	}
	return exporter.Count(), nil
}
