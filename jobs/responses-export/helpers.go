package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	formresponses "github.com/case-framework/case-forms/pkg/exporter/form-responses"
)

const fileNameSep = "##"

// startOfDay returns the start time of the given date (00:00:00)
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func responseFileName(date time.Time, formID string, format string) string {
	dateStr := date.Format("2006-01-02")
	suffix := format + formresponses.FileExtension(format)
	return strings.Join([]string{dateStr, "responses", formID, suffix}, fileNameSep)
}

// exportDateFromFileName reads the date prefix written by responseFileName.
func exportDateFromFileName(name string) (time.Time, bool) {
	parts := strings.Split(name, fileNameSep)
	if len(parts) != 4 || parts[1] != "responses" {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", parts[0], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("could not stat file", slog.String("file", filename), slog.String("error", err.Error()))
		}
		return false
	}
	return !info.IsDir()
}

// cleanUpOldExports removes export files dated before now minus retentionDays. Other files are left alone.
func cleanUpOldExports(dir string, retentionDays int, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading export dir: %w", err)
	}

	cutoff := startOfDay(now).AddDate(0, 0, -retentionDays)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		date, ok := exportDateFromFileName(entry.Name())
		if !ok || !date.Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			slog.Error("failed to remove old export", slog.String("file", entry.Name()), slog.String("error", err.Error()))
			continue
		}
		removed++
	}
	return removed, nil
}
