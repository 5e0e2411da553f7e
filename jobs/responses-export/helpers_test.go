package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResponseFileName(t *testing.T) {
	date := time.Date(2024, 3, 5, 14, 0, 0, 0, time.Local)

	tests := []struct {
		format string
		want   string
	}{
		{format: "wide", want: "2024-03-05##responses##abc##wide.csv"},
		{format: "long", want: "2024-03-05##responses##abc##long.csv"},
		{format: "json", want: "2024-03-05##responses##abc##json.json"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got := responseFileName(date, "abc", tt.format)
			if got != tt.want {
				t.Errorf("responseFileName() = %s, want %s", got, tt.want)
			}
			parsed, ok := exportDateFromFileName(got)
			if !ok || !parsed.Equal(startOfDay(date)) {
				t.Errorf("exportDateFromFileName() = %v, %v", parsed, ok)
			}
		})
	}
}

func TestExportDateFromFileName(t *testing.T) {
	for _, name := range []string{"notes.txt", "2024-03-05##other##abc##wide.csv", "yesterday##responses##abc##wide.csv"} {
		if _, ok := exportDateFromFileName(name); ok {
			t.Errorf("exportDateFromFileName(%q) should fail", name)
		}
	}
}

func TestCleanUpOldExports(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)

	files := []struct {
		name string
		keep bool
	}{
		{name: responseFileName(now, "a", "wide"), keep: true},
		{name: responseFileName(now.AddDate(0, 0, -3), "a", "wide"), keep: true},
		{name: responseFileName(now.AddDate(0, 0, -4), "a", "wide"), keep: false},
		{name: responseFileName(now.AddDate(0, 0, -30), "b", "json"), keep: false},
		{name: "readme.txt", keep: true},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte("x"), 0644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	removed, err := cleanUpOldExports(dir, 3, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	for _, f := range files {
		if got := fileExists(filepath.Join(dir, f.name)); got != f.keep {
			t.Errorf("%s exists = %v, want %v", f.name, got, f.keep)
		}
	}
}
