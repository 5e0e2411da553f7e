package formresponses

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/case-framework/case-forms/pkg/forms/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testForm() types.Form {
	return types.Form{
		Title: "Quiz",
		Questions: []types.Question{
			{ID: 1, Title: "Categorize Question", Body: &types.CategorizeQuestion{
				Categories: []string{"Fruit", "Vegetable"},
				Items: []types.CategorizeItem{
					{Text: "Apple", CorrectCategory: "Fruit"},
					{Text: "Banana", CorrectCategory: "Fruit"},
				},
			}},
			{ID: 2, Title: "Cloze Question", Body: &types.ClozeQuestion{
				Sentence: "The <u>quick</u> brown <u>fox</u>",
				Blanks: []types.Blank{
					{ID: 0, Text: "quick", Position: 0},
					{ID: 1, Text: "fox", Position: 1},
				},
				Options: []string{"quick", "fox"},
			}},
			{ID: 3, Title: "Comprehension Question", Body: &types.ComprehensionQuestion{
				Passage: "text",
				MCQs: []types.MCQ{
					{ID: 31, Question: "a?", Options: []string{"x", "y", "z"}},
					{ID: 32, Question: "b?", Options: []string{"x", "y"}},
				},
			}},
		},
	}
}

func testResponse() *types.Response {
	id, _ := primitive.ObjectIDFromHex("66f1c0b2a4d3e2f1a0b9c8d7")
	return &types.Response{
		ID:          id,
		SubmittedAt: time.Unix(1700000000, 0),
		UserAgent:   "ua",
		Answers: map[string]any{
			"1":  primitive.M{"Fruit": primitive.A{"Apple", "Banana"}},
			"2":  map[string]any{"0": "quick"},
			"3":  primitive.M{"31": int32(2)},
			"99": "answer to a deleted question",
		},
	}
}

func TestResponseParserColumns(t *testing.T) {
	rp := NewResponseParser(testForm(), "")
	want := []string{"1.Fruit", "1.Vegetable", "2.blank0", "2.blank1", "3.31", "3.32"}
	got := rp.Columns().ResponseColumns
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ResponseColumns = %v, want %v", got, want)
	}
}

func TestResponseExporterWide(t *testing.T) {
	buf := &bytes.Buffer{}
	re, err := NewResponseExporter(NewResponseParser(testForm(), "."), buf, FORMAT_WIDE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.WriteResponse(testResponse()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ID,submitted,userAgent,1.Fruit,1.Vegetable,2.blank0,2.blank1,3.31,3.32\n" +
		"66f1c0b2a4d3e2f1a0b9c8d7,1700000000,ua,Apple; Banana,,quick,,2,\n"
	if buf.String() != want {
		t.Errorf("wide export =\n%s\nwant\n%s", buf.String(), want)
	}
	if re.Count() != 1 {
		t.Errorf("Count() = %d, want 1", re.Count())
	}
}

func TestResponseExporterLong(t *testing.T) {
	buf := &bytes.Buffer{}
	re, err := NewResponseExporter(NewResponseParser(testForm(), "."), buf, FORMAT_LONG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.WriteResponse(testResponse()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header and 6 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "ID,submitted,userAgent,responseSlot,value" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[5] != "66f1c0b2a4d3e2f1a0b9c8d7,1700000000,ua,3.31,2" {
		t.Errorf("unexpected line: %s", lines[5])
	}
}

func TestResponseExporterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	re, err := NewResponseExporter(NewResponseParser(testForm(), "."), buf, FORMAT_JSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := re.WriteResponse(testResponse()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := re.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Responses []map[string]any `json:"responses"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid json: %v\n%s", err, buf.String())
	}
	if len(doc.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(doc.Responses))
	}
	if doc.Responses[0]["2.blank0"] != "quick" {
		t.Errorf("unexpected cloze value: %v", doc.Responses[0]["2.blank0"])
	}
	if _, ok := doc.Responses[0]["99"]; ok {
		t.Errorf("answers to unknown questions should be dropped")
	}
}

func TestResponseExporterEmptyJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	re, err := NewResponseExporter(NewResponseParser(testForm(), "."), buf, FORMAT_JSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != `{"responses":[]}` {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestResponseExporterUnsupportedFormat(t *testing.T) {
	_, err := NewResponseExporter(NewResponseParser(testForm(), "."), &bytes.Buffer{}, "xml")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestValueToStr(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{3, "3"},
		{int64(1700000000), "1700000000"},
		{1.5, "1.5"},
		{[]string{"a", "b"}, "a; b"},
		{map[string]int{"a": 1}, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := valueToStr(tt.input); got != tt.expected {
			t.Errorf("valueToStr(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
