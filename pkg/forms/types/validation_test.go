package types

import (
	"errors"
	"testing"
)

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name      string
		question  Question
		wantErr   bool
		wantField string
	}{
		{
			name: "valid categorize",
			question: Question{ID: 1, Body: &CategorizeQuestion{
				Categories: []string{"Fruit", "Vegetable"},
				Items: []CategorizeItem{
					{Text: "Apple", CorrectCategory: "Fruit"},
					{Text: "Carrot", CorrectCategory: "Vegetable"},
				},
			}},
		},
		{
			name:      "categorize without categories",
			question:  Question{ID: 1, Body: &CategorizeQuestion{}},
			wantErr:   true,
			wantField: "categories",
		},
		{
			name: "categorize item with unknown category",
			question: Question{ID: 1, Body: &CategorizeQuestion{
				Categories: []string{"Fruit"},
				Items: []CategorizeItem{
					{Text: "Apple", CorrectCategory: "Fruit"},
					{Text: "Carrot", CorrectCategory: "Vegetable"},
				},
			}},
			wantErr:   true,
			wantField: "items[1].correctCategory",
		},
		{
			name: "categorize with duplicate labels is allowed",
			question: Question{ID: 1, Body: &CategorizeQuestion{
				Categories: []string{"A", "A"},
			}},
		},
		{
			name:     "cloze without blanks",
			question: Question{ID: 2, Body: &ClozeQuestion{Sentence: "no blanks here"}},
		},
		{
			name: "cloze with matching options",
			question: Question{ID: 2, Body: &ClozeQuestion{
				Sentence: "The <u>quick</u> fox",
				Blanks:   []Blank{{ID: 0, Text: "quick", Position: 0}},
				Options:  []string{"quick"},
			}},
		},
		{
			name: "cloze with stale options",
			question: Question{ID: 2, Body: &ClozeQuestion{
				Sentence: "The <u>quick</u> <u>fox</u>",
				Blanks:   []Blank{{ID: 0, Text: "quick", Position: 0}, {ID: 1, Text: "fox", Position: 1}},
				Options:  []string{"quick"},
			}},
			wantErr:   true,
			wantField: "options",
		},
		{
			name: "valid comprehension",
			question: Question{ID: 3, Body: &ComprehensionQuestion{
				Passage: "Paris is the capital of France.",
				MCQs: []MCQ{
					{ID: 10, Question: "Capital of France?", Options: []string{"Paris", "Lyon", "Nice", "Marseille"}, CorrectAnswer: 0},
				},
			}},
		},
		{
			name:      "comprehension without mcqs",
			question:  Question{ID: 3, Body: &ComprehensionQuestion{Passage: "text"}},
			wantErr:   true,
			wantField: "mcqs",
		},
		{
			name: "comprehension correct answer out of range",
			question: Question{ID: 3, Body: &ComprehensionQuestion{
				MCQs: []MCQ{
					{ID: 10, Options: []string{"a", "b"}, CorrectAnswer: 0},
					{ID: 11, Options: []string{"a", "b"}, CorrectAnswer: 2},
				},
			}},
			wantErr:   true,
			wantField: "mcqs[1].correctAnswer",
		},
		{
			name: "comprehension negative correct answer",
			question: Question{ID: 3, Body: &ComprehensionQuestion{
				MCQs: []MCQ{{ID: 10, Options: []string{"a"}, CorrectAnswer: -1}},
			}},
			wantErr:   true,
			wantField: "mcqs[0].correctAnswer",
		},
		{
			name:      "question without body",
			question:  Question{ID: 4},
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "typed nil categorize body",
			question:  Question{ID: 5, Body: (*CategorizeQuestion)(nil)},
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "typed nil cloze body",
			question:  Question{ID: 6, Body: (*ClozeQuestion)(nil)},
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "typed nil comprehension body",
			question:  Question{ID: 7, Body: (*ComprehensionQuestion)(nil)},
			wantErr:   true,
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.question.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error")
			}
			if !errors.Is(err, ErrInvalidQuestion) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidQuestion", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error %v is not a ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Validate() field = %s, want %s", vErr.Field, tt.wantField)
			}
			if vErr.QuestionID != tt.question.ID {
				t.Errorf("Validate() question id = %d, want %d", vErr.QuestionID, tt.question.ID)
			}
		})
	}
}

func TestQuestionValidateDoesNotMutate(t *testing.T) {
	body := &ClozeQuestion{
		Sentence: "<u>a</u>",
		Blanks:   []Blank{{ID: 0, Text: "a", Position: 0}},
		Options:  []string{"a", "b"},
	}
	q := Question{ID: 1, Body: body}
	_ = q.Validate()
	if len(body.Options) != 2 || len(body.Blanks) != 1 {
		t.Errorf("Validate() changed the question: %+v", body)
	}
}

func TestFormValidate(t *testing.T) {
	validQuestion := func(id int64) Question {
		return Question{ID: id, Title: "Cloze", Body: &ClozeQuestion{Sentence: "x"}}
	}

	t.Run("missing title", func(t *testing.T) {
		f := Form{Title: "  "}
		err := f.Validate()
		if !errors.Is(err, ErrInvalidForm) {
			t.Errorf("expected ErrInvalidForm, got %v", err)
		}
	})

	t.Run("duplicate question ids", func(t *testing.T) {
		f := Form{Title: "Quiz", Questions: []Question{validQuestion(1), validQuestion(1)}}
		err := f.Validate()
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "questions[1].id" {
			t.Errorf("unexpected field: %s", vErr.Field)
		}
	})

	t.Run("invalid question is reported", func(t *testing.T) {
		f := Form{Title: "Quiz", Questions: []Question{validQuestion(1), {ID: 2, Body: &CategorizeQuestion{}}}}
		if err := f.Validate(); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion, got %v", err)
		}
	})

	t.Run("valid form", func(t *testing.T) {
		f := Form{Title: "Quiz", Questions: []Question{validQuestion(1), validQuestion(2)}}
		if err := f.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty form", func(t *testing.T) {
		f := Form{Title: "Quiz"}
		if err := f.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
