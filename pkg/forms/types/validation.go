package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidQuestion = errors.New("invalid question")
	ErrInvalidForm     = errors.New("invalid form")
)

// ValidationError names the offending field. It unwraps to ErrInvalidQuestion or ErrInvalidForm.
type ValidationError struct {
	Kind       error
	QuestionID int64
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Kind == ErrInvalidQuestion {
		return fmt.Sprintf("%s %d: %s: %s", e.Kind, e.QuestionID, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalidQuestion(questionID int64, field string, reason string) error {
	return &ValidationError{
		Kind:       ErrInvalidQuestion,
		QuestionID: questionID,
		Field:      field,
		Reason:     reason,
	}
}

func invalidForm(field string, reason string) error {
	return &ValidationError{
		Kind:   ErrInvalidForm,
		Field:  field,
		Reason: reason,
	}
}

// Validate checks that the question is consistent for its type. It does not modify q.
func (q Question) Validate() error {
	if !q.hasBody() {
		return invalidQuestion(q.ID, "type", "question has no type")
	}
	return q.Body.validate(q.ID)
}

func (c *CategorizeQuestion) validate(questionID int64) error {
	if len(c.Categories) == 0 {
		return invalidQuestion(questionID, "categories", "at least one category is required")
	}
	for i, item := range c.Items {
		if !c.HasCategory(item.CorrectCategory) {
			return invalidQuestion(
				questionID,
				fmt.Sprintf("items[%d].correctCategory", i),
				fmt.Sprintf("category %q does not exist", item.CorrectCategory),
			)
		}
	}
	return nil
}

func (c *ClozeQuestion) validate(questionID int64) error {
	if len(c.Blanks) > 0 && len(c.Options) != len(c.Blanks) {
		return invalidQuestion(
			questionID,
			"options",
			fmt.Sprintf("expected %d options for %d blanks, got %d", len(c.Blanks), len(c.Blanks), len(c.Options)),
		)
	}
	return nil
}

func (c *ComprehensionQuestion) validate(questionID int64) error {
	if len(c.MCQs) == 0 {
		return invalidQuestion(questionID, "mcqs", "at least one multiple choice question is required")
	}
	for i, m := range c.MCQs {
		if m.CorrectAnswer < 0 || m.CorrectAnswer >= len(m.Options) {
			return invalidQuestion(
				questionID,
				fmt.Sprintf("mcqs[%d].correctAnswer", i),
				fmt.Sprintf("index %d is outside of %d options", m.CorrectAnswer, len(m.Options)),
			)
		}
	}
	return nil
}

// Validate checks the form level fields and every question.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return invalidForm("title", "title is required")
	}

	seen := make(map[int64]bool, len(f.Questions))
	for i, q := range f.Questions {
		if seen[q.ID] {
			return invalidForm(fmt.Sprintf("questions[%d].id", i), fmt.Sprintf("duplicate question id %d", q.ID))
		}
		seen[q.ID] = true

		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
