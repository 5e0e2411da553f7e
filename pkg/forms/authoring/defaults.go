package authoring

import (
	"fmt"
	"strings"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

const (
	defaultClozeSentence = "The quick brown fox jumps over the lazy dog."
	defaultPassage       = "Enter your passage here..."
	defaultMCQQuestion   = "Sample question?"
)

func defaultQuestionTitle(t types.QuestionType) string {
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:] + " Question"
}

// NewDefaultQuestion returns the starting content the editor shows for a freshly added question.
func NewDefaultQuestion(t types.QuestionType, ids *IDSource) (types.Question, error) {
	if !t.IsValid() {
		return types.Question{}, fmt.Errorf("%w: %q", types.ErrUnknownQuestionType, t)
	}

	q := types.Question{
		ID:    ids.Next(),
		Title: defaultQuestionTitle(t),
	}

	switch t {
	case types.QUESTION_TYPE_CATEGORIZE:
		q.Body = &types.CategorizeQuestion{
			Categories: []string{"Category 1", "Category 2"},
			Items: []types.CategorizeItem{
				{Text: "Item 1", CorrectCategory: "Category 1"},
				{Text: "Item 2", CorrectCategory: "Category 2"},
			},
		}
	case types.QUESTION_TYPE_CLOZE:
		q.Body = &types.ClozeQuestion{
			Sentence: defaultClozeSentence,
			Blanks:   []types.Blank{},
			Options:  []string{},
		}
	case types.QUESTION_TYPE_COMPREHENSION:
		q.Body = &types.ComprehensionQuestion{
			Passage: defaultPassage,
			MCQs:    []types.MCQ{newDefaultMCQ(ids)},
		}
	}
	return q, nil
}

func newDefaultMCQ(ids *IDSource) types.MCQ {
	return types.MCQ{
		ID:            ids.Next(),
		Question:      defaultMCQQuestion,
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectAnswer: 0,
	}
}
