package formresponses

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

// QuestionTypeHandler maps one question type to export columns.
type QuestionTypeHandler interface {
	GetResponseColumnNames(question types.Question, questionOptionSep string) []string
	ParseResponse(question types.Question, answer any, questionOptionSep string) map[string]interface{}
}

var questionTypeHandlers = map[types.QuestionType]QuestionTypeHandler{
	types.QUESTION_TYPE_CATEGORIZE:    &CategorizeHandler{},
	types.QUESTION_TYPE_CLOZE:         &ClozeHandler{},
	types.QUESTION_TYPE_COMPREHENSION: &ComprehensionHandler{},
}

func questionKey(question types.Question) string {
	return types.AnswerKey(question.ID)
}

func emptyColumns(cols []string) map[string]interface{} {
	res := make(map[string]interface{}, len(cols))
	for _, c := range cols {
		res[c] = ""
	}
	return res
}

// CategorizeHandler exports one column per category holding the placed items.
type CategorizeHandler struct{}

func (h *CategorizeHandler) GetResponseColumnNames(question types.Question, questionOptionSep string) []string {
	body, ok := question.Categorize()
	if !ok {
		return nil
	}
	cols := []string{}
	seen := map[string]bool{}
	for _, cat := range body.Categories {
		if seen[cat] {
			continue
		}
		seen[cat] = true
		cols = append(cols, questionKey(question)+questionOptionSep+cat)
	}
	return cols
}

func (h *CategorizeHandler) ParseResponse(question types.Question, answer any, questionOptionSep string) map[string]interface{} {
	res := emptyColumns(h.GetResponseColumnNames(question, questionOptionSep))

	decoded, err := types.DecodeAnswer(question, answer)
	if err != nil {
		slog.Debug("unexpected categorize answer", slog.Int64("questionID", question.ID), slog.String("error", err.Error()))
		return res
	}
	a, _ := decoded.(types.CategorizeAnswer)
	for cat, items := range a {
		col := questionKey(question) + questionOptionSep + cat
		if _, ok := res[col]; !ok {
			continue
		}
		res[col] = items
	}
	return res
}

// ClozeHandler exports one column per blank holding the chosen option.
type ClozeHandler struct{}

func (h *ClozeHandler) GetResponseColumnNames(question types.Question, questionOptionSep string) []string {
	body, ok := question.Cloze()
	if !ok {
		return nil
	}
	cols := make([]string, 0, len(body.Blanks))
	for _, b := range body.Blanks {
		cols = append(cols, questionKey(question)+questionOptionSep+"blank"+strconv.Itoa(b.Position))
	}
	return cols
}

func (h *ClozeHandler) ParseResponse(question types.Question, answer any, questionOptionSep string) map[string]interface{} {
	res := emptyColumns(h.GetResponseColumnNames(question, questionOptionSep))

	decoded, err := types.DecodeAnswer(question, answer)
	if err != nil {
		slog.Debug("unexpected cloze answer", slog.Int64("questionID", question.ID), slog.String("error", err.Error()))
		return res
	}
	a, _ := decoded.(types.ClozeAnswer)
	for pos, option := range a {
		col := questionKey(question) + questionOptionSep + "blank" + strconv.Itoa(pos)
		if _, ok := res[col]; !ok {
			continue
		}
		res[col] = option
	}
	return res
}

// ComprehensionHandler exports one column per mcq holding the chosen option index.
type ComprehensionHandler struct{}

func (h *ComprehensionHandler) GetResponseColumnNames(question types.Question, questionOptionSep string) []string {
	body, ok := question.Comprehension()
	if !ok {
		return nil
	}
	cols := make([]string, 0, len(body.MCQs))
	for _, m := range body.MCQs {
		cols = append(cols, questionKey(question)+questionOptionSep+strconv.FormatInt(m.ID, 10))
	}
	return cols
}

func (h *ComprehensionHandler) ParseResponse(question types.Question, answer any, questionOptionSep string) map[string]interface{} {
	res := emptyColumns(h.GetResponseColumnNames(question, questionOptionSep))

	decoded, err := types.DecodeAnswer(question, answer)
	if err != nil {
		slog.Debug("unexpected comprehension answer", slog.Int64("questionID", question.ID), slog.String("error", err.Error()))
		return res
	}
	a, _ := decoded.(types.ComprehensionAnswer)
	for mcqID, idx := range a {
		col := questionKey(question) + questionOptionSep + strconv.FormatInt(mcqID, 10)
		if _, ok := res[col]; !ok {
			continue
		}
		res[col] = idx
	}
	return res
}

func joinItems(items []string) string {
	return strings.Join(items, "; ")
}
