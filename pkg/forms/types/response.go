package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is a submitted answer set for a form. It is created once and never changed.
// Answers is keyed by the decimal question id; the payload shape depends on the referenced
// question's type at submission time and is not enforced by storage.
type Response struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	Answers     map[string]any     `bson:"answers" json:"answers"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
	UserAgent   string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	IPAddress   string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
}

// Submission is the payload a respondent posts for a form.
type Submission struct {
	FormID  string         `json:"formId"`
	Answers map[string]any `json:"answers"`
}

// CategorizeAnswer maps a category label to the item texts placed into it.
type CategorizeAnswer map[string][]string

// ClozeAnswer maps a blank position to the chosen option text.
type ClozeAnswer map[int]string

// ComprehensionAnswer maps an mcq id to the chosen option index.
type ComprehensionAnswer map[int64]int

// AnswerKey is the key used for a question inside Response.Answers.
func AnswerKey(questionID int64) string {
	return strconv.FormatInt(questionID, 10)
}

// DecodeAnswer converts the stored payload for q into CategorizeAnswer, ClozeAnswer or
// ComprehensionAnswer. It checks the shape only, never whether the answer is correct.
func DecodeAnswer(q Question, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch q.Type() {
	case QUESTION_TYPE_CATEGORIZE:
		a := CategorizeAnswer{}
		if err := decodeAnswerInto(raw, &a); err != nil {
			return nil, fmt.Errorf("question %d: %w", q.ID, err)
		}
		return a, nil
	case QUESTION_TYPE_CLOZE:
		a := ClozeAnswer{}
		if err := decodeAnswerInto(raw, &a); err != nil {
			return nil, fmt.Errorf("question %d: %w", q.ID, err)
		}
		return a, nil
	case QUESTION_TYPE_COMPREHENSION:
		a := ComprehensionAnswer{}
		if err := decodeAnswerInto(raw, &a); err != nil {
			return nil, fmt.Errorf("question %d: %w", q.ID, err)
		}
		return a, nil
	}
	return nil, fmt.Errorf("question %d: %w", q.ID, ErrUnknownQuestionType)
}

func decodeAnswerInto(raw any, target any) error {
	data, err := json.Marshal(normalizeValue(raw))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// normalizeValue turns ordered bson documents into plain maps so they encode as JSON objects.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalizeValue(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalizeValue(e)
		}
		return m
	case primitive.A:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalizeValue(e)
		}
		return a
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalizeValue(e)
		}
		return a
	}
	return v
}
