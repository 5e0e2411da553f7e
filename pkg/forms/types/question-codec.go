package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrUnknownQuestionType = errors.New("unknown question type")

// questionWire is the flat document layout shared by JSON and BSON. It carries the fields of
// every variant; only the ones matching Type are read.
type questionWire struct {
	ID    int64        `bson:"id" json:"id"`
	Type  QuestionType `bson:"type" json:"type"`
	Title string       `bson:"title" json:"title"`

	Categories []string         `bson:"categories,omitempty" json:"categories,omitempty"`
	Items      []CategorizeItem `bson:"items,omitempty" json:"items,omitempty"`

	Sentence string   `bson:"sentence,omitempty" json:"sentence,omitempty"`
	Blanks   []Blank  `bson:"blanks,omitempty" json:"blanks,omitempty"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`

	Passage string `bson:"passage,omitempty" json:"passage,omitempty"`
	MCQs    []MCQ  `bson:"mcqs,omitempty" json:"mcqs,omitempty"`
}

// The encoders use one struct per variant so empty lists are written as [] and a question
// never carries fields of another variant.
type categorizeWire struct {
	ID         int64            `bson:"id" json:"id"`
	Type       QuestionType     `bson:"type" json:"type"`
	Title      string           `bson:"title" json:"title"`
	Categories []string         `bson:"categories" json:"categories"`
	Items      []CategorizeItem `bson:"items" json:"items"`
}

type clozeWire struct {
	ID       int64        `bson:"id" json:"id"`
	Type     QuestionType `bson:"type" json:"type"`
	Title    string       `bson:"title" json:"title"`
	Sentence string       `bson:"sentence" json:"sentence"`
	Blanks   []Blank      `bson:"blanks" json:"blanks"`
	Options  []string     `bson:"options" json:"options"`
}

type comprehensionWire struct {
	ID      int64        `bson:"id" json:"id"`
	Type    QuestionType `bson:"type" json:"type"`
	Title   string       `bson:"title" json:"title"`
	Passage string       `bson:"passage" json:"passage"`
	MCQs    []MCQ        `bson:"mcqs" json:"mcqs"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	w, err := q.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return q.fromWire(w)
}

func (q Question) MarshalBSON() ([]byte, error) {
	w, err := q.toWire()
	if err != nil {
		return nil, err
	}
	return bson.Marshal(w)
}

func (q *Question) UnmarshalBSON(data []byte) error {
	var w questionWire
	if err := bson.Unmarshal(data, &w); err != nil {
		return err
	}
	return q.fromWire(w)
}

func (q Question) toWire() (any, error) {
	if !q.hasBody() {
		return nil, fmt.Errorf("question %d: %w", q.ID, ErrUnknownQuestionType)
	}

	switch b := q.Body.(type) {
	case *CategorizeQuestion:
		return categorizeWire{
			ID:         q.ID,
			Type:       QUESTION_TYPE_CATEGORIZE,
			Title:      q.Title,
			Categories: orEmpty(b.Categories),
			Items:      orEmpty(b.Items),
		}, nil
	case *ClozeQuestion:
		return clozeWire{
			ID:       q.ID,
			Type:     QUESTION_TYPE_CLOZE,
			Title:    q.Title,
			Sentence: b.Sentence,
			Blanks:   orEmpty(b.Blanks),
			Options:  orEmpty(b.Options),
		}, nil
	case *ComprehensionQuestion:
		mcqs := make([]MCQ, len(b.MCQs))
		for i, m := range b.MCQs {
			m.Options = orEmpty(m.Options)
			mcqs[i] = m
		}
		return comprehensionWire{
			ID:      q.ID,
			Type:    QUESTION_TYPE_COMPREHENSION,
			Title:   q.Title,
			Passage: b.Passage,
			MCQs:    mcqs,
		}, nil
	}
	return nil, fmt.Errorf("question %d: %w", q.ID, ErrUnknownQuestionType)
}

func (q *Question) fromWire(w questionWire) error {
	q.ID = w.ID
	q.Title = w.Title

	switch w.Type {
	case QUESTION_TYPE_CATEGORIZE:
		q.Body = &CategorizeQuestion{
			Categories: orEmpty(w.Categories),
			Items:      orEmpty(w.Items),
		}
	case QUESTION_TYPE_CLOZE:
		q.Body = &ClozeQuestion{
			Sentence: w.Sentence,
			Blanks:   orEmpty(w.Blanks),
			Options:  orEmpty(w.Options),
		}
	case QUESTION_TYPE_COMPREHENSION:
		for i := range w.MCQs {
			w.MCQs[i].Options = orEmpty(w.MCQs[i].Options)
		}
		q.Body = &ComprehensionQuestion{
			Passage: w.Passage,
			MCQs:    orEmpty(w.MCQs),
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, w.Type)
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
