package responding

import (
	"github.com/case-framework/case-forms/pkg/forms/types"
)

// Session is one respondent filling in a form. Per question state is created on first use.
// Operations that reference unknown questions or the wrong question type are ignored.
type Session struct {
	form *types.Form

	categorize    map[int64]*CategorizePlacement
	cloze         map[int64]*ClozePlacement
	comprehension map[int64]*ComprehensionChoices
}

func NewSession(form *types.Form) *Session {
	return &Session{
		form:          form,
		categorize:    map[int64]*CategorizePlacement{},
		cloze:         map[int64]*ClozePlacement{},
		comprehension: map[int64]*ComprehensionChoices{},
	}
}

func (s *Session) categorizeState(questionID int64) *CategorizePlacement {
	if p, ok := s.categorize[questionID]; ok {
		return p
	}
	q, ok := s.form.QuestionByID(questionID)
	if !ok {
		return nil
	}
	body, ok := q.Categorize()
	if !ok {
		return nil
	}
	p := NewCategorizePlacement(body)
	s.categorize[questionID] = p
	return p
}

func (s *Session) clozeState(questionID int64) *ClozePlacement {
	if p, ok := s.cloze[questionID]; ok {
		return p
	}
	q, ok := s.form.QuestionByID(questionID)
	if !ok {
		return nil
	}
	body, ok := q.Cloze()
	if !ok {
		return nil
	}
	p := NewClozePlacement(body)
	s.cloze[questionID] = p
	return p
}

func (s *Session) comprehensionState(questionID int64) *ComprehensionChoices {
	if c, ok := s.comprehension[questionID]; ok {
		return c
	}
	q, ok := s.form.QuestionByID(questionID)
	if !ok {
		return nil
	}
	body, ok := q.Comprehension()
	if !ok {
		return nil
	}
	c := NewComprehensionChoices(body)
	s.comprehension[questionID] = c
	return c
}

func (s *Session) Place(questionID int64, item string, category string) {
	if p := s.categorizeState(questionID); p != nil {
		p.Place(item, category)
	}
}

func (s *Session) Unplace(questionID int64, item string, category string) {
	if p := s.categorizeState(questionID); p != nil {
		p.Unplace(item, category)
	}
}

// Available lists the items of a categorize question not yet placed.
func (s *Session) Available(questionID int64) []string {
	if p := s.categorizeState(questionID); p != nil {
		return p.Available()
	}
	return nil
}

func (s *Session) Assign(questionID int64, position int, option string) {
	if p := s.clozeState(questionID); p != nil {
		p.Assign(position, option)
	}
}

func (s *Session) Clear(questionID int64, position int) {
	if p := s.clozeState(questionID); p != nil {
		p.Clear(position)
	}
}

func (s *Session) Choose(questionID int64, mcqID int64, index int) {
	if c := s.comprehensionState(questionID); c != nil {
		c.Choose(mcqID, index)
	}
}

// Submission collects the answers of every question the respondent interacted with.
func (s *Session) Submission() types.Submission {
	answers := map[string]any{}
	for id, p := range s.categorize {
		answers[types.AnswerKey(id)] = p.Answer()
	}
	for id, p := range s.cloze {
		answers[types.AnswerKey(id)] = p.Answer()
	}
	for id, c := range s.comprehension {
		answers[types.AnswerKey(id)] = c.Answer()
	}
	return types.Submission{
		FormID:  s.form.ID.Hex(),
		Answers: answers,
	}
}
