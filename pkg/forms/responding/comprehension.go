package responding

import "github.com/case-framework/case-forms/pkg/forms/types"

// ComprehensionChoices records the selected option index per mcq. Correctness is not checked.
type ComprehensionChoices struct {
	question *types.ComprehensionQuestion
	chosen   map[int64]int
}

func NewComprehensionChoices(q *types.ComprehensionQuestion) *ComprehensionChoices {
	return &ComprehensionChoices{
		question: q,
		chosen:   map[int64]int{},
	}
}

func (c *ComprehensionChoices) Choose(mcqID int64, index int) {
	m, ok := c.question.MCQByID(mcqID)
	if !ok || index < 0 || index >= len(m.Options) {
		return
	}
	c.chosen[mcqID] = index
}

func (c *ComprehensionChoices) Answer() types.ComprehensionAnswer {
	a := make(types.ComprehensionAnswer, len(c.chosen))
	for id, idx := range c.chosen {
		a[id] = idx
	}
	return a
}
