package responding

import "github.com/case-framework/case-forms/pkg/forms/types"

// ClozePlacement tracks the option assigned to each blank. An option text can fill at most one
// blank at a time; options with equal text are interchangeable.
type ClozePlacement struct {
	question *types.ClozeQuestion
	assigned map[int]string
	used     map[string]bool
}

func NewClozePlacement(q *types.ClozeQuestion) *ClozePlacement {
	return &ClozePlacement{
		question: q,
		assigned: map[int]string{},
		used:     map[string]bool{},
	}
}

// Assign puts option into the blank at position, releasing whatever was there before.
// Unknown positions or options, and options already in use, are ignored.
func (p *ClozePlacement) Assign(position int, option string) {
	if position < 0 || position >= len(p.question.Blanks) {
		return
	}
	if !p.question.HasOption(option) || p.used[option] {
		return
	}
	if prev, ok := p.assigned[position]; ok {
		delete(p.used, prev)
	}
	p.assigned[position] = option
	p.used[option] = true
}

// Clear empties the blank at position.
func (p *ClozePlacement) Clear(position int) {
	prev, ok := p.assigned[position]
	if !ok {
		return
	}
	delete(p.assigned, position)
	delete(p.used, prev)
}

func (p *ClozePlacement) IsUsed(option string) bool {
	return p.used[option]
}

func (p *ClozePlacement) Answer() types.ClozeAnswer {
	a := make(types.ClozeAnswer, len(p.assigned))
	for pos, option := range p.assigned {
		a[pos] = option
	}
	return a
}
