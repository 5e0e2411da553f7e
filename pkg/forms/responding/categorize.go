package responding

import (
	"slices"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

// CategorizePlacement tracks which items a respondent has dropped into which category.
// Every item occurrence of the question is either available or placed in exactly one category.
// Each list is kept in question item order, so the payload only depends on which items sit
// where, not on the order they were moved in.
type CategorizePlacement struct {
	question  *types.CategorizeQuestion
	rank      map[string]int
	available []string
	placed    map[string][]string
}

func NewCategorizePlacement(q *types.CategorizeQuestion) *CategorizePlacement {
	p := &CategorizePlacement{
		question:  q,
		rank:      make(map[string]int, len(q.Items)),
		available: make([]string, 0, len(q.Items)),
		placed:    map[string][]string{},
	}
	for i, item := range q.Items {
		// equal texts are interchangeable, they share the rank of their first occurrence
		if _, ok := p.rank[item.Text]; !ok {
			p.rank[item.Text] = i
		}
		p.available = append(p.available, item.Text)
	}
	return p
}

// Place moves one occurrence of item from the available pool into category. Nothing happens
// if the item is not available or the category does not belong to the question.
func (p *CategorizePlacement) Place(item string, category string) {
	if !p.question.HasCategory(category) {
		return
	}
	var ok bool
	p.available, ok = removeOne(p.available, item)
	if !ok {
		return
	}
	p.placed[category] = p.insertOrdered(p.placed[category], item)
}

// Unplace moves one occurrence of item from category back to the available pool.
func (p *CategorizePlacement) Unplace(item string, category string) {
	items, ok := removeOne(p.placed[category], item)
	if !ok {
		return
	}
	if len(items) == 0 {
		delete(p.placed, category)
	} else {
		p.placed[category] = items
	}
	p.available = p.insertOrdered(p.available, item)
}

func (p *CategorizePlacement) Available() []string {
	return append([]string{}, p.available...)
}

// Answer returns the current placement. Categories without items are left out.
func (p *CategorizePlacement) Answer() types.CategorizeAnswer {
	a := types.CategorizeAnswer{}
	for category, items := range p.placed {
		if len(items) == 0 {
			continue
		}
		a[category] = append([]string{}, items...)
	}
	return a
}

// insertOrdered inserts item after every entry that does not come later in question item order.
func (p *CategorizePlacement) insertOrdered(items []string, item string) []string {
	r := p.rank[item]
	pos := len(items)
	for i, it := range items {
		if p.rank[it] > r {
			pos = i
			break
		}
	}
	return slices.Insert(items, pos, item)
}

func removeOne(items []string, item string) ([]string, bool) {
	for i, it := range items {
		if it == item {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
