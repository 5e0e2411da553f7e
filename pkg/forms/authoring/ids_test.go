package authoring

import (
	"sync"
	"testing"
	"time"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time {
		return time.UnixMilli(ms)
	}
}

func TestIDSourceNext(t *testing.T) {
	t.Run("uses current time", func(t *testing.T) {
		s := &IDSource{now: fixedClock(1000)}
		if got := s.Next(); got != 1000 {
			t.Errorf("Next() = %d, want 1000", got)
		}
	})

	t.Run("same millisecond", func(t *testing.T) {
		s := &IDSource{now: fixedClock(1000)}
		first := s.Next()
		second := s.Next()
		if second != first+1 {
			t.Errorf("Next() = %d, want %d", second, first+1)
		}
	})

	t.Run("clock going backwards", func(t *testing.T) {
		s := &IDSource{now: fixedClock(5000)}
		s.Next()
		s.now = fixedClock(10)
		if got := s.Next(); got != 5001 {
			t.Errorf("Next() = %d, want 5001", got)
		}
	})

	t.Run("seeded from form", func(t *testing.T) {
		s := &IDSource{now: fixedClock(100)}
		s.SeedFromForm(&types.Form{Questions: []types.Question{
			{ID: 500, Body: &types.ComprehensionQuestion{MCQs: []types.MCQ{{ID: 900}}}},
		}})
		if got := s.Next(); got != 901 {
			t.Errorf("Next() = %d, want 901", got)
		}
	})

	t.Run("concurrent use", func(t *testing.T) {
		s := &IDSource{now: fixedClock(1)}
		var mu sync.Mutex
		seen := map[int64]bool{}
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					id := s.Next()
					mu.Lock()
					if seen[id] {
						t.Errorf("id %d handed out twice", id)
					}
					seen[id] = true
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		if len(seen) != 1000 {
			t.Errorf("expected 1000 ids, got %d", len(seen))
		}
	})
}

func TestNewDefaultQuestion(t *testing.T) {
	ids := &IDSource{now: fixedClock(1)}

	t.Run("categorize", func(t *testing.T) {
		q, err := NewDefaultQuestion(types.QUESTION_TYPE_CATEGORIZE, ids)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Title != "Categorize Question" {
			t.Errorf("unexpected title: %s", q.Title)
		}
		c, ok := q.Categorize()
		if !ok {
			t.Fatalf("unexpected type: %s", q.Type())
		}
		if len(c.Categories) != 2 || c.Categories[1] != "Category 2" {
			t.Errorf("unexpected categories: %v", c.Categories)
		}
		if len(c.Items) != 2 || c.Items[1].Text != "Item 2" || c.Items[1].CorrectCategory != "Category 2" {
			t.Errorf("unexpected items: %v", c.Items)
		}
		if err := q.Validate(); err != nil {
			t.Errorf("default question should be valid: %v", err)
		}
	})

	t.Run("cloze", func(t *testing.T) {
		q, err := NewDefaultQuestion(types.QUESTION_TYPE_CLOZE, ids)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c, ok := q.Cloze()
		if !ok {
			t.Fatalf("unexpected type: %s", q.Type())
		}
		if c.Sentence != "The quick brown fox jumps over the lazy dog." {
			t.Errorf("unexpected sentence: %s", c.Sentence)
		}
		if c.Blanks == nil || len(c.Blanks) != 0 || c.Options == nil || len(c.Options) != 0 {
			t.Errorf("expected empty blanks and options, got %v %v", c.Blanks, c.Options)
		}
	})

	t.Run("comprehension", func(t *testing.T) {
		q, err := NewDefaultQuestion(types.QUESTION_TYPE_COMPREHENSION, ids)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c, ok := q.Comprehension()
		if !ok {
			t.Fatalf("unexpected type: %s", q.Type())
		}
		if c.Passage != "Enter your passage here..." {
			t.Errorf("unexpected passage: %s", c.Passage)
		}
		if len(c.MCQs) != 1 {
			t.Fatalf("expected one mcq, got %d", len(c.MCQs))
		}
		m := c.MCQs[0]
		if m.Question != "Sample question?" || len(m.Options) != 4 || m.Options[3] != "Option D" || m.CorrectAnswer != 0 {
			t.Errorf("unexpected mcq: %+v", m)
		}
		if m.ID == q.ID {
			t.Errorf("mcq id should differ from question id")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewDefaultQuestion("essay", ids)
		if err == nil {
			t.Error("expected error")
		}
	})
}
