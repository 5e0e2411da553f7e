package responding

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

func testClozeQuestion() *types.ClozeQuestion {
	return &types.ClozeQuestion{
		Sentence: "I like <u>apple</u> and <u>banana</u>.",
		Blanks: []types.Blank{
			{ID: 0, Text: "apple", Position: 0},
			{ID: 1, Text: "banana", Position: 1},
		},
		Options: []string{"apple", "banana"},
	}
}

func checkClozeInvariants(t *testing.T, q *types.ClozeQuestion, p *ClozePlacement) {
	t.Helper()
	a := p.Answer()
	if len(a) > len(q.Options) {
		t.Fatalf("%d assigned blanks for %d options", len(a), len(q.Options))
	}
	seen := map[string]bool{}
	for pos, option := range a {
		if !p.IsUsed(option) {
			t.Fatalf("option %q at %d is not marked used", option, pos)
		}
		if seen[option] {
			t.Fatalf("option %q assigned twice", option)
		}
		seen[option] = true
	}
}

func TestClozePlacement(t *testing.T) {
	t.Run("reassign releases previous option", func(t *testing.T) {
		q := testClozeQuestion()
		p := NewClozePlacement(q)

		p.Assign(0, "apple")
		p.Assign(0, "banana")
		if p.IsUsed("apple") {
			t.Errorf("apple should be released")
		}
		want := types.ClozeAnswer{0: "banana"}
		if got := p.Answer(); !reflect.DeepEqual(got, want) {
			t.Errorf("Answer() = %v, want %v", got, want)
		}

		p.Assign(1, "apple")
		want = types.ClozeAnswer{0: "banana", 1: "apple"}
		if got := p.Answer(); !reflect.DeepEqual(got, want) {
			t.Errorf("Answer() = %v, want %v", got, want)
		}
	})

	t.Run("used option is not assigned twice", func(t *testing.T) {
		q := testClozeQuestion()
		p := NewClozePlacement(q)
		p.Assign(0, "apple")
		p.Assign(1, "apple")
		want := types.ClozeAnswer{0: "apple"}
		if got := p.Answer(); !reflect.DeepEqual(got, want) {
			t.Errorf("Answer() = %v, want %v", got, want)
		}
	})

	t.Run("ignored input", func(t *testing.T) {
		p := NewClozePlacement(testClozeQuestion())
		p.Assign(2, "apple")
		p.Assign(-1, "apple")
		p.Assign(0, "cherry")
		if got := p.Answer(); len(got) != 0 {
			t.Errorf("Answer() = %v, want empty", got)
		}
	})

	t.Run("clear", func(t *testing.T) {
		p := NewClozePlacement(testClozeQuestion())
		p.Assign(0, "apple")
		p.Clear(0)
		p.Clear(1)
		if p.IsUsed("apple") || len(p.Answer()) != 0 {
			t.Errorf("blank 0 should be empty, got %v", p.Answer())
		}
		p.Assign(1, "apple")
		if got := p.Answer(); got[1] != "apple" {
			t.Errorf("Answer() = %v", got)
		}
	})

	t.Run("no blanks", func(t *testing.T) {
		p := NewClozePlacement(&types.ClozeQuestion{Sentence: "plain", Blanks: []types.Blank{}, Options: []string{}})
		p.Assign(0, "x")
		if got := p.Answer(); len(got) != 0 {
			t.Errorf("Answer() = %v, want empty", got)
		}
	})
}

func TestClozePlacementRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := &types.ClozeQuestion{
		Blanks: []types.Blank{
			{ID: 0, Text: "a", Position: 0},
			{ID: 1, Text: "b", Position: 1},
			{ID: 2, Text: "a", Position: 2},
		},
		Options: []string{"a", "b", "a"},
	}
	options := []string{"a", "b", "c"}

	for run := 0; run < 50; run++ {
		p := NewClozePlacement(q)
		for step := 0; step < 40; step++ {
			pos := rng.Intn(4) - 1
			if rng.Intn(4) == 0 {
				p.Clear(pos)
			} else {
				p.Assign(pos, options[rng.Intn(len(options))])
			}
			checkClozeInvariants(t, q, p)
		}
	}
}
