package authoring

import (
	"sync"
	"time"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

// IDSource hands out question and mcq ids. Ids are millisecond timestamps bumped when two
// requests land in the same millisecond, so they never repeat within one source.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Seed makes sure later ids are strictly greater than id.
func (s *IDSource) Seed(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.last {
		s.last = id
	}
}

// SeedFromForm seeds the source past every id already used in the form.
func (s *IDSource) SeedFromForm(f *types.Form) {
	if f == nil {
		return
	}
	s.Seed(f.MaxID())
}
