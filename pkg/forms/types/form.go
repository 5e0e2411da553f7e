package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form is the stored form document. Questions are embedded and replaced as a whole on save.
// Responses counts submitted responses and is only ever incremented by a submission.
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	HeaderImage string             `bson:"headerImage" json:"headerImage"`
	Questions   []Question         `bson:"questions" json:"questions"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Responses   int64              `bson:"responses" json:"responses"`
}

// QuestionByID returns a pointer into f.Questions, so changes through it modify the form.
func (f *Form) QuestionByID(id int64) (*Question, bool) {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i], true
		}
	}
	return nil, false
}

// MaxID returns the highest question or mcq id used in the form, 0 for an empty form.
func (f *Form) MaxID() int64 {
	var max int64
	for _, q := range f.Questions {
		if q.ID > max {
			max = q.ID
		}
		if c, ok := q.Comprehension(); ok {
			for _, m := range c.MCQs {
				if m.ID > max {
					max = m.ID
				}
			}
		}
	}
	return max
}
