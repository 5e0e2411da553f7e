package types

type QuestionType string

const (
	QUESTION_TYPE_CATEGORIZE    QuestionType = "categorize"
	QUESTION_TYPE_CLOZE         QuestionType = "cloze"
	QUESTION_TYPE_COMPREHENSION QuestionType = "comprehension"
)

// QuestionTypes lists the supported discriminants in editor order.
var QuestionTypes = []QuestionType{
	QUESTION_TYPE_CATEGORIZE,
	QUESTION_TYPE_CLOZE,
	QUESTION_TYPE_COMPREHENSION,
}

func (t QuestionType) IsValid() bool {
	switch t {
	case QUESTION_TYPE_CATEGORIZE, QUESTION_TYPE_CLOZE, QUESTION_TYPE_COMPREHENSION:
		return true
	}
	return false
}

// Question is one entry of a form. The variant specific content lives in Body, which is one of
// *CategorizeQuestion, *ClozeQuestion or *ComprehensionQuestion. The type discriminant is
// derived from Body and never stored separately in memory.
type Question struct {
	ID    int64
	Title string
	Body  QuestionBody
}

// QuestionBody is implemented only by the variant types of this package.
type QuestionBody interface {
	Type() QuestionType
	validate(questionID int64) error
}

func (q Question) Type() QuestionType {
	if q.Body == nil {
		return ""
	}
	return q.Body.Type()
}

// hasBody is false for a nil body and for a typed nil pointer of any variant.
func (q Question) hasBody() bool {
	_, categorize := q.Categorize()
	_, cloze := q.Cloze()
	_, comprehension := q.Comprehension()
	return categorize || cloze || comprehension
}

func (q Question) Categorize() (*CategorizeQuestion, bool) {
	b, ok := q.Body.(*CategorizeQuestion)
	return b, ok && b != nil
}

func (q Question) Cloze() (*ClozeQuestion, bool) {
	b, ok := q.Body.(*ClozeQuestion)
	return b, ok && b != nil
}

func (q Question) Comprehension() (*ComprehensionQuestion, bool) {
	b, ok := q.Body.(*ComprehensionQuestion)
	return b, ok && b != nil
}

// Categorize

type CategorizeItem struct {
	Text            string `bson:"text" json:"text"`
	CorrectCategory string `bson:"correctCategory" json:"correctCategory"`
}

type CategorizeQuestion struct {
	Categories []string
	Items      []CategorizeItem
}

func (*CategorizeQuestion) Type() QuestionType { return QUESTION_TYPE_CATEGORIZE }

// HasCategory reports whether label is one of the question's categories.
func (c *CategorizeQuestion) HasCategory(label string) bool {
	for _, cat := range c.Categories {
		if cat == label {
			return true
		}
	}
	return false
}

// Cloze

// Blank is a fill-in slot of a cloze sentence. ID and Position are both the zero based
// occurrence index of the underlined span and are always equal.
type Blank struct {
	ID       int    `bson:"id" json:"id"`
	Text     string `bson:"text" json:"text"`
	Position int    `bson:"position" json:"position"`
}

type ClozeQuestion struct {
	Sentence string
	Blanks   []Blank
	Options  []string
}

func (*ClozeQuestion) Type() QuestionType { return QUESTION_TYPE_CLOZE }

// HasOption reports whether text is one of the answer options.
func (c *ClozeQuestion) HasOption(text string) bool {
	for _, o := range c.Options {
		if o == text {
			return true
		}
	}
	return false
}

// Comprehension

type MCQ struct {
	ID            int64    `bson:"id" json:"id"`
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
}

type ComprehensionQuestion struct {
	Passage string
	MCQs    []MCQ
}

func (*ComprehensionQuestion) Type() QuestionType { return QUESTION_TYPE_COMPREHENSION }

// MCQByID returns the multiple choice question with the given id.
func (c *ComprehensionQuestion) MCQByID(id int64) (*MCQ, bool) {
	for i := range c.MCQs {
		if c.MCQs[i].ID == id {
			return &c.MCQs[i], true
		}
	}
	return nil, false
}
