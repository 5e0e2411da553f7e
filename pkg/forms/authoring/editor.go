package authoring

import (
	"errors"
	"fmt"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrWrongQuestionType = errors.New("wrong question type")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

const (
	DefaultFormTitle       = "Untitled Form"
	DefaultFormDescription = "Form description..."

	newCategoryLabel = "New Category"
	newItemText      = "New Item"
	newMCQOption     = "New option"
)

// EditorSession holds the form being authored together with the currently selected question.
// All edits go through its methods. It is not safe for concurrent use.
type EditorSession struct {
	form     *types.Form
	ids      *IDSource
	selected int64
}

// NewEditorSession starts editing form. A nil form starts a new, empty one.
func NewEditorSession(form *types.Form) *EditorSession {
	if form == nil {
		form = &types.Form{
			Title:       DefaultFormTitle,
			Description: DefaultFormDescription,
			Questions:   []types.Question{},
		}
	}
	ids := NewIDSource()
	ids.SeedFromForm(form)
	return &EditorSession{
		form: form,
		ids:  ids,
	}
}

func (e *EditorSession) Form() *types.Form {
	return e.form
}

// Selected returns the selected question, if any.
func (e *EditorSession) Selected() (*types.Question, bool) {
	if e.selected == 0 {
		return nil, false
	}
	return e.form.QuestionByID(e.selected)
}

func (e *EditorSession) SelectQuestion(id int64) error {
	if _, ok := e.form.QuestionByID(id); !ok {
		return fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	e.selected = id
	return nil
}

func (e *EditorSession) Validate() error {
	return e.form.Validate()
}

// form level fields

func (e *EditorSession) SetFormTitle(title string) {
	e.form.Title = title
}

func (e *EditorSession) SetFormDescription(description string) {
	e.form.Description = description
}

func (e *EditorSession) SetHeaderImage(url string) {
	e.form.HeaderImage = url
}

// questions

// AddQuestion appends a question with default content and selects it.
func (e *EditorSession) AddQuestion(t types.QuestionType) (types.Question, error) {
	q, err := NewDefaultQuestion(t, e.ids)
	if err != nil {
		return types.Question{}, err
	}
	e.form.Questions = append(e.form.Questions, q)
	e.selected = q.ID
	return q, nil
}

// DeleteQuestion removes the question and clears the selection if it pointed to it.
func (e *EditorSession) DeleteQuestion(id int64) error {
	for i, q := range e.form.Questions {
		if q.ID != id {
			continue
		}
		e.form.Questions = append(e.form.Questions[:i], e.form.Questions[i+1:]...)
		if e.selected == id {
			e.selected = 0
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
}

func (e *EditorSession) SetQuestionTitle(id int64, title string) error {
	q, ok := e.form.QuestionByID(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	q.Title = title
	return nil
}

func (e *EditorSession) categorize(id int64) (*types.CategorizeQuestion, error) {
	q, ok := e.form.QuestionByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	c, ok := q.Categorize()
	if !ok {
		return nil, fmt.Errorf("%w: question %d is %s", ErrWrongQuestionType, id, q.Type())
	}
	return c, nil
}

func (e *EditorSession) cloze(id int64) (*types.ClozeQuestion, error) {
	q, ok := e.form.QuestionByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	c, ok := q.Cloze()
	if !ok {
		return nil, fmt.Errorf("%w: question %d is %s", ErrWrongQuestionType, id, q.Type())
	}
	return c, nil
}

func (e *EditorSession) comprehension(id int64) (*types.ComprehensionQuestion, error) {
	q, ok := e.form.QuestionByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	c, ok := q.Comprehension()
	if !ok {
		return nil, fmt.Errorf("%w: question %d is %s", ErrWrongQuestionType, id, q.Type())
	}
	return c, nil
}

func outOfRange(what string, index int, length int) error {
	return fmt.Errorf("%w: %s %d of %d", ErrIndexOutOfRange, what, index, length)
}

// categorize

func (e *EditorSession) AddCategory(questionID int64) error {
	c, err := e.categorize(questionID)
	if err != nil {
		return err
	}
	c.Categories = append(c.Categories, newCategoryLabel)
	return nil
}

// RenameCategory changes the label at index. Items that referenced the old label follow it.
func (e *EditorSession) RenameCategory(questionID int64, index int, label string) error {
	c, err := e.categorize(questionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.Categories) {
		return outOfRange("category", index, len(c.Categories))
	}
	old := c.Categories[index]
	c.Categories[index] = label

	// a duplicate label still backs the remaining references
	if c.HasCategory(old) {
		return nil
	}
	for i := range c.Items {
		if c.Items[i].CorrectCategory == old {
			c.Items[i].CorrectCategory = label
		}
	}
	return nil
}

// RemoveCategory drops the category at index. Items pointing at it are kept and reported by
// Validate until they are moved.
func (e *EditorSession) RemoveCategory(questionID int64, index int) error {
	c, err := e.categorize(questionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.Categories) {
		return outOfRange("category", index, len(c.Categories))
	}
	c.Categories = append(c.Categories[:index], c.Categories[index+1:]...)
	return nil
}

// AddItem appends a placeholder item assigned to the first category.
func (e *EditorSession) AddItem(questionID int64) error {
	c, err := e.categorize(questionID)
	if err != nil {
		return err
	}
	item := types.CategorizeItem{Text: newItemText}
	if len(c.Categories) > 0 {
		item.CorrectCategory = c.Categories[0]
	}
	c.Items = append(c.Items, item)
	return nil
}

func (e *EditorSession) UpdateItem(questionID int64, index int, item types.CategorizeItem) error {
	c, err := e.categorize(questionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.Items) {
		return outOfRange("item", index, len(c.Items))
	}
	c.Items[index] = item
	return nil
}

func (e *EditorSession) RemoveItem(questionID int64, index int) error {
	c, err := e.categorize(questionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.Items) {
		return outOfRange("item", index, len(c.Items))
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// cloze

// SetClozeSentence stores the sentence and rebuilds blanks and options from its underlines.
// Options edited by hand are replaced.
func (e *EditorSession) SetClozeSentence(questionID int64, sentence string) error {
	c, err := e.cloze(questionID)
	if err != nil {
		return err
	}
	c.Sentence = sentence
	c.Blanks, c.Options = ExtractCloze(sentence)
	return nil
}

func (e *EditorSession) RenameClozeOption(questionID int64, index int, text string) error {
	c, err := e.cloze(questionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.Options) {
		return outOfRange("option", index, len(c.Options))
	}
	c.Options[index] = text
	return nil
}

// comprehension

func (e *EditorSession) SetPassage(questionID int64, passage string) error {
	c, err := e.comprehension(questionID)
	if err != nil {
		return err
	}
	c.Passage = passage
	return nil
}

// AddMCQ appends an empty multiple choice question with four placeholder options.
func (e *EditorSession) AddMCQ(questionID int64) (types.MCQ, error) {
	c, err := e.comprehension(questionID)
	if err != nil {
		return types.MCQ{}, err
	}
	m := newDefaultMCQ(e.ids)
	m.Question = ""
	c.MCQs = append(c.MCQs, m)
	return m, nil
}

func (e *EditorSession) mcq(questionID int64, mcqID int64) (*types.ComprehensionQuestion, *types.MCQ, error) {
	c, err := e.comprehension(questionID)
	if err != nil {
		return nil, nil, err
	}
	m, ok := c.MCQByID(mcqID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: mcq %d in question %d", ErrQuestionNotFound, mcqID, questionID)
	}
	return c, m, nil
}

func (e *EditorSession) RemoveMCQ(questionID int64, mcqID int64) error {
	c, _, err := e.mcq(questionID, mcqID)
	if err != nil {
		return err
	}
	for i := range c.MCQs {
		if c.MCQs[i].ID == mcqID {
			c.MCQs = append(c.MCQs[:i], c.MCQs[i+1:]...)
			break
		}
	}
	return nil
}

func (e *EditorSession) SetMCQQuestion(questionID int64, mcqID int64, text string) error {
	_, m, err := e.mcq(questionID, mcqID)
	if err != nil {
		return err
	}
	m.Question = text
	return nil
}

func (e *EditorSession) SetMCQOption(questionID int64, mcqID int64, index int, text string) error {
	_, m, err := e.mcq(questionID, mcqID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(m.Options) {
		return outOfRange("option", index, len(m.Options))
	}
	m.Options[index] = text
	return nil
}

func (e *EditorSession) AddMCQOption(questionID int64, mcqID int64) error {
	_, m, err := e.mcq(questionID, mcqID)
	if err != nil {
		return err
	}
	m.Options = append(m.Options, newMCQOption)
	return nil
}

func (e *EditorSession) SetCorrectAnswer(questionID int64, mcqID int64, index int) error {
	_, m, err := e.mcq(questionID, mcqID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(m.Options) {
		return outOfRange("option", index, len(m.Options))
	}
	m.CorrectAnswer = index
	return nil
}
