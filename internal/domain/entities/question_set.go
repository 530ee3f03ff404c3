package entities

import "errors"

// ErrEmptySet is returned by QuestionSet.Load when there is nothing to play.
var ErrEmptySet = errors.New("question set is empty")

// QuestionSet is an ordered batch of questions with a cursor pointing at the
// one currently being played. Cursor == Size() means the set is exhausted.
//
// A QuestionSet is not safe for concurrent mutation.
type QuestionSet struct {
	questions    []Question
	cursor       int
	responseCode int // informational, as reported by the source
}

// NewQuestionSet returns an empty, exhausted set.
func NewQuestionSet() *QuestionSet {
	return &QuestionSet{}
}

// Load replaces the whole collection and rewinds the cursor.
// The set is left untouched when questions is empty.
func (s *QuestionSet) Load(questions []Question, responseCode int) error {
	if len(questions) == 0 {
		return ErrEmptySet
	}

	s.questions = append([]Question(nil), questions...)
	s.cursor = 0
	s.responseCode = responseCode

	return nil
}

// Size returns the number of questions in the set.
func (s *QuestionSet) Size() int {
	return len(s.questions)
}

// Cursor returns the index of the current question.
func (s *QuestionSet) Cursor() int {
	return s.cursor
}

// ResponseCode returns the load outcome recorded by the last Load.
func (s *QuestionSet) ResponseCode() int {
	return s.responseCode
}

// HasMore reports whether a question is still waiting to be answered.
func (s *QuestionSet) HasMore() bool {
	return s.cursor < len(s.questions)
}

// Exhausted is the negation of HasMore.
func (s *QuestionSet) Exhausted() bool {
	return !s.HasMore()
}

// Current returns the question under the cursor; ok is false once exhausted.
func (s *QuestionSet) Current() (Question, bool) {
	if !s.HasMore() {
		return Question{}, false
	}
	return s.questions[s.cursor], true
}

// Advance moves the cursor forward by one. It saturates at Size().
func (s *QuestionSet) Advance() {
	if s.cursor < len(s.questions) {
		s.cursor++
	}
}

// Answer checks the candidate against the current question.
// It returns false when the set is exhausted.
func (s *QuestionSet) Answer(candidate string) bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	return q.CheckAnswer(candidate)
}
