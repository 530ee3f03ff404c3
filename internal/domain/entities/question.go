package entities

import (
	"errors"
	"fmt"
	"html"
	"math/rand"
	"strings"
)

// QuestionKind is the answer layout of a trivia question.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple" // one correct answer and three incorrect ones
	KindTrueFalse      QuestionKind = "boolean"  // "True" / "False"
)

// ErrInvalidQuestion is returned when a source record cannot form a playable question.
var ErrInvalidQuestion = errors.New("invalid question")

// Question is a single trivia item as delivered by the question source.
// Text fields are kept HTML-escaped exactly as received; the Decoded* methods
// return display text without touching the stored values.
type Question struct {
	Kind             QuestionKind // multiple choice or true/false
	Difficulty       string       // informational: "easy", "medium", "hard"
	Category         string       // informational, e.g. "Science: Computers"
	Prompt           string       // question text, HTML-escaped
	CorrectAnswer    string       // HTML-escaped
	IncorrectAnswers []string     // HTML-escaped; 1 for true/false, 3 for multiple choice
}

// NewQuestion builds a Question and checks that the correct answer is not
// listed among the incorrect ones.
func NewQuestion(
	kind QuestionKind,
	difficulty, category, prompt, correctAnswer string,
	incorrectAnswers []string,
) (Question, error) {
	if strings.TrimSpace(correctAnswer) == "" {
		return Question{}, fmt.Errorf("%w: empty correct answer", ErrInvalidQuestion)
	}
	if len(incorrectAnswers) == 0 {
		return Question{}, fmt.Errorf("%w: no incorrect answers", ErrInvalidQuestion)
	}

	correct := html.UnescapeString(correctAnswer)
	for _, a := range incorrectAnswers {
		if strings.EqualFold(html.UnescapeString(a), correct) {
			return Question{}, fmt.Errorf("%w: correct answer %q listed as incorrect", ErrInvalidQuestion, correct)
		}
	}

	return Question{
		Kind:             kind,
		Difficulty:       difficulty,
		Category:         category,
		Prompt:           prompt,
		CorrectAnswer:    correctAnswer,
		IncorrectAnswers: append([]string(nil), incorrectAnswers...),
	}, nil
}

// IsMultipleChoice reports whether the question is rendered as a four-option grid.
func (q Question) IsMultipleChoice() bool {
	return q.Kind == KindMultipleChoice
}

// DecodedPrompt returns the question text with HTML entities decoded.
func (q Question) DecodedPrompt() string {
	return html.UnescapeString(q.Prompt)
}

// DecodedCategory returns the category name with HTML entities decoded.
func (q Question) DecodedCategory() string {
	return html.UnescapeString(q.Category)
}

// DecodedCorrectAnswer returns the correct answer with HTML entities decoded.
func (q Question) DecodedCorrectAnswer() string {
	return html.UnescapeString(q.CorrectAnswer)
}

// DecodedIncorrectAnswers returns a new slice of decoded incorrect answers.
func (q Question) DecodedIncorrectAnswers() []string {
	out := make([]string, len(q.IncorrectAnswers))
	for i, a := range q.IncorrectAnswers {
		out[i] = html.UnescapeString(a)
	}
	return out
}

// CheckAnswer compares the candidate with the decoded correct answer, ignoring case.
func (q Question) CheckAnswer(candidate string) bool {
	return strings.EqualFold(q.DecodedCorrectAnswer(), candidate)
}

// IsCorrectOption reports whether options[index] is the decoded correct answer.
// options is the permutation shown to the player.
func (q Question) IsCorrectOption(options []string, index int) bool {
	if index < 0 || index >= len(options) {
		return false
	}
	return options[index] == q.DecodedCorrectAnswer()
}

// ShuffledAnswerOptions returns the decoded correct and incorrect answers in a
// uniformly random order.
func (q Question) ShuffledAnswerOptions() []string {
	options := q.answerOptions()
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// ShuffledAnswerOptionsRand is ShuffledAnswerOptions with a caller-owned source.
func (q Question) ShuffledAnswerOptionsRand(r *rand.Rand) []string {
	options := q.answerOptions()
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func (q Question) answerOptions() []string {
	options := make([]string, 0, 1+len(q.IncorrectAnswers))
	options = append(options, q.DecodedCorrectAnswer())
	options = append(options, q.DecodedIncorrectAnswers()...)
	return options
}

// String implements fmt.Stringer for logging.
func (q Question) String() string {
	return fmt.Sprintf("Question{kind=%s, difficulty=%s, category=%q, prompt=%q}",
		q.Kind, q.Difficulty, q.Category, q.DecodedPrompt())
}
