package entities

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capitalQuestion(t *testing.T) Question {
	t.Helper()
	q, err := NewQuestion(KindMultipleChoice, "easy", "Geography",
		"What is the capital of France?", "Paris", []string{"Rome", "Berlin", "Madrid"})
	require.NoError(t, err)
	return q
}

func TestNewQuestion_RejectsCorrectAmongIncorrect(t *testing.T) {
	_, err := NewQuestion(KindMultipleChoice, "easy", "General", "Pick one",
		"A &amp; B", []string{"C", "A & B", "D"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuestion)
}

func TestNewQuestion_RejectsCorrectAmongIncorrectIgnoringCase(t *testing.T) {
	_, err := NewQuestion(KindTrueFalse, "easy", "General", "Sky is blue", "True", []string{"true"})

	assert.ErrorIs(t, err, ErrInvalidQuestion)
}

func TestNewQuestion_RejectsMissingAnswers(t *testing.T) {
	_, err := NewQuestion(KindTrueFalse, "easy", "General", "Sky is blue", "", []string{"False"})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	_, err = NewQuestion(KindTrueFalse, "easy", "General", "Sky is blue", "True", nil)
	assert.ErrorIs(t, err, ErrInvalidQuestion)
}

func TestQuestion_IsMultipleChoice(t *testing.T) {
	assert.True(t, Question{Kind: KindMultipleChoice}.IsMultipleChoice())
	assert.False(t, Question{Kind: KindTrueFalse}.IsMultipleChoice())
}

func TestQuestion_DecodesEntities(t *testing.T) {
	q := Question{
		Kind:             KindMultipleChoice,
		Prompt:           "Who said &quot;I&#039;ll be back&quot; in &lt;The Terminator&gt;?",
		CorrectAnswer:    "Bonnie &amp; Clyde",
		IncorrectAnswers: []string{"Caf&eacute;", "&#x41;BC", "Plain"},
	}

	assert.Equal(t, `Who said "I'll be back" in <The Terminator>?`, q.DecodedPrompt())
	assert.Equal(t, "Bonnie & Clyde", q.DecodedCorrectAnswer())
	assert.Equal(t, []string{"Café", "ABC", "Plain"}, q.DecodedIncorrectAnswers())
}

func TestQuestion_DecodingDoesNotMutateStoredText(t *testing.T) {
	q := Question{
		CorrectAnswer:    "Bonnie &amp; Clyde",
		IncorrectAnswers: []string{"Tom &amp; Jerry"},
	}

	decoded := q.DecodedIncorrectAnswers()
	decoded[0] = "changed"

	assert.Equal(t, "Bonnie &amp; Clyde", q.CorrectAnswer)
	assert.Equal(t, []string{"Tom &amp; Jerry"}, q.IncorrectAnswers)
	assert.Equal(t, q.DecodedCorrectAnswer(), q.DecodedCorrectAnswer())
}

func TestQuestion_CheckAnswer_IgnoresCase(t *testing.T) {
	q := capitalQuestion(t)

	assert.True(t, q.CheckAnswer("Paris"))
	assert.True(t, q.CheckAnswer("PARIS"))
	assert.True(t, q.CheckAnswer("paris"))
	assert.False(t, q.CheckAnswer("Rome"))
	assert.False(t, q.CheckAnswer(" Paris "), "whitespace is not trimmed")
}

func TestQuestion_CheckAnswer_UsesDecodedText(t *testing.T) {
	q := Question{CorrectAnswer: "Bonnie &amp; Clyde"}

	assert.True(t, q.CheckAnswer("bonnie & clyde"))
	assert.False(t, q.CheckAnswer("Bonnie &amp; Clyde"))
}

func TestQuestion_ShuffledAnswerOptions_IsPermutation(t *testing.T) {
	q := capitalQuestion(t)
	want := []string{"Berlin", "Madrid", "Paris", "Rome"}

	for i := 0; i < 200; i++ {
		got := q.ShuffledAnswerOptions()
		require.Len(t, got, 4)

		sorted := append([]string(nil), got...)
		sort.Strings(sorted)
		require.Equal(t, want, sorted)
	}
}

func TestQuestion_ShuffledAnswerOptions_TrueFalse(t *testing.T) {
	q, err := NewQuestion(KindTrueFalse, "easy", "Science", "Water is wet.", "True", []string{"False"})
	require.NoError(t, err)

	got := q.ShuffledAnswerOptions()
	assert.ElementsMatch(t, []string{"True", "False"}, got)
}

func TestQuestion_ShuffledAnswerOptions_Uniform(t *testing.T) {
	q := Question{CorrectAnswer: "a", IncorrectAnswers: []string{"b", "c"}}
	r := rand.New(rand.NewSource(42))

	const trials = 60000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[strings.Join(q.ShuffledAnswerOptionsRand(r), "")]++
	}

	require.Len(t, counts, 6, "every permutation of three answers must appear")
	expected := trials / 6
	for perm, n := range counts {
		assert.InDelta(t, expected, n, 500, "permutation %s drawn %d times", perm, n)
	}
}

func TestQuestion_ShuffledAnswerOptions_VariesAcrossCalls(t *testing.T) {
	q := capitalQuestion(t)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[strings.Join(q.ShuffledAnswerOptions(), "|")] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}

func TestQuestion_IsCorrectOption(t *testing.T) {
	q, err := NewQuestion(KindMultipleChoice, "", "", "Pick", "Tom &amp; Jerry", []string{"Tom", "Jerry", "Spike"})
	require.NoError(t, err)
	options := []string{"Tom", "Tom & Jerry", "Spike", "Jerry"}

	assert.True(t, q.IsCorrectOption(options, 1))
	assert.False(t, q.IsCorrectOption(options, 0))
	assert.False(t, q.IsCorrectOption(options, -1))
	assert.False(t, q.IsCorrectOption(options, len(options)))
}
