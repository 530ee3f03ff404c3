package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
)

func TestFormatQuestion(t *testing.T) {
	q, err := entities.NewQuestion(
		entities.KindMultipleChoice,
		"easy",
		"Entertainment: Film",
		"Who&#039;s afraid of the big bad wolf?",
		"Nobody",
		[]string{"Everyone", "Pigs", "Red"},
	)
	require.NoError(t, err)

	text := formatQuestion(q, 1, 10)

	assert.Contains(t, text, "*Question 1/10*")
	assert.Contains(t, text, "_Entertainment: Film · Easy_")
	assert.Contains(t, text, "Who's afraid of the big bad wolf?")
	assert.NotContains(t, text, "&#039;")
}

func TestFormatQuestion_EscapesMarkdown(t *testing.T) {
	q, err := entities.NewQuestion(entities.KindTrueFalse, "", "", "2+2=4.", "True", []string{"False"})
	require.NoError(t, err)

	text := formatQuestion(q, 2, 2)

	assert.Contains(t, text, `2\+2\=4\.`)
}

func TestFormatOutcome(t *testing.T) {
	assert.Equal(t, "Correct!", formatOutcome(true, "Paris"))
	assert.Equal(t, "Incorrect. The correct answer was: Paris", formatOutcome(false, "Paris"))
}

func TestFormatFinalScore(t *testing.T) {
	assert.Equal(t, "End of Game! You did 7/10", formatFinalScore(7, 10))
}

func TestBuildProgressBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]", buildProgressBar(5, 10, 10))
	assert.Equal(t, "[██████████]", buildProgressBar(12, 10, 10))
	assert.Equal(t, "░░░", buildProgressBar(0, 0, 3))
}

func TestFormatProgress(t *testing.T) {
	text := formatProgress(3, 10, 2)

	assert.Contains(t, text, "Question 4/10")
	assert.Contains(t, text, "Score: 2/3")
}
