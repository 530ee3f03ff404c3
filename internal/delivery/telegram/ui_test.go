package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
)

func TestBuildAnswerKeyboard_MultipleChoiceRowPerOption(t *testing.T) {
	q, err := entities.NewQuestion(entities.KindMultipleChoice, "", "", "Capital of France?", "Paris", []string{"Lyon", "Nice", "Lille"})
	require.NoError(t, err)
	options := []string{"Nice", "Paris", "Lille", "Lyon"}

	kb := buildAnswerKeyboard(q, options, 7, 2)

	require.Len(t, kb.InlineKeyboard, 4)
	for i, row := range kb.InlineKeyboard {
		require.Len(t, row, 1)
		assert.Equal(t, options[i], row[0].Text)
		require.NotNil(t, row[0].CallbackData)
		assert.Equal(t, buildAnswerCallback(7, 2, i), *row[0].CallbackData)
	}
}

func TestBuildAnswerKeyboard_TrueFalseSingleRow(t *testing.T) {
	q, err := entities.NewQuestion(entities.KindTrueFalse, "", "", "The sky is blue.", "True", []string{"False"})
	require.NoError(t, err)

	kb := buildAnswerKeyboard(q, []string{"False", "True"}, 1, 0)

	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 2)
	assert.Equal(t, "False", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "True", kb.InlineKeyboard[0][1].Text)
}

func TestBuildNewGameKeyboard(t *testing.T) {
	kb := buildNewGameKeyboard()

	require.Len(t, kb.InlineKeyboard, 1)
	require.NotNil(t, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "game:new", *kb.InlineKeyboard[0][0].CallbackData)
}
