package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionAnswer = "answer"
	actionGame   = "game"
)

// Game sub-actions.
const (
	gameNew = "new"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// answerCallback identifies one option of one presented question.
type answerCallback struct {
	Generation  uint64
	Cursor      int
	OptionIndex int
}

// buildAnswerCallback builds callback data for choosing an answer option.
func buildAnswerCallback(generation uint64, cursor, optionIndex int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{
			strconv.FormatUint(generation, 10),
			strconv.Itoa(cursor),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

// parseAnswerCallback extracts the answer coordinates from decoded callback data.
func parseAnswerCallback(cd callbackData) (answerCallback, error) {
	if cd.Action != actionAnswer || len(cd.Params) != 3 {
		return answerCallback{}, errMalformedCallback
	}

	gen, err := strconv.ParseUint(cd.Params[0], 10, 64)
	if err != nil {
		return answerCallback{}, errMalformedCallback
	}
	cursor, err := strconv.Atoi(cd.Params[1])
	if err != nil || cursor < 0 {
		return answerCallback{}, errMalformedCallback
	}
	option, err := strconv.Atoi(cd.Params[2])
	if err != nil || option < 0 {
		return answerCallback{}, errMalformedCallback
	}

	return answerCallback{Generation: gen, Cursor: cursor, OptionIndex: option}, nil
}

// buildNewGameCallback builds callback data for starting a new game.
func buildNewGameCallback() string {
	return callbackData{
		Action: actionGame,
		Params: []string{gameNew},
	}.encode()
}
