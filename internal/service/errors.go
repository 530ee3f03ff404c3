package service

import "errors"

var (
	// ErrSourceUnavailable covers transport failures, non-2xx statuses,
	// malformed payloads and error response codes. The game does not start.
	ErrSourceUnavailable = errors.New("question source unavailable")

	// ErrNoQuestions is returned when the source answered but nothing is playable.
	ErrNoQuestions = errors.New("no questions available")

	// ErrNotAwaitingAnswer is a caller error: an answer was submitted outside
	// of the AwaitingAnswer phase or for a question that is no longer current.
	ErrNotAwaitingAnswer = errors.New("game is not awaiting an answer")

	// ErrStaleBatch is returned when a batch belongs to a superseded new-game request.
	ErrStaleBatch = errors.New("stale question batch")

	// ErrInvalidOption is returned for an option index outside the presented options.
	ErrInvalidOption = errors.New("invalid option index")

	// ErrGameNotFinished is returned by FinalScore while questions remain.
	ErrGameNotFinished = errors.New("game is not finished")
)
