package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-bot/internal/opentdb"
)

// Batch is the result of one fetch, handed back to the goroutine that owns
// the GameSession. Err is set when the source could not be used at all.
type Batch struct {
	Questions    []entities.Question
	ResponseCode int
	Skipped      int // records dropped because they could not form a question
	Err          error
}

// FetchBatch performs a single request against src and converts the records.
// It touches no session state and may run on any goroutine.
func FetchBatch(ctx context.Context, src QuestionSource, q opentdb.Query) Batch {
	resp, err := src.FetchQuestions(ctx, q)
	if err != nil {
		var codeErr *opentdb.ResponseCodeError
		if errors.As(err, &codeErr) && codeErr.Code == opentdb.CodeNoResults {
			return Batch{ResponseCode: codeErr.Code}
		}
		return Batch{Err: fmt.Errorf("%w: %w", ErrSourceUnavailable, err)}
	}
	if resp == nil {
		return Batch{Err: fmt.Errorf("%w: empty response", ErrSourceUnavailable)}
	}

	questions, skipped := toQuestions(resp.Results)

	return Batch{
		Questions:    questions,
		ResponseCode: resp.ResponseCode,
		Skipped:      skipped,
	}
}

func toQuestions(records []opentdb.Question) ([]entities.Question, int) {
	out := make([]entities.Question, 0, len(records))
	skipped := 0

	for _, r := range records {
		kind, ok := parseKind(r.Type)
		if !ok {
			skipped++
			continue
		}

		q, err := entities.NewQuestion(kind, r.Difficulty, r.Category, r.Question, r.CorrectAnswer, r.IncorrectAnswers)
		if err != nil {
			skipped++
			continue
		}

		out = append(out, q)
	}

	return out, skipped
}

func parseKind(s string) (entities.QuestionKind, bool) {
	switch entities.QuestionKind(s) {
	case entities.KindMultipleChoice:
		return entities.KindMultipleChoice, true
	case entities.KindTrueFalse:
		return entities.KindTrueFalse, true
	default:
		return "", false
	}
}
