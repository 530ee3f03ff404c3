package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-bot/internal/opentdb"
)

// Phase is the orchestration state of a GameSession.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingQuestions
	PhaseAwaitingAnswer
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingQuestions:
		return "awaiting_questions"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome describes the evaluation of one submitted answer.
type Outcome struct {
	Correct       bool
	CorrectAnswer string // decoded correct answer of the evaluated question
	Finished      bool   // true when that was the last question
}

// GameSession drives one player's game: fetch, play loop and score tally.
//
// A GameSession has a single writer. Only FetchBatch may be called from
// another goroutine; its result must be handed back to the owner and passed
// to ApplyBatch together with the generation returned by RequestBatch.
type GameSession struct {
	source QuestionSource
	query  opentdb.Query
	logger *zap.Logger

	set        *entities.QuestionSet
	correct    int      // correct answers in the current game
	phase      Phase    // current orchestration state
	prevPhase  Phase    // phase to restore when a new-game request fails
	generation uint64   // bumped on every new-game request
	options    []string // permutation presented for the current question
	gameID     string   // correlates log lines of one game
}

// NewGameSession creates an idle session.
func NewGameSession(source QuestionSource, query opentdb.Query, logger *zap.Logger) *GameSession {
	return &GameSession{
		source: source,
		query:  query,
		logger: logger,
		set:    entities.NewQuestionSet(),
		phase:  PhaseIdle,
	}
}

// StartNewGame fetches a fresh batch and starts playing it. It blocks for the
// duration of the request; use RequestBatch/FetchBatch/ApplyBatch to run the
// fetch off the owner goroutine.
func (g *GameSession) StartNewGame(ctx context.Context) (entities.Question, error) {
	gen := g.RequestBatch()
	return g.ApplyBatch(gen, g.FetchBatch(ctx))
}

// RequestBatch marks a new game as requested and returns its generation.
// Any batch for an earlier generation will be rejected by ApplyBatch.
func (g *GameSession) RequestBatch() uint64 {
	if g.phase != PhaseAwaitingQuestions {
		g.prevPhase = g.phase
	}
	g.phase = PhaseAwaitingQuestions
	g.generation++
	return g.generation
}

// FetchBatch fetches one batch using the session's source and query.
// It reads only immutable fields and is safe to call from any goroutine.
func (g *GameSession) FetchBatch(ctx context.Context) Batch {
	return FetchBatch(ctx, g.source, g.query)
}

// ApplyBatch installs a fetched batch and returns the first question.
//
// A batch for a superseded generation yields ErrStaleBatch and changes nothing.
// On failure the previous question set, score and phase stay in effect.
func (g *GameSession) ApplyBatch(generation uint64, b Batch) (entities.Question, error) {
	if generation != g.generation || g.phase != PhaseAwaitingQuestions {
		return entities.Question{}, ErrStaleBatch
	}

	if b.Err != nil {
		g.phase = g.prevPhase
		return entities.Question{}, b.Err
	}

	if err := g.set.Load(b.Questions, b.ResponseCode); err != nil {
		g.phase = g.prevPhase
		return entities.Question{}, fmt.Errorf("%w: %w", ErrNoQuestions, err)
	}

	g.correct = 0
	g.gameID = uuid.NewString()
	g.phase = PhaseAwaitingAnswer
	g.presentCurrent()

	g.logger.Info("game started",
		zap.String("game_id", g.gameID),
		zap.Uint64("generation", generation),
		zap.Int("questions", g.set.Size()),
		zap.Int("skipped", b.Skipped),
	)

	first, _ := g.set.Current()
	return first, nil
}

// CurrentProgress returns the zero-based cursor and the number of questions.
func (g *GameSession) CurrentProgress() (index, total int) {
	return g.set.Cursor(), g.set.Size()
}

// CurrentQuestion returns the question awaiting an answer.
func (g *GameSession) CurrentQuestion() (entities.Question, bool) {
	if g.phase != PhaseAwaitingAnswer {
		return entities.Question{}, false
	}
	return g.set.Current()
}

// CurrentOptions returns the answer options in the order presented to the player.
// The order is fixed until the question is answered.
func (g *GameSession) CurrentOptions() []string {
	return append([]string(nil), g.options...)
}

// SubmitAnswer evaluates candidate against the current question, updates the
// score and advances to the next question.
func (g *GameSession) SubmitAnswer(candidate string) (Outcome, error) {
	if g.phase != PhaseAwaitingAnswer {
		return Outcome{}, ErrNotAwaitingAnswer
	}
	return g.submit(candidate), nil
}

// SubmitAnswerAt is SubmitAnswer guarded by the cursor of the question the
// caller presented. A repeated submission for the same question is refused.
func (g *GameSession) SubmitAnswerAt(index int, candidate string) (Outcome, error) {
	if g.phase != PhaseAwaitingAnswer || index != g.set.Cursor() {
		return Outcome{}, ErrNotAwaitingAnswer
	}
	return g.submit(candidate), nil
}

// SubmitOption answers with the option at position optionIndex of CurrentOptions.
// Selecting by position keeps two options with the same label distinguishable.
func (g *GameSession) SubmitOption(optionIndex int) (Outcome, error) {
	return g.SubmitOptionAt(g.set.Cursor(), optionIndex)
}

// SubmitOptionAt is SubmitOption guarded by the presented question's cursor.
func (g *GameSession) SubmitOptionAt(index, optionIndex int) (Outcome, error) {
	if g.phase != PhaseAwaitingAnswer || index != g.set.Cursor() {
		return Outcome{}, ErrNotAwaitingAnswer
	}
	if optionIndex < 0 || optionIndex >= len(g.options) {
		return Outcome{}, ErrInvalidOption
	}

	q, _ := g.set.Current()
	return g.record(q, q.IsCorrectOption(g.options, optionIndex)), nil
}

func (g *GameSession) submit(candidate string) Outcome {
	q, _ := g.set.Current()
	return g.record(q, g.set.Answer(candidate))
}

func (g *GameSession) record(q entities.Question, correct bool) Outcome {
	if correct {
		g.correct++
	}
	g.set.Advance()

	out := Outcome{
		Correct:       correct,
		CorrectAnswer: q.DecodedCorrectAnswer(),
	}

	if g.set.HasMore() {
		g.presentCurrent()
		return out
	}

	g.options = nil
	g.phase = PhaseFinished
	out.Finished = true

	g.logger.Info("game finished",
		zap.String("game_id", g.gameID),
		zap.Int("correct", g.correct),
		zap.Int("total", g.set.Size()),
	)

	return out
}

func (g *GameSession) presentCurrent() {
	q, ok := g.set.Current()
	if !ok {
		g.options = nil
		return
	}
	g.options = q.ShuffledAnswerOptions()
}

// Abandon stops the current game without a final score and invalidates any
// batch still in flight.
func (g *GameSession) Abandon() {
	g.generation++
	g.phase = PhaseIdle
	g.prevPhase = PhaseIdle
	g.options = nil

	g.logger.Info("game abandoned", zap.String("game_id", g.gameID))
}

// IsFinished reports whether every question of the loaded set has been answered.
func (g *GameSession) IsFinished() bool {
	return !g.set.HasMore()
}

// FinalScore returns the tally of a finished game.
func (g *GameSession) FinalScore() (correct, total int, err error) {
	if !g.IsFinished() {
		return 0, 0, ErrGameNotFinished
	}
	return g.correct, g.set.Size(), nil
}

// Correct returns the number of correct answers so far.
func (g *GameSession) Correct() int {
	return g.correct
}

func (g *GameSession) Phase() Phase {
	return g.phase
}

func (g *GameSession) Generation() uint64 {
	return g.generation
}

func (g *GameSession) GameID() string {
	return g.gameID
}
