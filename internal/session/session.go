// Package session owns the rounds played in one process and the running
// statistics across them.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/showrank/internal/quiz"
	"github.com/abhisek/showrank/internal/reorder"
	"github.com/abhisek/showrank/internal/scoring"
	"github.com/abhisek/showrank/internal/share"
	"github.com/abhisek/showrank/internal/store"
)

// ErrAlreadySubmitted is returned when a round is submitted twice.
var ErrAlreadySubmitted = errors.New("round already submitted")

// Session holds the quiz, the running stats and the round log.
// It is owned by the UI event loop and is not safe for concurrent use.
type Session struct {
	quiz   *quiz.Quiz
	rounds store.RoundRepo
	logger *zap.Logger
	rng    *rand.Rand
	stats  scoring.Stats
	now    func() time.Time
}

// New creates a Session. rounds, logger and rng may be nil.
func New(q *quiz.Quiz, rounds store.RoundRepo, logger *zap.Logger, rng *rand.Rand) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		quiz:   q,
		rounds: rounds,
		logger: logger,
		rng:    rng,
		now:    time.Now,
	}
}

// Quiz returns the quiz being played.
func (s *Session) Quiz() *quiz.Quiz {
	return s.quiz
}

// Stats returns the statistics accumulated so far.
func (s *Session) Stats() scoring.Stats {
	return s.stats
}

// Rounds returns the round log, or nil when none is attached.
func (s *Session) Rounds() store.RoundRepo {
	return s.rounds
}

// NewRound starts a round on a freshly shuffled ordering.
func (s *Session) NewRound() *Round {
	order := reorder.Shuffle(s.quiz.Reference(), s.rng)
	r := &Round{
		ID:        uuid.New().String(),
		Surface:   reorder.New(order),
		Phase:     PhaseArranging,
		StartedAt: s.now(),
	}
	s.logger.Debug("round started",
		zap.String("round_id", r.ID),
		zap.Strings("order", order.Strings()))
	return r
}

// Submit scores the round's current order and folds the total into the
// session stats. A round can be submitted once.
func (s *Session) Submit(ctx context.Context, r *Round) (scoring.Result, error) {
	if r.Phase == PhaseScored {
		return scoring.Result{}, ErrAlreadySubmitted
	}

	r.Surface = reorder.Reduce(r.Surface, nil, reorder.End{})
	submitted := r.Surface.CurrentOrder()

	res := scoring.Score(s.quiz, submitted)
	r.Result = &res
	r.Phase = PhaseScored
	s.stats = s.stats.Record(res.Total)

	s.logger.Info("round scored",
		zap.String("round_id", r.ID),
		zap.Int("total", res.Total),
		zap.Int("games_played", s.stats.GamesPlayed),
		zap.Int("high_score", s.stats.HighScore))

	if s.rounds != nil {
		points := make([]int, len(res.Items))
		for i, it := range res.Items {
			points[i] = it.Points
		}
		rec := store.RoundRecord{
			RoundID:  r.ID,
			PlayedAt: s.now(),
			Total:    res.Total,
			Ordering: submitted.Strings(),
			Points:   points,
		}
		// The round log is informational; scoring already happened.
		if err := s.rounds.AppendRound(ctx, rec); err != nil {
			s.logger.Warn("failed to record round", zap.String("round_id", r.ID), zap.Error(err))
		}
	}

	return res, nil
}

// SharePayload returns the share message for the running total score.
func (s *Session) SharePayload() share.Payload {
	return share.Payload{
		Title: s.quiz.Title(),
		Text:  share.ScoreText(s.stats.TotalScore),
	}
}
