// Package simulator drives the mocked score progression of the live
// match while one exists.
package simulator

import (
	"context"
	"time"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/log"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/random"
)

// Schedule is the slice of the match store the simulator needs.
type Schedule interface {
	FindLive() (domain.Match, bool)
	ReplaceScore(id string, score domain.Score) bool
}

// Simulator periodically nudges the live match score towards the cap.
// It stops its own loop once no match is live.
type Simulator struct {
	interval time.Duration
	scoreCap int
	schedule Schedule
	rnd      random.Source
	cancel   context.CancelFunc
}

// New creates a simulator over the given schedule.
func New(interval time.Duration, scoreCap int, schedule Schedule, rnd random.Source) *Simulator {
	return &Simulator{
		interval: interval,
		scoreCap: scoreCap,
		schedule: schedule,
		rnd:      rnd,
	}
}

// Start launches the tick loop. The loop exits when the context is
// cancelled or when no live match remains.
func (s *Simulator) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go s.loop(ctx)

	l := log.L()
	l.Info().Dur("interval", s.interval).Int("score_cap", s.scoreCap).Msg("live match simulator started")
}

func (s *Simulator) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.Tick() {
				l := log.L()
				l.Info().Msg("no live match, simulator idle")
				return
			}
		}
	}
}

// Stop cancels the tick loop.
func (s *Simulator) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Tick advances the live match score by one round, if any side is
// still below the cap. Returns false when no match is live. The match
// record is replaced copy-on-write; once both sides sit at the cap the
// tick is a no-op.
func (s *Simulator) Tick() bool {
	m, ok := s.schedule.FindLive()
	if !ok {
		return false
	}

	score := domain.Score{}
	if m.Score != nil {
		score = *m.Score
	}

	if s.rnd.Float64() > 0.5 && score.Furia < s.scoreCap {
		score.Furia++
	} else if score.Opponent < s.scoreCap {
		score.Opponent++
	} else {
		return true
	}

	s.schedule.ReplaceScore(m.ID, score)

	l := log.L()
	l.Debug().
		Str(log.FieldMatchID, m.ID).
		Int("furia", score.Furia).
		Int("opponent", score.Opponent).
		Msg("live score updated")
	return true
}
