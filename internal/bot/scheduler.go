package bot

import (
	"context"
	"time"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/log"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/random"
)

// Router appends a message to a room's log.
type Router interface {
	SendMessage(roomKey string, user domain.User, text string) (domain.Message, error)
}

// Scheduler periodically injects a bot message into the currently
// active room. Each tick fires with the configured probability; bot
// messages never land in rooms the viewer is not looking at.
type Scheduler struct {
	interval    time.Duration
	probability float64
	responder   *Responder
	router      Router
	activeRoom  func() string
	rnd         random.Source
	cancel      context.CancelFunc
}

// NewScheduler wires a scheduler. activeRoom reports the room the
// viewer currently has open.
func NewScheduler(interval time.Duration, probability float64, responder *Responder, router Router, activeRoom func() string, rnd random.Source) *Scheduler {
	return &Scheduler{
		interval:    interval,
		probability: probability,
		responder:   responder,
		router:      router,
		activeRoom:  activeRoom,
		rnd:         rnd,
	}
}

// Start launches the tick loop. Stopped via Stop or context cancel.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go s.loop(ctx)

	l := log.L()
	l.Info().Dur("interval", s.interval).Float64("probability", s.probability).Msg("bot scheduler started")
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Stop cancels the tick loop.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Tick runs one scheduling round: draw, maybe compose, route into the
// active room.
func (s *Scheduler) Tick() {
	if s.rnd.Float64() >= s.probability {
		return
	}

	text, ok := s.responder.Compose()
	if !ok {
		return
	}

	roomKey := s.activeRoom()
	msg, err := s.router.SendMessage(roomKey, s.responder.User(), text)
	if err != nil {
		l := log.L()
		l.Warn().Err(err).Str(log.FieldRoomKey, roomKey).Msg("bot message rejected")
		return
	}

	l := log.L()
	l.Debug().Str(log.FieldRoomKey, roomKey).Str(log.FieldMessageID, msg.ID).Msg("bot message routed")
}
