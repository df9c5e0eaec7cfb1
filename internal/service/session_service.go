package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/bot"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/chat"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/match"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/seed"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/simulator"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/log"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/random"
)

var ErrMatchNotFound = errors.New("match not found")

// Options configure the session timers.
type Options struct {
	BotInterval    time.Duration
	BotProbability float64
	SimInterval    time.Duration
	ScoreCap       int
	Random         random.Source
}

type sessionService struct {
	rooms   *chat.RoomStore
	matches *match.Store
	data    seed.Data

	bot *bot.Scheduler
	sim *simulator.Simulator

	mu          sync.RWMutex
	currentRoom string
}

// NewSessionService builds the session state from seed data and wires
// the two schedulers around it.
func NewSessionService(data seed.Data, opts Options) SessionService {
	if opts.Random == nil {
		opts.Random = random.NewSource()
	}

	s := &sessionService{
		rooms:       chat.NewRoomStore(data.Rooms, data.Messages),
		matches:     match.NewStore(data.Matches),
		data:        data,
		currentRoom: domain.RoomGeneral,
	}

	responder := bot.NewResponder(data.Bot, data.BotResponses, opts.Random)
	s.bot = bot.NewScheduler(opts.BotInterval, opts.BotProbability, responder, s.rooms, s.CurrentRoom, opts.Random)
	s.sim = simulator.New(opts.SimInterval, opts.ScoreCap, s.matches, opts.Random)

	return s
}

func (s *sessionService) SendMessage(ctx context.Context, text string) (domain.Message, error) {
	return s.SendMessageTo(ctx, s.CurrentRoom(), text)
}

func (s *sessionService) SendMessageTo(ctx context.Context, roomKey, text string) (domain.Message, error) {
	msg, err := s.rooms.SendMessage(roomKey, s.data.CurrentUser, text)
	if err != nil {
		return domain.Message{}, err
	}

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldRoomKey, roomKey).Str(log.FieldMessageID, msg.ID).Msg("message sent")
	return msg, nil
}

func (s *sessionService) LikeMessage(ctx context.Context, roomKey, messageID string) {
	if !s.rooms.LikeMessage(roomKey, messageID) {
		// Silent no-op; liking a missing message is not an error.
		l := log.Ctx(ctx)
		l.Debug().Str(log.FieldRoomKey, roomKey).Str(log.FieldMessageID, messageID).Msg("like target not found")
	}
}

func (s *sessionService) SelectRoom(ctx context.Context, key string) {
	s.mu.Lock()
	s.currentRoom = key
	s.mu.Unlock()

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldRoomKey, key).Msg("room selected")
}

func (s *sessionService) SelectMatchChannel(ctx context.Context, matchID string) (string, error) {
	if _, ok := s.matches.Get(matchID); !ok {
		return "", ErrMatchNotFound
	}

	s.SelectRoom(ctx, domain.RoomMatch)
	return domain.RoomMatch, nil
}

func (s *sessionService) CurrentRoom() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentRoom
}

func (s *sessionService) Snapshot(ctx context.Context) *domain.SessionSnapshot {
	current := s.CurrentRoom()
	return &domain.SessionSnapshot{
		CurrentUser: s.data.CurrentUser,
		CurrentRoom: current,
		Rooms:       s.rooms.Rooms(),
		Messages:    s.rooms.History(current),
		Matches:     s.matches.List(),
		Live:        s.Live(ctx),
	}
}

func (s *sessionService) Home(ctx context.Context) *domain.HomeView {
	return &domain.HomeView{
		Live:     s.Live(ctx),
		Upcoming: s.matches.Upcoming(),
		News:     s.data.News,
	}
}

func (s *sessionService) Rooms(ctx context.Context) []domain.Room {
	return s.rooms.Rooms()
}

func (s *sessionService) History(ctx context.Context, roomKey string) []domain.Message {
	return s.rooms.History(roomKey)
}

func (s *sessionService) Matches(ctx context.Context) []domain.Match {
	return s.matches.List()
}

func (s *sessionService) Live(ctx context.Context) *domain.LiveMatch {
	m, ok := s.matches.FindLive()
	if !ok {
		return nil
	}
	return &domain.LiveMatch{Match: m, Stats: match.Stats(m)}
}

func (s *sessionService) Users(ctx context.Context) []domain.User {
	out := make([]domain.User, 0, len(s.data.Users)+2)
	out = append(out, s.data.Users...)
	out = append(out, s.data.Bot, s.data.CurrentUser)
	return out
}

func (s *sessionService) News(ctx context.Context) []domain.NewsItem {
	return s.data.News
}

func (s *sessionService) Start(ctx context.Context) {
	s.bot.Start(ctx)

	if _, ok := s.matches.FindLive(); ok {
		s.sim.Start(ctx)
	} else {
		l := log.L()
		l.Info().Msg("no live match, simulator not started")
	}
}

func (s *sessionService) Stop() {
	s.bot.Stop()
	s.sim.Stop()
}
