package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
)

// ErrEmptyMessage is returned when the message text is empty or
// whitespace-only. The HTTP layer degrades it to a silent no-op.
var ErrEmptyMessage = errors.New("message text is empty")

// RoomStore is the room registry and message router. Every room holds
// an independent append-only message log; switching rooms never moves
// or copies messages. Unknown room keys behave as fresh empty rooms.
type RoomStore struct {
	mu    sync.RWMutex
	rooms []domain.Room
	logs  map[string][]domain.Message
}

// NewRoomStore creates a store seeded with room metadata and initial
// logs. Rooms without a seed log start empty.
func NewRoomStore(rooms []domain.Room, seedLogs map[string][]domain.Message) *RoomStore {
	logs := make(map[string][]domain.Message, len(rooms))
	for _, r := range rooms {
		logs[r.Key] = append([]domain.Message(nil), seedLogs[r.Key]...)
	}
	for key, msgs := range seedLogs {
		if _, ok := logs[key]; !ok {
			logs[key] = append([]domain.Message(nil), msgs...)
		}
	}
	return &RoomStore{
		rooms: append([]domain.Room(nil), rooms...),
		logs:  logs,
	}
}

// SendMessage constructs a message with a fresh id and the current
// timestamp and appends it to the room's log.
func (s *RoomStore) SendMessage(roomKey string, user domain.User, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	msg := domain.Message{
		ID:        uuid.New().String(),
		Text:      text,
		User:      user,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	s.logs[roomKey] = append(s.logs[roomKey], msg)
	s.mu.Unlock()

	return msg, nil
}

// LikeMessage increments the like counter of the matching message in
// that room. Returns false when the message is not found.
func (s *RoomStore) LikeMessage(roomKey, messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logs[roomKey]
	for i := range log {
		if log[i].ID == messageID {
			log[i].Likes++
			return true
		}
	}
	return false
}

// History returns a copy of the room's log. Unknown keys yield an
// empty log, never an error.
func (s *RoomStore) History(roomKey string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.logs[roomKey]
	out := make([]domain.Message, len(log))
	copy(out, log)
	return out
}

// Len returns the current length of a room's log.
func (s *RoomStore) Len(roomKey string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs[roomKey])
}

// Rooms returns the registered room metadata in seed order.
func (s *RoomStore) Rooms() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}
