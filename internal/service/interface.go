package service

import (
	"context"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
)

// SessionService owns the in-memory session state (rooms, matches,
// active room) and routes every mutation. It is the only writer.
type SessionService interface {
	// SendMessage appends a message from the current user to the
	// active room. Empty text returns chat.ErrEmptyMessage.
	SendMessage(ctx context.Context, text string) (domain.Message, error)
	// SendMessageTo appends to an explicit room instead of the active one.
	SendMessageTo(ctx context.Context, roomKey, text string) (domain.Message, error)
	// LikeMessage increments likes on a message in the given room.
	// Unknown ids are a silent no-op.
	LikeMessage(ctx context.Context, roomKey, messageID string)
	// SelectRoom switches the active room. Unknown keys behave as
	// fresh empty rooms.
	SelectRoom(ctx context.Context, key string)
	// SelectMatchChannel switches the session to the match-discussion
	// room for the given match.
	SelectMatchChannel(ctx context.Context, matchID string) (string, error)
	// CurrentRoom reports the active room key.
	CurrentRoom() string

	Snapshot(ctx context.Context) *domain.SessionSnapshot
	Home(ctx context.Context) *domain.HomeView
	Rooms(ctx context.Context) []domain.Room
	History(ctx context.Context, roomKey string) []domain.Message
	Matches(ctx context.Context) []domain.Match
	Live(ctx context.Context) *domain.LiveMatch
	Users(ctx context.Context) []domain.User
	News(ctx context.Context) []domain.NewsItem

	// Start launches the bot scheduler and, while a live match exists,
	// the score simulator. Stop cancels both.
	Start(ctx context.Context)
	Stop()
}
