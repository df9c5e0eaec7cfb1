package chat

import (
	"errors"
	"testing"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
)

var testUser = domain.User{ID: "123", Name: "FURIA_Fan"}

func newTestStore() *RoomStore {
	rooms := []domain.Room{
		{Key: domain.RoomGeneral, Name: "Chat Geral"},
		{Key: "csgo", Name: "CS:GO"},
		{Key: domain.RoomMatch, Name: "Discussão da Partida"},
		{Key: domain.RoomTactics, Name: "Táticas e Análises"},
	}
	return NewRoomStore(rooms, nil)
}

func TestRoomStore_SendMessage(t *testing.T) {
	s := newTestStore()

	msg, err := s.SendMessage(domain.RoomGeneral, testUser, "gg wp")
	if err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if msg.ID == "" {
		t.Error("SendMessage() message ID should not be empty")
	}
	if msg.Text != "gg wp" {
		t.Errorf("SendMessage() text = %q, want %q", msg.Text, "gg wp")
	}
	if msg.User.ID != testUser.ID {
		t.Errorf("SendMessage() user = %q, want %q", msg.User.ID, testUser.ID)
	}
	if msg.Timestamp == 0 {
		t.Error("SendMessage() timestamp should be set")
	}

	if got := s.Len(domain.RoomGeneral); got != 1 {
		t.Errorf("log length = %d, want 1", got)
	}
}

func TestRoomStore_SendMessage_EmptyText(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SendMessage(domain.RoomGeneral, testUser, tt.text)
			if !errors.Is(err, ErrEmptyMessage) {
				t.Errorf("SendMessage(%q) error = %v, want ErrEmptyMessage", tt.text, err)
			}
		})
	}

	for _, key := range []string{domain.RoomGeneral, "csgo", domain.RoomMatch, domain.RoomTactics} {
		if got := s.Len(key); got != 0 {
			t.Errorf("room %q log length = %d, want 0", key, got)
		}
	}
}

func TestRoomStore_RoomIsolation(t *testing.T) {
	s := newTestStore()

	if _, err := s.SendMessage("csgo", testUser, "rush b"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if got := s.Len("csgo"); got != 1 {
		t.Errorf("csgo log length = %d, want 1", got)
	}
	for _, key := range []string{domain.RoomGeneral, domain.RoomMatch, domain.RoomTactics} {
		if got := s.Len(key); got != 0 {
			t.Errorf("room %q log length = %d, want 0 (message leaked)", key, got)
		}
	}
}

func TestRoomStore_UnknownRoomKey(t *testing.T) {
	s := newTestStore()

	if got := s.History("valorant-2"); len(got) != 0 {
		t.Errorf("History(unknown) length = %d, want 0", len(got))
	}

	// Sending to an unknown key treats it as a fresh room.
	if _, err := s.SendMessage("valorant-2", testUser, "hello"); err != nil {
		t.Fatalf("SendMessage(unknown room) unexpected error: %v", err)
	}
	if got := s.Len("valorant-2"); got != 1 {
		t.Errorf("fresh room log length = %d, want 1", got)
	}
}

func TestRoomStore_LikeMessage(t *testing.T) {
	s := newTestStore()

	first, _ := s.SendMessage(domain.RoomGeneral, testUser, "first")
	s.SendMessage(domain.RoomGeneral, testUser, "second")

	if !s.LikeMessage(domain.RoomGeneral, first.ID) {
		t.Fatal("LikeMessage() = false, want true")
	}
	if !s.LikeMessage(domain.RoomGeneral, first.ID) {
		t.Fatal("LikeMessage() second like = false, want true")
	}

	log := s.History(domain.RoomGeneral)
	if log[0].Likes != 2 {
		t.Errorf("liked message likes = %d, want 2", log[0].Likes)
	}
	if log[1].Likes != 0 {
		t.Errorf("other message likes = %d, want 0", log[1].Likes)
	}
}

func TestRoomStore_LikeMessage_NotFound(t *testing.T) {
	s := newTestStore()
	msg, _ := s.SendMessage(domain.RoomGeneral, testUser, "hello")

	if s.LikeMessage(domain.RoomGeneral, "does-not-exist") {
		t.Error("LikeMessage(missing id) = true, want false")
	}
	// Liking in the wrong room is also a no-op.
	if s.LikeMessage("csgo", msg.ID) {
		t.Error("LikeMessage(wrong room) = true, want false")
	}

	log := s.History(domain.RoomGeneral)
	if log[0].Likes != 0 {
		t.Errorf("likes = %d, want 0 after failed likes", log[0].Likes)
	}
}

func TestRoomStore_SeedLogs(t *testing.T) {
	rooms := []domain.Room{{Key: domain.RoomGeneral, Name: "Chat Geral"}}
	seed := map[string][]domain.Message{
		domain.RoomGeneral: {{ID: "1", Text: "Bem-vindo!", User: testUser, Timestamp: 1}},
	}
	s := NewRoomStore(rooms, seed)

	if got := s.Len(domain.RoomGeneral); got != 1 {
		t.Fatalf("seeded log length = %d, want 1", got)
	}

	// The store must own its copy of the seed.
	seed[domain.RoomGeneral][0].Text = "mutated"
	if got := s.History(domain.RoomGeneral)[0].Text; got != "Bem-vindo!" {
		t.Errorf("seed mutation leaked into store: %q", got)
	}
}

func TestRoomStore_HistoryReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.SendMessage(domain.RoomGeneral, testUser, "original")

	log := s.History(domain.RoomGeneral)
	log[0].Text = "mutated"

	if got := s.History(domain.RoomGeneral)[0].Text; got != "original" {
		t.Errorf("History() exposed internal state, text = %q", got)
	}
}
