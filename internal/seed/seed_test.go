package seed

import (
	"testing"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
)

func TestDefault(t *testing.T) {
	data := Default()

	if data.CurrentUser.ID == "" {
		t.Error("current user should be seeded")
	}
	if data.Bot.ID != "bot" {
		t.Errorf("bot id = %q, want %q", data.Bot.ID, "bot")
	}
	if len(data.BotResponses) == 0 {
		t.Error("bot response pool should not be empty")
	}
	if len(data.News) == 0 {
		t.Error("news should be seeded")
	}

	roomKeys := make(map[string]bool)
	for _, r := range data.Rooms {
		roomKeys[r.Key] = true
	}
	for _, key := range []string{domain.RoomGeneral, "csgo", domain.RoomMatch, domain.RoomTactics} {
		if !roomKeys[key] {
			t.Errorf("room %q missing from seed", key)
		}
	}

	liveCount := 0
	for _, m := range data.Matches {
		if m.Status == domain.MatchLive {
			liveCount++
			if m.Score == nil {
				t.Error("live match should carry a score")
			}
		}
	}
	if liveCount != 1 {
		t.Errorf("live matches = %d, want 1", liveCount)
	}

	for key, msgs := range data.Messages {
		if !roomKeys[key] {
			t.Errorf("seed messages target unknown room %q", key)
		}
		seen := make(map[string]bool)
		for _, m := range msgs {
			if seen[m.ID] {
				t.Errorf("duplicate message id %q in room %q", m.ID, key)
			}
			seen[m.ID] = true
		}
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	data, err := Load("/does/not/exist.yaml")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if data.CurrentUser.ID != Default().CurrentUser.ID {
		t.Error("missing seed file should fall back to defaults")
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	data, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(data.Rooms) == 0 {
		t.Error("default rooms should be present")
	}
}
