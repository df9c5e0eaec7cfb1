package match

import "github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"

// Mock values for the parts of the live view the simulator does not
// drive, matching the seeded page state.
const (
	defaultMap      = "Mirage"
	defaultTimeLeft = "1:15"
)

var defaultPlayersAlive = domain.Score{Furia: 3, Opponent: 2}

// Stats synthesizes the ephemeral live view from a live match. The
// round is derived from the score so the widget advances with the
// simulator; players-alive and time-left keep their mock values.
// Recomputed on every call, never stored.
func Stats(m domain.Match) domain.LiveStats {
	score := domain.Score{}
	if m.Score != nil {
		score = *m.Score
	}

	mapName := m.Map
	if mapName == "" {
		mapName = defaultMap
	}

	return domain.LiveStats{
		GameID:       m.ID,
		CurrentMap:   mapName,
		CurrentRound: score.Furia + score.Opponent + 1,
		PlayersAlive: defaultPlayersAlive,
		Score:        score,
		TimeLeft:     defaultTimeLeft,
	}
}
