package domain

// MatchStatus represents the lifecycle state of a match.
type MatchStatus string

const (
	MatchUpcoming MatchStatus = "upcoming"
	MatchLive     MatchStatus = "live"
	MatchFinished MatchStatus = "finished"
)

// Score holds the per-side counters of a match. Also used for the
// players-alive pair in LiveStats, which has the same shape.
type Score struct {
	Furia    int `json:"furia" mapstructure:"furia"`
	Opponent int `json:"opponent" mapstructure:"opponent"`
}

// Match is one entry of the match schedule. Score is present only for
// live and finished matches.
type Match struct {
	ID         string      `json:"id" mapstructure:"id"`
	Opponent   string      `json:"opponent" mapstructure:"opponent"`
	Tournament string      `json:"tournament" mapstructure:"tournament"`
	Date       string      `json:"date" mapstructure:"date"`
	Time       string      `json:"time" mapstructure:"time"`
	Status     MatchStatus `json:"status" mapstructure:"status"`
	Map        string      `json:"map,omitempty" mapstructure:"map"`
	Score      *Score      `json:"score,omitempty" mapstructure:"score"`
}

// Clone returns a deep copy, so holders of the previous value keep a
// stable snapshot when the schedule is updated copy-on-write.
func (m Match) Clone() Match {
	out := m
	if m.Score != nil {
		sc := *m.Score
		out.Score = &sc
	}
	return out
}

// LiveStats is the ephemeral view synthesized per request from a live
// match. It is never stored.
type LiveStats struct {
	GameID       string `json:"game_id"`
	CurrentMap   string `json:"current_map"`
	CurrentRound int    `json:"current_round"`
	PlayersAlive Score  `json:"players_alive"`
	Score        Score  `json:"score"`
	TimeLeft     string `json:"time_left,omitempty"`
}

// LiveMatch pairs a live match with its synthesized stats.
type LiveMatch struct {
	Match Match     `json:"match"`
	Stats LiveStats `json:"stats"`
}
