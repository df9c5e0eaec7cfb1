package match

import (
	"sync"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
)

// Store holds the match schedule. Updates replace whole match records
// copy-on-write, so previously returned snapshots stay stable.
type Store struct {
	mu      sync.RWMutex
	matches []domain.Match
}

// NewStore creates a store with the seeded schedule, in order.
func NewStore(matches []domain.Match) *Store {
	cloned := make([]domain.Match, len(matches))
	for i, m := range matches {
		cloned[i] = m.Clone()
	}
	return &Store{matches: cloned}
}

// List returns a copy of the schedule in stored order.
func (s *Store) List() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Match, len(s.matches))
	for i, m := range s.matches {
		out[i] = m.Clone()
	}
	return out
}

// Get returns the match with the given id.
func (s *Store) Get(id string) (domain.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.matches {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return domain.Match{}, false
}

// FindLive scans the schedule in stored order and returns the first
// live match. Pure query; when several matches are live only the first
// is surfaced.
func (s *Store) FindLive() (domain.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.matches {
		if m.Status == domain.MatchLive {
			return m.Clone(), true
		}
	}
	return domain.Match{}, false
}

// Upcoming returns the matches still to be played, in stored order.
func (s *Store) Upcoming() []domain.Match {
	return s.filter(domain.MatchUpcoming)
}

// Finished returns the already played matches, in stored order.
func (s *Store) Finished() []domain.Match {
	return s.filter(domain.MatchFinished)
}

func (s *Store) filter(status domain.MatchStatus) []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if m.Status == status {
			out = append(out, m.Clone())
		}
	}
	return out
}

// ReplaceScore swaps in a new match record carrying the given score.
// The previous record is never mutated in place. Returns false when
// the id is unknown.
func (s *Store) ReplaceScore(id string, score domain.Score) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.matches {
		if m.ID == id {
			next := m.Clone()
			sc := score
			next.Score = &sc
			s.matches[i] = next
			return true
		}
	}
	return false
}
