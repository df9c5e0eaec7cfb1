// Package random abstracts the randomness used by the timer-driven
// simulations so tests can supply deterministic sequences.
package random

import (
	"math/rand"
	"time"
)

// Source yields uniform values for the schedulers.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

type mathSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by math/rand seeded from the clock.
func NewSource() Source {
	return &mathSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *mathSource) Float64() float64 { return s.r.Float64() }
func (s *mathSource) Intn(n int) int   { return s.r.Intn(n) }

// Sequence is a deterministic Source that replays fixed values.
// Float64 walks floats, Intn walks ints; both wrap around.
type Sequence struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *Sequence) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)] % n
	s.ii++
	return v
}
