package bot

import (
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/random"
)

// Responder owns the bot identity and its canned response pool.
type Responder struct {
	user domain.User
	pool []string
	rnd  random.Source
}

// NewResponder creates a responder picking uniformly from pool.
func NewResponder(user domain.User, pool []string, rnd random.Source) *Responder {
	return &Responder{user: user, pool: pool, rnd: rnd}
}

// User returns the bot identity.
func (r *Responder) User() domain.User {
	return r.user
}

// Compose picks one canned response. Returns false when the pool is
// empty.
func (r *Responder) Compose() (string, bool) {
	if len(r.pool) == 0 {
		return "", false
	}
	return r.pool[r.rnd.Intn(len(r.pool))], true
}
