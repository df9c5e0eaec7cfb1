package bot

import (
	"testing"
	"time"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/chat"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/random"
)

var botUser = domain.User{ID: "bot", Name: "Bot FURIA"}

var testPool = []string{
	"Não esqueça de conferir os novos produtos da FURIA na loja oficial!",
	"A FURIA venceu os últimos 3 confrontos contra essa equipe.",
	"Você sabia? A FURIA tem a maior porcentagem de vitórias em Mirage nesta temporada.",
}

func newTestRouter() *chat.RoomStore {
	return chat.NewRoomStore([]domain.Room{
		{Key: domain.RoomGeneral, Name: "Chat Geral"},
		{Key: "csgo", Name: "CS:GO"},
	}, nil)
}

func newScheduler(router Router, probability float64, activeRoom func() string, rnd random.Source) *Scheduler {
	responder := NewResponder(botUser, testPool, rnd)
	return NewScheduler(30*time.Second, probability, responder, router, activeRoom, rnd)
}

func TestScheduler_ProbabilityZero(t *testing.T) {
	router := newTestRouter()
	rnd := &random.Sequence{Floats: []float64{0, 0.1, 0.5, 0.99}}
	s := newScheduler(router, 0, func() string { return domain.RoomGeneral }, rnd)

	for i := 0; i < 50; i++ {
		s.Tick()
	}

	if got := router.Len(domain.RoomGeneral); got != 0 {
		t.Errorf("probability 0 produced %d messages, want 0", got)
	}
}

func TestScheduler_ProbabilityOne(t *testing.T) {
	router := newTestRouter()
	rnd := &random.Sequence{Floats: []float64{0.99, 0.5, 0}, Ints: []int{0, 1, 2}}
	s := newScheduler(router, 1, func() string { return domain.RoomGeneral }, rnd)

	const ticks = 10
	for i := 0; i < ticks; i++ {
		s.Tick()
	}

	if got := router.Len(domain.RoomGeneral); got != ticks {
		t.Errorf("probability 1 produced %d messages over %d ticks, want %d", got, ticks, ticks)
	}

	for _, msg := range router.History(domain.RoomGeneral) {
		if msg.User.ID != botUser.ID {
			t.Errorf("message author = %q, want bot", msg.User.ID)
		}
	}
}

func TestScheduler_ThresholdDraws(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		draw        float64
		wantSent    bool
	}{
		{name: "draw below threshold fires", probability: 0.2, draw: 0.19, wantSent: true},
		{name: "draw at threshold skips", probability: 0.2, draw: 0.2, wantSent: false},
		{name: "draw above threshold skips", probability: 0.2, draw: 0.75, wantSent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			rnd := &random.Sequence{Floats: []float64{tt.draw}, Ints: []int{1}}
			s := newScheduler(router, tt.probability, func() string { return domain.RoomGeneral }, rnd)

			s.Tick()

			got := router.Len(domain.RoomGeneral)
			if tt.wantSent && got != 1 {
				t.Errorf("log length = %d, want 1", got)
			}
			if !tt.wantSent && got != 0 {
				t.Errorf("log length = %d, want 0", got)
			}
		})
	}
}

func TestScheduler_RoutesToActiveRoom(t *testing.T) {
	router := newTestRouter()
	active := domain.RoomGeneral
	rnd := &random.Sequence{Floats: []float64{0}, Ints: []int{0}}
	s := newScheduler(router, 1, func() string { return active }, rnd)

	s.Tick()
	active = "csgo"
	s.Tick()

	if got := router.Len(domain.RoomGeneral); got != 1 {
		t.Errorf("general log length = %d, want 1", got)
	}
	if got := router.Len("csgo"); got != 1 {
		t.Errorf("csgo log length = %d, want 1", got)
	}
}

func TestResponder_Compose(t *testing.T) {
	rnd := &random.Sequence{Ints: []int{2}}
	r := NewResponder(botUser, testPool, rnd)

	text, ok := r.Compose()
	if !ok {
		t.Fatal("Compose() ok = false, want true")
	}
	if text != testPool[2] {
		t.Errorf("Compose() = %q, want pool[2]", text)
	}
}

func TestResponder_EmptyPool(t *testing.T) {
	r := NewResponder(botUser, nil, &random.Sequence{})
	if _, ok := r.Compose(); ok {
		t.Error("Compose() with empty pool ok = true, want false")
	}
}
