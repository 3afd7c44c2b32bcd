package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/ports"
)

// RandomDealer deals seeded random boards, re-dealing until the board holds
// at least one valid set or a time budget runs out.
type RandomDealer struct {
	Enumerator ports.Enumerator
}

func NewRandomDealer(e ports.Enumerator) *RandomDealer { return &RandomDealer{Enumerator: e} }

// deck builds the full 81-card deck, one card per combination of dimension
// values.
func deck() []domain.Card {
	cards := make([]domain.Card, 0, 81)
	for _, q := range []domain.Quantity{domain.One, domain.Two, domain.Three} {
		for _, f := range []domain.Fill{domain.Translucent, domain.Open, domain.Solid} {
			for _, c := range []domain.Color{domain.Purple, domain.Green, domain.Red} {
				for _, s := range []domain.Shape{domain.Squiggle, domain.Diamond, domain.Oval} {
					cards = append(cards, domain.Card{Quantity: q, Fill: f, Color: c, Shape: s})
				}
			}
		}
	}
	return cards
}

// Deal shuffles the deck with the given seed and deals size cards. A dealt
// board with no valid set is reshuffled; after the deadline the last deal is
// returned as-is.
func (d *RandomDealer) Deal(ctx context.Context, seed int64, size int) (domain.Board, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	if d.Enumerator == nil {
		return nil, st, errors.New("dealer needs an enumerator")
	}
	cards := deck()
	if size < 3 || size > len(cards) {
		return nil, st, errors.Errorf("board size %d: want between 3 and %d", size, len(cards))
	}
	rng := rand.New(rand.NewSource(seed))
	deadline := start.Add(900 * time.Millisecond)
	for {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}
		rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		b := make(domain.Board, size)
		copy(b, cards[:size])
		sets, est, err := d.Enumerator.Enumerate(ctx, b)
		st.Pairs += est.Pairs
		if err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}
		if len(sets) > 0 || time.Now().After(deadline) {
			st.Duration = time.Since(start)
			return b, st, nil
		}
	}
}
