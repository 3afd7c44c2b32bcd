package solver

import (
	"context"
	"sort"
	"time"

	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/ports"
)

// PairEnumerator finds every valid set on a board by completing each card
// pair and checking the completion against a membership index. O(n²) pairs,
// O(1) per pair.
type PairEnumerator struct{}

func NewPairEnumerator() *PairEnumerator { return &PairEnumerator{} }

func (e *PairEnumerator) Enumerate(ctx context.Context, b domain.Board) ([]domain.CardSet, ports.Stats, error) {
	start := time.Now()
	idx := b.Index()
	found := make(map[string]domain.CardSet)
	pairs := 0
	for i := 0; i < len(b); i++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Pairs: pairs, Duration: time.Since(start)}, err
		}
		for j := i + 1; j < len(b); j++ {
			a, c := b[i], b[j]
			if a == c {
				continue
			}
			pairs++
			want := a.Complete(c)
			if want == a || want == c {
				continue
			}
			if _, ok := idx[want]; !ok {
				continue
			}
			// the same triple reached through different pairs collapses here
			s := domain.NewCardSet(a, c, want)
			found[s.Key()] = s
		}
	}
	sets := make([]domain.CardSet, 0, len(found))
	for _, s := range found {
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Key() < sets[j].Key() })
	return sets, ports.Stats{Pairs: pairs, Duration: time.Since(start)}, nil
}
