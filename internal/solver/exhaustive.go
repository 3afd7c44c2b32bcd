package solver

import (
	"context"
	"time"

	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/ports"
)

// ExhaustiveGrouper walks the include/skip tree over the candidate sets with
// a remaining-count bound. Same answers as the frontier search, smaller peak
// memory on crowded boards.
type ExhaustiveGrouper struct{}

func NewExhaustiveGrouper() *ExhaustiveGrouper { return &ExhaustiveGrouper{} }

func (g *ExhaustiveGrouper) Group(ctx context.Context, sets []domain.CardSet) (domain.SetGroup, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	var best domain.SetGroup

	var dfs func(i int, cur domain.SetGroup)
	dfs = func(i int, cur domain.SetGroup) {
		if ctx.Err() != nil {
			return
		}
		if cur.Size() > best.Size() {
			best = cur
		}
		// even taking every remaining set cannot beat the best found
		if i == len(sets) || cur.Size()+len(sets)-i <= best.Size() {
			return
		}
		st.Candidates++
		if ext, ok := cur.Extend(sets[i]); ok {
			dfs(i+1, ext)
		}
		dfs(i+1, cur)
	}
	dfs(0, domain.SetGroup{})

	st.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		return domain.SetGroup{}, st, err
	}
	return best, st, nil
}
