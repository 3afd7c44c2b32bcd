package solver

import (
	"context"
	"time"

	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/ports"
)

// FrontierGrouper grows collections of disjoint sets level by level: each
// round extends every group in the frontier by every candidate set disjoint
// from it, keeping groups that cannot grow, until a round grows nothing.
// Exponential in the worst case; fine for boards of a dozen cards.
type FrontierGrouper struct{}

func NewFrontierGrouper() *FrontierGrouper { return &FrontierGrouper{} }

func (g *FrontierGrouper) Group(ctx context.Context, sets []domain.CardSet) (domain.SetGroup, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	if len(sets) == 0 {
		st.Duration = time.Since(start)
		return domain.SetGroup{}, st, nil
	}

	frontier := make(map[string]domain.SetGroup, len(sets))
	for _, s := range sets {
		grp := domain.NewSetGroup(s)
		frontier[grp.Key()] = grp
	}
	for {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return domain.SetGroup{}, st, err
		}
		st.Rounds++
		next := make(map[string]domain.SetGroup, len(frontier))
		anyGrew := false
		for _, grp := range frontier {
			grew := false
			for _, s := range sets {
				st.Candidates++
				if ext, ok := grp.Extend(s); ok {
					next[ext.Key()] = ext
					grew = true
				}
			}
			if grew {
				anyGrew = true
			} else {
				next[grp.Key()] = grp
			}
		}
		frontier = next
		if !anyGrew {
			break
		}
	}

	var best domain.SetGroup
	for _, grp := range frontier {
		if grp.Size() > best.Size() {
			best = grp
		}
	}
	st.Duration = time.Since(start)
	return best, st, nil
}
