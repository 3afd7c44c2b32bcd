package hint

import (
	"context"

	"svw.info/setgame/internal/domain"
)

// FirstSet implements a minimal Hinter that suggests the first valid set the
// pair scan reaches.
type FirstSet struct{}

func NewFirstSet() *FirstSet { return &FirstSet{} }

func (h *FirstSet) Hint(ctx context.Context, b domain.Board) (domain.CardSet, bool, error) {
	idx := b.Index()
	for i := 0; i < len(b); i++ {
		if err := ctx.Err(); err != nil {
			return domain.CardSet{}, false, err
		}
		for j := i + 1; j < len(b); j++ {
			if b[i] == b[j] {
				continue
			}
			want := b[i].Complete(b[j])
			if want == b[i] || want == b[j] {
				continue
			}
			if _, ok := idx[want]; ok {
				return domain.NewCardSet(b[i], b[j], want), true, nil
			}
		}
	}
	return domain.CardSet{}, false, nil
}
