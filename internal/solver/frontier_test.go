package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/setgame/internal/domain"
)

// overlappingSets builds four triples over nine distinct cards where the
// middle two chain-overlap: {0,1,2} {2,3,4} {3,4,5} {6,7,8}. The largest
// disjoint collection has three members.
func overlappingSets(t *testing.T) []domain.CardSet {
	t.Helper()
	codes := []string{"1TPS", "1TPD", "1TPO", "1TGS", "1TGD", "1TGO", "1TRS", "1TRD", "1TRO"}
	cards := make([]domain.Card, len(codes))
	for i, code := range codes {
		cards[i] = domain.MustCard(code)
	}
	return []domain.CardSet{
		domain.NewCardSet(cards[0], cards[1], cards[2]),
		domain.NewCardSet(cards[2], cards[3], cards[4]),
		domain.NewCardSet(cards[3], cards[4], cards[5]),
		domain.NewCardSet(cards[6], cards[7], cards[8]),
	}
}

func TestFrontierGoldenBoard(t *testing.T) {
	ctx := context.Background()
	sets, _, err := NewPairEnumerator().Enumerate(ctx, goldenBoard(t))
	require.NoError(t, err)

	grp, st, err := NewFrontierGrouper().Group(ctx, sets)
	require.NoError(t, err)
	require.Equal(t, 4, grp.Size())
	assert.Equal(t, 12, grp.CardCount())

	// the four sets partition the board, so the maximum is unique
	keys := make([]string, 0, grp.Size())
	for _, s := range grp.Members {
		keys = append(keys, s.Key())
	}
	assert.Equal(t, goldenSetKeys, keys)
	assert.GreaterOrEqual(t, st.Rounds, 1)
}

func TestFrontierSizeStable(t *testing.T) {
	ctx := context.Background()
	sets, _, err := NewPairEnumerator().Enumerate(ctx, goldenBoard(t))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		grp, _, err := NewFrontierGrouper().Group(ctx, sets)
		require.NoError(t, err)
		assert.Equal(t, 4, grp.Size())
	}
}

func TestFrontierOverlappingSets(t *testing.T) {
	grp, _, err := NewFrontierGrouper().Group(context.Background(), overlappingSets(t))
	require.NoError(t, err)
	assert.Equal(t, 3, grp.Size())
}

func TestFrontierDisjointInvariant(t *testing.T) {
	grp, _, err := NewFrontierGrouper().Group(context.Background(), overlappingSets(t))
	require.NoError(t, err)
	seen := map[domain.Card]bool{}
	for _, s := range grp.Members {
		for _, c := range s.Cards {
			assert.False(t, seen[c], "card %s appears in two member sets", c.Code())
			seen[c] = true
		}
	}
}

func TestFrontierEmptyInput(t *testing.T) {
	grp, _, err := NewFrontierGrouper().Group(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, grp.Size())
}

func TestFrontierCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewFrontierGrouper().Group(ctx, overlappingSets(t))
	assert.Error(t, err)
}
