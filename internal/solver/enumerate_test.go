package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/setgame/internal/domain"
)

// The classic 12-card deal and, verified once by direct triple checks, the
// four valid sets it contains. They happen to partition the board, so its
// maximum disjoint grouping is unique.
var goldenCodes = []string{
	"3TPS", "2OGD", "2SPD", "2TGS",
	"3TRS", "3TGD", "1TRS", "2SRO",
	"1OPS", "3TGO", "1ORS", "1SPO",
}

var goldenSetKeys = []string{
	"1OPS+2SRO+3TGD",
	"1ORS+2SPD+3TGO",
	"1SPO+2OGD+3TRS",
	"1TRS+2TGS+3TPS",
}

func goldenBoard(t *testing.T) domain.Board {
	t.Helper()
	b, err := domain.ParseCodes(goldenCodes)
	require.NoError(t, err)
	return b
}

func TestEnumerateGoldenBoard(t *testing.T) {
	ctx := context.Background()
	sets, st, err := NewPairEnumerator().Enumerate(ctx, goldenBoard(t))
	require.NoError(t, err)

	keys := make([]string, len(sets))
	for i, s := range sets {
		keys[i] = s.Key()
	}
	assert.Equal(t, goldenSetKeys, keys)
	assert.Equal(t, 66, st.Pairs) // 12 choose 2

	// every returned triple passes the validity check
	for _, s := range sets {
		assert.Equal(t, s.Cards[2], s.Cards[0].Complete(s.Cards[1]), s.Key())
	}

	// on this deal every card participates in some set
	assert.Len(t, domain.UsedCards(sets), 12)
}

func TestEnumerateEmptyAndSetless(t *testing.T) {
	ctx := context.Background()
	e := NewPairEnumerator()

	sets, _, err := e.Enumerate(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, sets)

	// four cards, no pair completes inside the board
	b, err := domain.ParseCodes([]string{"1TRS", "2TGS", "1OPS", "2OGD"})
	require.NoError(t, err)
	sets, _, err = e.Enumerate(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestEnumerateIgnoresDuplicateCards(t *testing.T) {
	b, err := domain.ParseCodes([]string{"1TRS", "1TRS", "2TGS"})
	require.NoError(t, err)
	sets, _, err := NewPairEnumerator().Enumerate(context.Background(), b)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestEnumerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewPairEnumerator().Enumerate(ctx, goldenBoard(t))
	assert.Error(t, err)
}
