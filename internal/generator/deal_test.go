package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/setgame/internal/solver"
)

func TestDealSeededReproducible(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	d := NewRandomDealer(solver.NewPairEnumerator())

	b1, _, err := d.Deal(ctx, 12345, 12)
	require.NoError(t, err)
	require.Len(t, b1, 12)

	b2, _, err := d.Deal(ctx, 12345, 12)
	require.NoError(t, err)
	assert.Equal(t, b1.Codes(), b2.Codes())

	// dealt from a deck, so all cards are distinct
	assert.Len(t, b1.Index(), 12)
}

func TestDealContainsASet(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	e := solver.NewPairEnumerator()
	d := NewRandomDealer(e)

	b, _, err := d.Deal(ctx, 42, 12)
	require.NoError(t, err)
	sets, _, err := e.Enumerate(ctx, b)
	require.NoError(t, err)
	assert.NotEmpty(t, sets)
}

func TestDealRejectsBadSize(t *testing.T) {
	d := NewRandomDealer(solver.NewPairEnumerator())
	_, _, err := d.Deal(context.Background(), 1, 2)
	assert.Error(t, err)
	_, _, err = d.Deal(context.Background(), 1, 100)
	assert.Error(t, err)
}

func TestDeckIsComplete(t *testing.T) {
	cards := deck()
	require.Len(t, cards, 81)
	seen := map[string]bool{}
	for _, c := range cards {
		assert.False(t, seen[c.Code()], "duplicate card %s", c.Code())
		seen[c.Code()] = true
	}
}
