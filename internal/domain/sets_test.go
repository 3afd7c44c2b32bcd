package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardSetOrderIndependent(t *testing.T) {
	a, b, c := MustCard("1TRS"), MustCard("2TGS"), MustCard("3TPS")
	s1 := NewCardSet(a, b, c)
	s2 := NewCardSet(c, a, b)
	assert.Equal(t, s1, s2)
	assert.Equal(t, s1.Key(), s2.Key())
	assert.Equal(t, []string{"1TRS", "2TGS", "3TPS"}, s1.Codes())
	assert.True(t, s1.Has(b))
	assert.False(t, s1.Has(MustCard("1SPO")))
}

func TestSetGroupExtend(t *testing.T) {
	s1 := NewCardSet(MustCard("1TRS"), MustCard("2TGS"), MustCard("3TPS"))
	s2 := NewCardSet(MustCard("1OPS"), MustCard("2SRO"), MustCard("3TGD"))
	overlap := NewCardSet(MustCard("1TRS"), MustCard("2SPD"), MustCard("3TGO"))

	g := NewSetGroup(s1)
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 3, g.CardCount())
	assert.True(t, g.Uses(MustCard("1TRS")))

	g2, ok := g.Extend(s2)
	require.True(t, ok)
	assert.Equal(t, 2, g2.Size())
	assert.Equal(t, 6, g2.CardCount())

	// the original group stays untouched
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 3, g.CardCount())

	// overlap on 1TRS is rejected
	assert.False(t, g2.Disjoint(overlap))
	_, ok = g2.Extend(overlap)
	assert.False(t, ok)

	// group identity ignores insertion order
	h, ok := NewSetGroup(s2).Extend(s1)
	require.True(t, ok)
	assert.Equal(t, g2.Key(), h.Key())
}

func TestSetGroupZeroValue(t *testing.T) {
	var g SetGroup
	assert.Zero(t, g.Size())
	assert.Zero(t, g.CardCount())

	s := NewCardSet(MustCard("1TRS"), MustCard("2TGS"), MustCard("3TPS"))
	assert.True(t, g.Disjoint(s))
	g2, ok := g.Extend(s)
	require.True(t, ok)
	assert.Equal(t, 1, g2.Size())
}
