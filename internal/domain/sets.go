package domain

import (
	"sort"
	"strings"
)

// CardSet is a valid set stored as an unordered triple. Cards are kept in
// canonical code order, so value equality on CardSet matches equality of the
// underlying unordered triple.
type CardSet struct {
	Cards [3]Card
}

func NewCardSet(a, b, c Card) CardSet {
	s := CardSet{Cards: [3]Card{a, b, c}}
	sort.Slice(s.Cards[:], func(i, j int) bool { return s.Cards[i].Code() < s.Cards[j].Code() })
	return s
}

// Key is the canonical identity of the triple, usable as a map key.
func (s CardSet) Key() string {
	return s.Cards[0].Code() + "+" + s.Cards[1].Code() + "+" + s.Cards[2].Code()
}

func (s CardSet) Has(c Card) bool {
	return s.Cards[0] == c || s.Cards[1] == c || s.Cards[2] == c
}

// Codes renders the triple as card codes in canonical order.
func (s CardSet) Codes() []string {
	return []string{s.Cards[0].Code(), s.Cards[1].Code(), s.Cards[2].Code()}
}

func (s CardSet) String() string {
	parts := make([]string, 0, 3)
	for _, c := range s.Cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "  ")
}

// UsedCards collects every card appearing in at least one of the sets.
func UsedCards(sets []CardSet) map[Card]struct{} {
	used := make(map[Card]struct{}, 3*len(sets))
	for _, s := range sets {
		for _, c := range s.Cards {
			used[c] = struct{}{}
		}
	}
	return used
}

// SetGroup is a collection of pairwise card-disjoint CardSets together with
// the union of cards its members use. The zero value is the empty group.
// Groups are extended by copy; a built group is never mutated.
type SetGroup struct {
	Members []CardSet
	used    map[Card]struct{}
}

// NewSetGroup starts a group from a single set.
func NewSetGroup(s CardSet) SetGroup {
	g, _ := SetGroup{}.Extend(s)
	return g
}

// Disjoint reports whether s shares no card with the group.
func (g SetGroup) Disjoint(s CardSet) bool {
	for _, c := range s.Cards {
		if _, ok := g.used[c]; ok {
			return false
		}
	}
	return true
}

// Extend returns a new group with s added and the card union grown by s's
// three cards. When s shares a card with the group, the receiver is returned
// unchanged and the second result is false.
func (g SetGroup) Extend(s CardSet) (SetGroup, bool) {
	if !g.Disjoint(s) {
		return g, false
	}
	next := SetGroup{
		Members: make([]CardSet, len(g.Members), len(g.Members)+1),
		used:    make(map[Card]struct{}, len(g.used)+3),
	}
	copy(next.Members, g.Members)
	for c := range g.used {
		next.used[c] = struct{}{}
	}
	next.Members = append(next.Members, s)
	// keep members key-sorted so Key is canonical for the unordered collection
	sort.Slice(next.Members, func(i, j int) bool { return next.Members[i].Key() < next.Members[j].Key() })
	for _, c := range s.Cards {
		next.used[c] = struct{}{}
	}
	return next, true
}

// Key is the canonical identity of the member collection.
func (g SetGroup) Key() string {
	keys := make([]string, len(g.Members))
	for i, s := range g.Members {
		keys[i] = s.Key()
	}
	return strings.Join(keys, "|")
}

func (g SetGroup) Size() int { return len(g.Members) }

// CardCount is the size of the group's card union, always 3 times Size.
func (g SetGroup) CardCount() int { return len(g.used) }

// Uses reports whether any member set contains c.
func (g SetGroup) Uses(c Card) bool {
	_, ok := g.used[c]
	return ok
}
