package validator

import (
	"context"

	"svw.info/setgame/internal/domain"
)

// TripleValidator decides set validity through card completion: three
// distinct cards form a valid set exactly when the first two complete to the
// third.
type TripleValidator struct{}

func New() *TripleValidator { return &TripleValidator{} }

// Validate reports whether a, b, c form a valid set. want is the card that
// would complete a and b, returned so callers can show what the third card
// should have been.
func (v *TripleValidator) Validate(ctx context.Context, a, b, c domain.Card) (bool, domain.Card, error) {
	want := a.Complete(b)
	if a == b || a == c || b == c {
		return false, want, nil
	}
	return want == c, want, nil
}
