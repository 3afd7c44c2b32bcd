package ports

import (
	"context"
	"time"

	"svw.info/setgame/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Pairs      int // card pairs examined during enumeration
	Candidates int // candidate extensions examined during grouping
	Rounds     int // frontier expansion rounds
	Duration   time.Duration
}

// Enumerator finds every valid set on a board.
type Enumerator interface {
	Enumerate(ctx context.Context, b domain.Board) ([]domain.CardSet, Stats, error)
}

// Grouper selects a maximum-size collection of pairwise card-disjoint sets
// from the enumerated valid sets.
type Grouper interface {
	Group(ctx context.Context, sets []domain.CardSet) (domain.SetGroup, Stats, error)
}

// Validator checks whether three cards form a valid set.
type Validator interface {
	Validate(ctx context.Context, a, b, c domain.Card) (ok bool, want domain.Card, err error)
}

// Dealer produces a playable board from a seed.
type Dealer interface {
	Deal(ctx context.Context, seed int64, size int) (domain.Board, Stats, error)
}

// Hinter returns one valid set from the board, if any exists.
type Hinter interface {
	Hint(ctx context.Context, b domain.Board) (domain.CardSet, bool, error)
}
