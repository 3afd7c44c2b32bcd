package usecase

import (
	"context"

	"github.com/pkg/errors"

	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/ports"
)

type Service struct {
	Enumerator ports.Enumerator
	Grouper    ports.Grouper
	Validator  ports.Validator
	Dealer     ports.Dealer
	Hinter     ports.Hinter
}

func NewService(e ports.Enumerator, g ports.Grouper, v ports.Validator, d ports.Dealer, h ports.Hinter) *Service {
	return &Service{Enumerator: e, Grouper: g, Validator: v, Dealer: d, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solution is the outcome of solving a board: every valid set on it, and a
// largest collection of pairwise disjoint ones.
type Solution struct {
	Sets  []domain.CardSet
	Group domain.SetGroup
}

func (u *Service) Solve(ctx context.Context, b domain.Board) (Solution, ports.Stats, error) {
	if u.Enumerator == nil || u.Grouper == nil {
		return Solution{}, ports.Stats{}, errNotConfigured
	}
	sets, est, err := u.Enumerator.Enumerate(ctx, b)
	if err != nil {
		return Solution{}, est, err
	}
	group, gst, err := u.Grouper.Group(ctx, sets)
	st := ports.Stats{
		Pairs:      est.Pairs,
		Candidates: gst.Candidates,
		Rounds:     gst.Rounds,
		Duration:   est.Duration + gst.Duration,
	}
	if err != nil {
		return Solution{}, st, err
	}
	return Solution{Sets: sets, Group: group}, st, nil
}

func (u *Service) Sets(ctx context.Context, b domain.Board) ([]domain.CardSet, ports.Stats, error) {
	if u.Enumerator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Enumerator.Enumerate(ctx, b)
}

func (u *Service) Validate(ctx context.Context, a, b, c domain.Card) (bool, domain.Card, error) {
	if u.Validator == nil {
		return false, domain.Card{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, a, b, c)
}

// Complete returns the card finishing a valid set with a and b. Two equal
// cards complete to themselves, which is never a set, so that case is
// rejected here.
func (u *Service) Complete(ctx context.Context, a, b domain.Card) (domain.Card, error) {
	if a == b {
		return domain.Card{}, errors.Errorf("cards must differ, got %s twice", a.Code())
	}
	return a.Complete(b), nil
}

func (u *Service) Deal(ctx context.Context, seed int64, size int) (domain.Board, ports.Stats, error) {
	if u.Dealer == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Dealer.Deal(ctx, seed, size)
}

func (u *Service) Hint(ctx context.Context, b domain.Board) (domain.CardSet, bool, error) {
	if u.Hinter == nil {
		return domain.CardSet{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}
