package domain

import "github.com/pkg/errors"

// Card holds one value from each feature dimension.
type Card struct {
	Quantity Quantity
	Fill     Fill
	Color    Color
	Shape    Shape
}

// ParseCard reads a 4-character card code, one character per dimension in
// quantity, fill, color, shape order (e.g. "3TPS").
func ParseCard(code string) (Card, error) {
	if len(code) != 4 {
		return Card{}, errors.Wrapf(ErrInvalidLiteral, "card code %q: want 4 characters", code)
	}
	q, err := ParseQuantity(code[0])
	if err != nil {
		return Card{}, errors.Wrapf(err, "card code %q", code)
	}
	f, err := ParseFill(code[1])
	if err != nil {
		return Card{}, errors.Wrapf(err, "card code %q", code)
	}
	c, err := ParseColor(code[2])
	if err != nil {
		return Card{}, errors.Wrapf(err, "card code %q", code)
	}
	s, err := ParseShape(code[3])
	if err != nil {
		return Card{}, errors.Wrapf(err, "card code %q", code)
	}
	return Card{Quantity: q, Fill: f, Color: c, Shape: s}, nil
}

// MustCard is ParseCard for codes known to be well formed.
func MustCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Complete returns the unique card that forms a valid set with c and o,
// applying the per-dimension third-value rule independently to each
// dimension. When c == o the result is c itself, which never completes a
// set; callers filter that case out.
func (c Card) Complete(o Card) Card {
	return Card{
		Quantity: c.Quantity.Third(o.Quantity),
		Fill:     c.Fill.Third(o.Fill),
		Color:    c.Color.Third(o.Color),
		Shape:    c.Shape.Third(o.Shape),
	}
}

// Code renders the card back to its 4-character code.
func (c Card) Code() string {
	return string([]byte{c.Quantity.Code(), c.Fill.Code(), c.Color.Code(), c.Shape.Code()})
}

func (c Card) String() string {
	return c.Quantity.String() + ":" + c.Fill.String() + ":" + c.Color.String() + ":" + c.Shape.String()
}

// Board is the flat ordered collection of cards under analysis. Duplicate
// cards are permitted but never useful.
type Board []Card

// ParseBoard flattens a 2D layout of card codes row-major.
func ParseBoard(rows [][]string) (Board, error) {
	n := 0
	for _, row := range rows {
		n += len(row)
	}
	b := make(Board, 0, n)
	for _, row := range rows {
		for _, code := range row {
			c, err := ParseCard(code)
			if err != nil {
				return nil, err
			}
			b = append(b, c)
		}
	}
	return b, nil
}

// ParseCodes builds a board from a flat list of card codes.
func ParseCodes(codes []string) (Board, error) {
	b := make(Board, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		b = append(b, c)
	}
	return b, nil
}

// Codes renders the board back to card codes.
func (b Board) Codes() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.Code()
	}
	return out
}

// Index returns a membership index over the board's cards, built once so
// completion lookups stay O(1).
func (b Board) Index() map[Card]struct{} {
	idx := make(map[Card]struct{}, len(b))
	for _, c := range b {
		idx[c] = struct{}{}
	}
	return idx
}
