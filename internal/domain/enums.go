package domain

import "github.com/pkg/errors"

// ErrInvalidLiteral reports a card or feature code outside the fixed vocabulary.
var ErrInvalidLiteral = errors.New("invalid literal")

// Every dimension has exactly three values, each a single bit out of {1, 2, 4}.
// third relies on that encoding: equal inputs complete themselves, and for two
// distinct bits the xor with 0b111 isolates the one remaining bit.
func third(a, b uint8) uint8 {
	if a|b == a {
		return a
	}
	return (a | b) ^ 0b111
}

// Quantity is the number of symbols drawn on a card.
type Quantity uint8

const (
	One   Quantity = 1
	Two   Quantity = 2
	Three Quantity = 4
)

func ParseQuantity(c byte) (Quantity, error) {
	switch c {
	case '1':
		return One, nil
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	}
	return 0, errors.Wrapf(ErrInvalidLiteral, "quantity code %q", c)
}

// Third returns the quantity completing a valid set with q and o.
func (q Quantity) Third(o Quantity) Quantity { return Quantity(third(uint8(q), uint8(o))) }

func (q Quantity) Code() byte {
	switch q {
	case Two:
		return '2'
	case Three:
		return '3'
	}
	return '1'
}

func (q Quantity) String() string {
	switch q {
	case One:
		return "One"
	case Two:
		return "Two"
	case Three:
		return "Three"
	}
	return "Quantity(invalid)"
}

// Fill is how a card's symbols are shaded.
type Fill uint8

const (
	Translucent Fill = 1
	Open        Fill = 2
	Solid       Fill = 4
)

func ParseFill(c byte) (Fill, error) {
	switch c {
	case 'T':
		return Translucent, nil
	case 'O':
		return Open, nil
	case 'S':
		return Solid, nil
	}
	return 0, errors.Wrapf(ErrInvalidLiteral, "fill code %q", c)
}

// Third returns the fill completing a valid set with f and o.
func (f Fill) Third(o Fill) Fill { return Fill(third(uint8(f), uint8(o))) }

func (f Fill) Code() byte {
	switch f {
	case Open:
		return 'O'
	case Solid:
		return 'S'
	}
	return 'T'
}

func (f Fill) String() string {
	switch f {
	case Translucent:
		return "Translucent"
	case Open:
		return "Open"
	case Solid:
		return "Solid"
	}
	return "Fill(invalid)"
}

// Color is the color of a card's symbols.
type Color uint8

const (
	Purple Color = 1
	Green  Color = 2
	Red    Color = 4
)

func ParseColor(c byte) (Color, error) {
	switch c {
	case 'P':
		return Purple, nil
	case 'G':
		return Green, nil
	case 'R':
		return Red, nil
	}
	return 0, errors.Wrapf(ErrInvalidLiteral, "color code %q", c)
}

// Third returns the color completing a valid set with c and o.
func (c Color) Third(o Color) Color { return Color(third(uint8(c), uint8(o))) }

func (c Color) Code() byte {
	switch c {
	case Green:
		return 'G'
	case Red:
		return 'R'
	}
	return 'P'
}

func (c Color) String() string {
	switch c {
	case Purple:
		return "Purple"
	case Green:
		return "Green"
	case Red:
		return "Red"
	}
	return "Color(invalid)"
}

// Shape is the outline of a card's symbols.
type Shape uint8

const (
	Squiggle Shape = 1
	Diamond  Shape = 2
	Oval     Shape = 4
)

func ParseShape(c byte) (Shape, error) {
	switch c {
	case 'S':
		return Squiggle, nil
	case 'D':
		return Diamond, nil
	case 'O':
		return Oval, nil
	}
	return 0, errors.Wrapf(ErrInvalidLiteral, "shape code %q", c)
}

// Third returns the shape completing a valid set with s and o.
func (s Shape) Third(o Shape) Shape { return Shape(third(uint8(s), uint8(o))) }

func (s Shape) Code() byte {
	switch s {
	case Diamond:
		return 'D'
	case Oval:
		return 'O'
	}
	return 'S'
}

func (s Shape) String() string {
	switch s {
	case Squiggle:
		return "Squiggle"
	case Diamond:
		return "Diamond"
	case Oval:
		return "Oval"
	}
	return "Shape(invalid)"
}
