package hanoi

import "fmt"

// Peg identifies one of the three holding areas.
type Peg int

const (
	PegLeft Peg = iota
	PegMiddle
	PegRight
)

// Pegs lists every peg in display order.
var Pegs = [3]Peg{PegLeft, PegMiddle, PegRight}

var pegNames = map[string]Peg{
	"a":      PegLeft,
	"b":      PegMiddle,
	"c":      PegRight,
	"left":   PegLeft,
	"middle": PegMiddle,
	"right":  PegRight,
}

// ParsePeg turns raw player input into a Peg. Tokens must match exactly:
// "A" or " a" are not pegs.
func ParsePeg(raw string) (Peg, error) {
	p, ok := pegNames[raw]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeg, raw)
	}
	return p, nil
}

func (p Peg) Valid() bool {
	return p >= PegLeft && p <= PegRight
}

func (p Peg) String() string {
	switch p {
	case PegLeft:
		return "a"
	case PegMiddle:
		return "b"
	case PegRight:
		return "c"
	}
	return fmt.Sprintf("Peg(%d)", int(p))
}
