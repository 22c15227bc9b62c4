// Package hanoi referees a four disc, three peg Towers of Hanoi puzzle.
package hanoi

// Disc is a disc size, 1 (smallest) to DiscCount (largest).
type Disc int

const (
	DiscCount = 4

	// NoDisc is returned as the top of an empty peg.
	NoDisc Disc = 0
)

// CanonicalSequence returns the winning stack, bottom first: 4,3,2,1.
func CanonicalSequence() []Disc {
	s := make([]Disc, 0, DiscCount)
	for d := Disc(DiscCount); d >= 1; d-- {
		s = append(s, d)
	}
	return s
}

// MoveOutcome is the result of one attempted move.
type MoveOutcome struct {
	Applied bool
	Won     bool
	Err     error // set when the move was rejected
}

func (o MoveOutcome) Rejected() bool {
	return !o.Applied
}

func rejected(err error) MoveOutcome {
	return MoveOutcome{Err: err}
}

func applied(won bool) MoveOutcome {
	return MoveOutcome{Applied: true, Won: won}
}
