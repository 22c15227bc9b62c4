package hanoi

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidPeg   = errors.New("invalid peg")
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptySource  = fmt.Errorf("%w: source peg has no disc", ErrIllegalMove)
	ErrDiscTooLarge = fmt.Errorf("%w: disc is larger than the destination top disc", ErrIllegalMove)
	ErrSamePeg      = fmt.Errorf("%w: source and destination are the same peg", ErrIllegalMove)
)

// Puzzle holds the three pegs. Each stack is ordered bottom (index 0) to top.
type Puzzle struct {
	stacks [3][]Disc
	start  Peg
}

// NewPuzzle returns the canonical start: every disc on peg a.
func NewPuzzle() *Puzzle {
	return NewPuzzleFrom(PegLeft)
}

// NewPuzzleFrom stacks every disc on start. An invalid start falls back to peg a.
func NewPuzzleFrom(start Peg) *Puzzle {
	if !start.Valid() {
		start = PegLeft
	}
	p := &Puzzle{start: start}
	for i := range p.stacks {
		p.stacks[i] = make([]Disc, 0, DiscCount)
	}
	p.stacks[start] = append(p.stacks[start], CanonicalSequence()...)
	return p
}

// Start returns the designated start peg.
func (p *Puzzle) Start() Peg {
	return p.start
}

// Stack returns a copy of the discs on peg, bottom first.
func (p *Puzzle) Stack(peg Peg) []Disc {
	if !peg.Valid() {
		return nil
	}
	return slices.Clone(p.stacks[peg])
}

// Stacks returns a copy of every peg.
func (p *Puzzle) Stacks() map[Peg][]Disc {
	out := make(map[Peg][]Disc, len(Pegs))
	for _, peg := range Pegs {
		out[peg] = p.Stack(peg)
	}
	return out
}

// IsKnownPeg reports whether id names one of the three pegs.
func IsKnownPeg(id string) bool {
	_, err := ParsePeg(id)
	return err == nil
}

func (p *Puzzle) PegHasDisc(peg Peg) (bool, error) {
	if !peg.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidPeg, peg)
	}
	return len(p.stacks[peg]) > 0, nil
}

// TopDisc returns the disc on top of peg. ok is false when the peg is empty or unknown.
func (p *Puzzle) TopDisc(peg Peg) (d Disc, ok bool) {
	if !peg.Valid() {
		return NoDisc, false
	}
	s := p.stacks[peg]
	if len(s) == 0 {
		return NoDisc, false
	}
	return s[len(s)-1], true
}

// CheckMove returns nil when moving the top disc of src onto dst is legal.
func (p *Puzzle) CheckMove(src, dst Peg) error {
	if !src.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPeg, src)
	}
	if !dst.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPeg, dst)
	}
	moving, ok := p.TopDisc(src)
	if !ok {
		return ErrEmptySource
	}
	if src == dst {
		return ErrSamePeg
	}
	under, ok := p.TopDisc(dst)
	if ok && moving >= under {
		return ErrDiscTooLarge
	}
	return nil
}

// IsLegalMove validates raw peg names and the move between them.
func (p *Puzzle) IsLegalMove(src, dst string) bool {
	from, to, err := parseMove(src, dst)
	if err != nil {
		return false
	}
	return p.CheckMove(from, to) == nil
}

// ApplyMove pops the top disc of src and pushes it onto dst. It does not
// check legality; call CheckMove first.
func (p *Puzzle) ApplyMove(src, dst Peg) {
	s := p.stacks[src]
	d := s[len(s)-1]
	p.stacks[src] = s[:len(s)-1]
	p.stacks[dst] = append(p.stacks[dst], d)
}

// IsWon reports whether a peg other than the start peg holds the canonical sequence.
func (p *Puzzle) IsWon() bool {
	want := CanonicalSequence()
	for _, peg := range Pegs {
		if peg == p.start {
			continue
		}
		if slices.Equal(p.stacks[peg], want) {
			return true
		}
	}
	return false
}

// AttemptMove parses both tokens, applies the move if legal and reports
// whether it won the puzzle. Rejected moves leave the puzzle untouched.
func (p *Puzzle) AttemptMove(src, dst string) MoveOutcome {
	from, to, err := parseMove(src, dst)
	if err != nil {
		return rejected(err)
	}
	if err := p.CheckMove(from, to); err != nil {
		return rejected(err)
	}
	p.ApplyMove(from, to)
	return applied(p.IsWon())
}

// Validate checks conservation and ordering of the discs.
func (p *Puzzle) Validate() error {
	seen := make(map[Disc]bool, DiscCount)
	for _, peg := range Pegs {
		s := p.stacks[peg]
		for i, d := range s {
			if d < 1 || d > DiscCount {
				return fmt.Errorf("peg %s: disc %d out of range", peg, d)
			}
			if seen[d] {
				return fmt.Errorf("peg %s: disc %d duplicated", peg, d)
			}
			seen[d] = true
			if i > 0 && d >= s[i-1] {
				return fmt.Errorf("peg %s: disc %d rests on smaller disc %d", peg, d, s[i-1])
			}
		}
	}
	if len(seen) != DiscCount {
		return fmt.Errorf("found %d of %d discs", len(seen), DiscCount)
	}
	return nil
}

func parseMove(src, dst string) (Peg, Peg, error) {
	from, err := ParsePeg(src)
	if err != nil {
		return 0, 0, fmt.Errorf("source: %w", err)
	}
	to, err := ParsePeg(dst)
	if err != nil {
		return 0, 0, fmt.Errorf("destination: %w", err)
	}
	return from, to, nil
}
