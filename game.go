package hanoi

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrGameOver = errors.New("game is already won")

// GameState represents the current state of the game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateWon        GameState = "won"
)

type GameInterface interface {
	Move(src, dst string) MoveOutcome
	Reset()
	Render(w io.Writer) error
	Puzzle() *Puzzle
}

// Game is a single player session around a Puzzle.
type Game struct {
	ID         string
	State      GameState `json:"state"`
	Moves      int       `json:"moves"`
	Rejections int       `json:"rejections"`
	CreatedAt  time.Time `json:"createdAt"`
	WonAt      time.Time `json:"wonAt,omitzero"`
	puzzle     *Puzzle
}

var _ GameInterface = (*Game)(nil)

func NewGame(id string) *Game {
	return NewGameFrom(id, PegLeft)
}

// NewGameFrom starts a game with every disc on start.
func NewGameFrom(id string, start Peg) *Game {
	return &Game{
		ID:        id,
		State:     GameStateInProgress,
		CreatedAt: time.Now(),
		puzzle:    NewPuzzleFrom(start),
	}
}

// Puzzle implements GameInterface.
func (g *Game) Puzzle() *Puzzle {
	return g.puzzle
}

// Move implements GameInterface.
// Once the game is won every further move is rejected with ErrGameOver.
func (g *Game) Move(src, dst string) MoveOutcome {
	if g.State == GameStateWon {
		g.Rejections++
		return rejected(ErrGameOver)
	}

	out := g.puzzle.AttemptMove(src, dst)
	if out.Rejected() {
		g.Rejections++
		return out
	}

	g.Moves++
	if out.Won {
		g.State = GameStateWon
		g.WonAt = time.Now()
	}
	return out
}

// Reset implements GameInterface.
func (g *Game) Reset() {
	g.puzzle = NewPuzzleFrom(g.puzzle.Start())
	g.State = GameStateInProgress
	g.Moves = 0
	g.Rejections = 0
	g.WonAt = time.Time{}
}

// Render implements GameInterface.
// It writes one line per peg, bottom disc first, e.g. "a: 4,3,2,1".
func (g *Game) Render(w io.Writer) error {
	for _, peg := range Pegs {
		stack := g.puzzle.Stack(peg)
		discs := make([]string, len(stack))
		for i, d := range stack {
			discs[i] = fmt.Sprint(int(d))
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", peg, strings.Join(discs, ",")); err != nil {
			return err
		}
	}
	return nil
}
