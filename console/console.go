// Package console runs a Towers of Hanoi game against a line oriented
// reader and writer, typically stdin and stdout.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tkahng/hanoi"
	"github.com/tkahng/hanoi/internal/logging"
)

const (
	StartPrompt = "start stack: "
	EndPrompt   = "end stack: "

	IllegalMoveNotice = "That move was not legal, please make a legal move"
	WinNotice         = "You Win!!!"
	GameOverNotice    = "The puzzle is already solved. Type reset to play again."
)

const helpText = `Move the top disc of one stack onto another.
Stacks are a, b and c (or left, middle and right).
A disc may only rest on a larger disc. Move every disc off stack a to win.
Commands at the start stack prompt: help, reset, quit.`

type Console struct {
	game      hanoi.GameInterface
	in        *bufio.Reader
	out       io.Writer
	logger    *slog.Logger
	profile   termenv.Profile
	exitOnWin bool
}

type Option func(*Console)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithExitOnWin makes Run return as soon as the puzzle is solved.
func WithExitOnWin(exit bool) Option {
	return func(c *Console) {
		c.exitOnWin = exit
	}
}

// WithProfile sets the colour profile used for notices. Defaults to plain text.
func WithProfile(p termenv.Profile) Option {
	return func(c *Console) {
		c.profile = p
	}
}

func New(game hanoi.GameInterface, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		game:    game,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logging.NewNop(),
		profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays turns until the input ends, the player quits or ctx is
// cancelled. Input exhaustion and quitting are not errors. ctx is checked
// before every prompt; a read already in progress is not interrupted.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := c.game.Render(c.out); err != nil {
			return err
		}

		src, err := c.prompt(ctx, StartPrompt)
		if err != nil {
			return endOfInput(err)
		}

		switch strings.ToLower(strings.TrimSpace(src)) {
		case "quit", "exit":
			c.logger.Debug("session ended by player")
			return nil
		case "reset":
			c.game.Reset()
			c.logger.Debug("puzzle reset")
			continue
		case "help":
			if _, err := fmt.Fprintln(c.out, helpText); err != nil {
				return err
			}
			continue
		}

		dst, err := c.prompt(ctx, EndPrompt)
		if err != nil {
			return endOfInput(err)
		}

		won, err := c.turn(src, dst)
		if err != nil {
			return err
		}
		if won && c.exitOnWin {
			return nil
		}
	}
}

// turn forwards one move to the game and prints the matching notice.
func (c *Console) turn(src, dst string) (bool, error) {
	out := c.game.Move(src, dst)
	if out.Rejected() {
		c.logger.Debug("move rejected", "src", src, "dst", dst, "error", out.Err)
		notice := IllegalMoveNotice
		if errors.Is(out.Err, hanoi.ErrGameOver) {
			notice = GameOverNotice
		}
		_, err := fmt.Fprintln(c.out, c.style(notice, "#f87171", false))
		return false, err
	}

	c.logger.Debug("move applied", "src", src, "dst", dst, "won", out.Won)
	if !out.Won {
		return false, nil
	}
	c.logger.Info("puzzle solved")
	_, err := fmt.Fprintln(c.out, c.style(WinNotice, "#4ade80", true))
	return true, err
}

func (c *Console) style(s, color string, bold bool) string {
	st := c.profile.String(s).Foreground(c.profile.Color(color))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.out, label); err != nil {
		return "", err
	}
	return c.readLine()
}

// readLine returns the next line without its terminator. A final line
// with no newline is still returned; the following call yields io.EOF.
func (c *Console) readLine() (string, error) {
	text, err := c.in.ReadString('\n')
	if err != nil && (text == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
