package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tkahng/hanoi"
	"github.com/tkahng/hanoi/config"
	"github.com/tkahng/hanoi/console"
	"github.com/tkahng/hanoi/internal/logging"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flagValues holds the command line overrides for config.Config.
type flagValues struct {
	configPath string
	start      string
	exitOnWin  bool
	color      string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:           "hanoi",
		Short:         "Play Towers of Hanoi in the terminal",
		Long:          `Moves the top disc of one stack onto another until all four discs sit on a new stack.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(fv.configPath)
			if err != nil {
				return err
			}
			fv.apply(cmd.Flags(), &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return play(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fv.configPath, "config", "", "YAML config file")
	flags.StringVar(&fv.start, "start", "", "stack holding every disc at the start (a, b or c)")
	flags.BoolVar(&fv.exitOnWin, "exit-on-win", false, "stop as soon as the puzzle is solved")
	flags.StringVar(&fv.color, "color", "", "colour notices: auto, always or never")
	flags.StringVar(&fv.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// apply layers explicitly set flags over the file config.
func (fv flagValues) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("start") {
		cfg.StartPeg = fv.start
	}
	if flags.Changed("exit-on-win") {
		cfg.ExitOnWin = fv.exitOnWin
	}
	if flags.Changed("color") {
		cfg.Color = fv.color
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
}

func play(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := logging.NewStderr(level)

	start, err := cfg.Start()
	if err != nil {
		return err
	}

	game := hanoi.NewGameFrom(fmt.Sprintf("game_%d", os.Getpid()), start)
	logger.Debug("game started", "id", game.ID, "start", start)

	c := console.New(game, in, out,
		console.WithLogger(logger),
		console.WithExitOnWin(cfg.ExitOnWin),
		console.WithProfile(colorProfile(cfg.Color, out)),
	)
	err = c.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	logger.Debug("game ended", "id", game.ID, "state", game.State, "moves", game.Moves)
	return err
}

func colorProfile(mode string, out io.Writer) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).Profile
}
