package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkahng/hanoi/config"
	"github.com/tkahng/hanoi/console"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_EndsCleanlyOnEOF(t *testing.T) {
	out, err := execute(t, "a\nb\n", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "a: 4,3,2\nb: 1\nc: \n")
}

func TestRoot_StartFlag(t *testing.T) {
	out, err := execute(t, "", "--start", "right")
	require.NoError(t, err)
	assert.Equal(t, "a: \nb: \nc: 4,3,2,1\n"+console.StartPrompt, out)
}

func TestRoot_InvalidFlags(t *testing.T) {
	_, err := execute(t, "", "--start", "d")
	assert.Error(t, err)

	_, err = execute(t, "", "--color", "rainbow")
	assert.Error(t, err)

	_, err = execute(t, "", "extra")
	assert.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_peg: b\ncolor: never\n"), 0o600))

	out, err := execute(t, "", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a: \nb: 4,3,2,1\n"))

	out, err = execute(t, "", "--config", path, "--start", "a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a: 4,3,2,1\n"))
}

func TestColorProfile(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, colorProfile("auto", &buf))
	assert.Equal(t, termenv.Ascii, colorProfile("never", &buf))
	assert.Equal(t, termenv.ANSI256, colorProfile("always", &buf))
}

func TestFlagValues_Apply(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--exit-on-win", "--log-level", "debug"}))

	var fv flagValues
	fv.exitOnWin, _ = cmd.Flags().GetBool("exit-on-win")
	fv.logLevel, _ = cmd.Flags().GetString("log-level")

	cfg := config.Default()
	cfg.StartPeg = "c"
	fv.apply(cmd.Flags(), &cfg)

	assert.True(t, cfg.ExitOnWin)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "c", cfg.StartPeg, "unset flags keep the file value")
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "typo.yaml"))
	assert.Error(t, err)
}
