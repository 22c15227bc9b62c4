package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkahng/hanoi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	start, err := cfg.Start()
	require.NoError(t, err)
	assert.Equal(t, hanoi.PegLeft, start)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Config
		wantErr bool
	}{
		{
			name: "overrides",
			body: "start_peg: right\nexit_on_win: true\ncolor: never\nlog_level: debug\n",
			want: Config{StartPeg: "right", ExitOnWin: true, Color: ColorNever, LogLevel: "debug"},
		},
		{
			name: "partial keeps defaults",
			body: "exit_on_win: true\n",
			want: Config{StartPeg: "a", ExitOnWin: true, Color: ColorAuto, LogLevel: "warn"},
		},
		{
			name:    "unknown peg",
			body:    "start_peg: d\n",
			wantErr: true,
		},
		{
			name:    "unknown color",
			body:    "color: rainbow\n",
			wantErr: true,
		},
		{
			name:    "bad yaml",
			body:    "start_peg: [a\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfig_Validate_Level(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}
