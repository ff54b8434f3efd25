package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Duration(25*time.Minute), cfg.Timer.WorkDuration)
	assert.Equal(t, Duration(5*time.Minute), cfg.Timer.ShortBreak)
	assert.Equal(t, Duration(20*time.Minute), cfg.Timer.LongBreak)
	assert.Equal(t, 4, cfg.Timer.CyclesBeforeLong)
	assert.True(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Theme.DarkMode)
}

func TestDefaultThemeConfig(t *testing.T) {
	theme := DefaultThemeConfig()

	assert.Equal(t, "#FF0000", theme.ColorWorkStart)
	assert.Equal(t, "#00FF00", theme.ColorWorkEnd)
	assert.NotEmpty(t, theme.ColorShortBreak)
	assert.NotEmpty(t, theme.ColorLongBreak)
	assert.NotEmpty(t, theme.ColorPaused)
}

func TestDuration_TextRoundTrip(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("25m")))
	assert.Equal(t, Duration(25*time.Minute), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "25m0s", string(text))
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalText([]byte("not a duration")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero work duration", func(c *Config) { c.Timer.WorkDuration = 0 }, true},
		{"negative short break", func(c *Config) { c.Timer.ShortBreak = Duration(-time.Minute) }, true},
		{"zero long break", func(c *Config) { c.Timer.LongBreak = 0 }, true},
		{"zero cycles", func(c *Config) { c.Timer.CyclesBeforeLong = 0 }, true},
		{"single cycle is fine", func(c *Config) { c.Timer.CyclesBeforeLong = 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToDomainConfig(t *testing.T) {
	cfg := DefaultConfig()
	dc := cfg.ToDomainConfig()

	assert.Equal(t, 25*time.Minute, dc.WorkDuration)
	assert.Equal(t, 5*time.Minute, dc.ShortBreakDuration)
	assert.Equal(t, 20*time.Minute, dc.LongBreakDuration)
	assert.Equal(t, 4, dc.CyclesBeforeLong)
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	path, err := Path()
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "Load should create the config file on first run")

	assert.Equal(t, Duration(25*time.Minute), cfg.Timer.WorkDuration)
	assert.Equal(t, 4, cfg.Timer.CyclesBeforeLong)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Timer.WorkDuration = Duration(50 * time.Minute)
	cfg.Timer.CyclesBeforeLong = 2
	cfg.Theme.DarkMode = true
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Duration(50*time.Minute), loaded.Timer.WorkDuration)
	assert.Equal(t, 2, loaded.Timer.CyclesBeforeLong)
	assert.True(t, loaded.Theme.DarkMode)
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pomoterm", "config.toml"), path)
}
