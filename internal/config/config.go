// Package config provides configuration management for pomoterm.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pomoterm/pomoterm/internal/domain"
)

// Config holds all configuration for the pomoterm application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds the pomodoro interval settings.
type TimerConfig struct {
	WorkDuration     Duration `mapstructure:"work_duration"`
	ShortBreak       Duration `mapstructure:"short_break"`
	LongBreak        Duration `mapstructure:"long_break"`
	CyclesBeforeLong int      `mapstructure:"cycles_before_long"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ThemeConfig holds the gauge and text colors. The work gauge blends from
// ColorWorkStart towards ColorWorkEnd as the phase runs out; break phases
// use a fixed color each.
type ThemeConfig struct {
	DarkMode        bool   `mapstructure:"dark_mode"`
	ColorWorkStart  string `mapstructure:"color_work_start"`
	ColorWorkEnd    string `mapstructure:"color_work_end"`
	ColorShortBreak string `mapstructure:"color_short_break"`
	ColorLongBreak  string `mapstructure:"color_long_break"`
	ColorPaused     string `mapstructure:"color_paused"`
	ColorTitle      string `mapstructure:"color_title"`
	ColorHelp       string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWorkStart:  "#FF0000",
		ColorWorkEnd:    "#00FF00",
		ColorShortBreak: "#87CEFA",
		ColorLongBreak:  "#90EE90",
		ColorPaused:     "#6B7280",
		ColorTitle:      "#6B7280",
		ColorHelp:       "#95A5A6",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration. Interval defaults match
// the classic pomodoro scheme: 25m work, 5m short break, 20m long break,
// a long break every 4 cycles.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkDuration:     Duration(25 * time.Minute),
			ShortBreak:       Duration(5 * time.Minute),
			LongBreak:        Duration(20 * time.Minute),
			CyclesBeforeLong: 4,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Validate checks the settings the timer core assumes are already sound.
func (c *Config) Validate() error {
	if c.Timer.WorkDuration <= 0 {
		return fmt.Errorf("work_duration must be positive, got %s", c.Timer.WorkDuration)
	}
	if c.Timer.ShortBreak <= 0 {
		return fmt.Errorf("short_break must be positive, got %s", c.Timer.ShortBreak)
	}
	if c.Timer.LongBreak <= 0 {
		return fmt.Errorf("long_break must be positive, got %s", c.Timer.LongBreak)
	}
	if c.Timer.CyclesBeforeLong < 1 {
		return fmt.Errorf("cycles_before_long must be at least 1, got %d", c.Timer.CyclesBeforeLong)
	}
	return nil
}

// ToDomainConfig converts the timer settings to the domain configuration.
func (c *Config) ToDomainConfig() domain.Config {
	return domain.Config{
		WorkDuration:       time.Duration(c.Timer.WorkDuration),
		ShortBreakDuration: time.Duration(c.Timer.ShortBreak),
		LongBreakDuration:  time.Duration(c.Timer.LongBreak),
		CyclesBeforeLong:   c.Timer.CyclesBeforeLong,
	}
}

// Load loads the configuration from the config file, creating the file
// with defaults on first run.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("timer.work_duration", cfg.Timer.WorkDuration.String())
	viper.Set("timer.short_break", cfg.Timer.ShortBreak.String())
	viper.Set("timer.long_break", cfg.Timer.LongBreak.String())
	viper.Set("timer.cycles_before_long", cfg.Timer.CyclesBeforeLong)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("theme.dark_mode", cfg.Theme.DarkMode)
	viper.Set("theme.color_work_start", cfg.Theme.ColorWorkStart)
	viper.Set("theme.color_work_end", cfg.Theme.ColorWorkEnd)
	viper.Set("theme.color_short_break", cfg.Theme.ColorShortBreak)
	viper.Set("theme.color_long_break", cfg.Theme.ColorLongBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)

	return viper.WriteConfig()
}

// Path returns the path to the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomoterm", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("timer.work_duration", "25m")
	viper.SetDefault("timer.short_break", "5m")
	viper.SetDefault("timer.long_break", "20m")
	viper.SetDefault("timer.cycles_before_long", 4)
	viper.SetDefault("notifications.enabled", true)

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.dark_mode", false)
	viper.SetDefault("theme.color_work_start", defaults.ColorWorkStart)
	viper.SetDefault("theme.color_work_end", defaults.ColorWorkEnd)
	viper.SetDefault("theme.color_short_break", defaults.ColorShortBreak)
	viper.SetDefault("theme.color_long_break", defaults.ColorLongBreak)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
}
