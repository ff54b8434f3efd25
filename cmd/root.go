// Package cmd provides the CLI commands for the pomoterm application.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/pomoterm/pomoterm/internal/adapters/notification"
	"github.com/pomoterm/pomoterm/internal/adapters/tui"
	"github.com/pomoterm/pomoterm/internal/config"
	"github.com/pomoterm/pomoterm/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Flags
	workMinutes       int
	shortBreakMinutes int
	longBreakMinutes  int
	cycles            int
	darkMode          bool
	noNotify          bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pomoterm",
	Short: "A terminal pomodoro timer with a color-coded countdown gauge",
	Long: `Pomoterm is a terminal-resident pomodoro timer. It alternates work and
break intervals, shows a live countdown and a progress gauge whose color
shifts towards green as the work interval runs out.

Keys: s starts or resumes the countdown, p pauses, q quits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTimer,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&workMinutes, "work", "w", 25, "Work interval in minutes")
	rootCmd.Flags().IntVarP(&shortBreakMinutes, "short-break", "s", 5, "Short break in minutes")
	rootCmd.Flags().IntVarP(&longBreakMinutes, "long-break", "l", 20, "Long break in minutes")
	rootCmd.Flags().IntVarP(&cycles, "cycles", "c", 4, "Work cycles before a long break")
	rootCmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Use the dark gauge background")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomoterm\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// runTimer merges flags over the config file, validates the result and
// runs the fullscreen timer until the user quits.
func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not leave the user without a timer.
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	applyFlagOverrides(cfg, cmd)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("pomoterm needs an interactive terminal")
	}

	timer := domain.New(cfg.ToDomainConfig())
	notifier := notification.New(&cfg.Notifications)

	model := tui.NewModel(timer, cfg.Theme, func(tr domain.Transition) {
		if err := notifier.NotifyTransition(tr); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
		}
	})
	return tui.Run(model)
}

// applyFlagOverrides copies explicitly set flags over the file-backed
// configuration. Flags the user did not touch leave the file values alone.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("work") {
		cfg.Timer.WorkDuration = config.Duration(time.Duration(workMinutes) * time.Minute)
	}
	if flags.Changed("short-break") {
		cfg.Timer.ShortBreak = config.Duration(time.Duration(shortBreakMinutes) * time.Minute)
	}
	if flags.Changed("long-break") {
		cfg.Timer.LongBreak = config.Duration(time.Duration(longBreakMinutes) * time.Minute)
	}
	if flags.Changed("cycles") {
		cfg.Timer.CyclesBeforeLong = cycles
	}
	if flags.Changed("dark-mode") {
		cfg.Theme.DarkMode = darkMode
	}
	if flags.Changed("no-notify") {
		cfg.Notifications.Enabled = !noNotify
	}
}
