package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomoterm/pomoterm/internal/config"
)

// configCmd prints the effective configuration and where it lives.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path, err := config.Path()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n\n", path)
		fmt.Fprintf(out, "Work:          %s\n", cfg.Timer.WorkDuration)
		fmt.Fprintf(out, "Short break:   %s\n", cfg.Timer.ShortBreak)
		fmt.Fprintf(out, "Long break:    %s\n", cfg.Timer.LongBreak)
		fmt.Fprintf(out, "Cycles:        %d\n", cfg.Timer.CyclesBeforeLong)
		fmt.Fprintf(out, "Notifications: %v\n", cfg.Notifications.Enabled)
		fmt.Fprintf(out, "Dark mode:     %v\n", cfg.Theme.DarkMode)
		return nil
	},
}
