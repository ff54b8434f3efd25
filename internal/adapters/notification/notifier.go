// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/pomoterm/pomoterm/internal/config"
	"github.com/pomoterm/pomoterm/internal/domain"
)

// Notifier sends desktop notifications for phase changes.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyTransition announces a phase change.
func (n *Notifier) NotifyTransition(tr domain.Transition) error {
	switch tr.To {
	case domain.PhaseShortBreak:
		return n.Notify("🍅 Work complete!", "Time for a short break.")
	case domain.PhaseLongBreak:
		return n.Notify("🍅 Work complete!", "Take a long break, you earned it.")
	case domain.PhaseWork:
		return n.Notify("☕ Break over!", "Back to work.")
	default:
		return fmt.Errorf("unknown phase: %v", tr.To)
	}
}
