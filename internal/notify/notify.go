// Package notify — коллаборатор уведомлений игрока. Ядро использует его
// fire-and-forget; при отсутствии нотификатора всё деградирует в no-op.
package notify

import (
	"log/slog"
	"time"
)

// Severity of a player-facing notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Notifier delivers a short message to the player.
type Notifier interface {
	Notify(message string, duration time.Duration, severity Severity)
}

// Send is a nil-safe helper: a nil Notifier is a no-op.
func Send(n Notifier, message string, duration time.Duration, severity Severity) {
	if n == nil {
		return
	}
	n.Notify(message, duration, severity)
}

// SlogNotifier пишет уведомления в slog; дефолт для headless-запусков.
type SlogNotifier struct{}

func (SlogNotifier) Notify(message string, duration time.Duration, severity Severity) {
	switch severity {
	case SeverityError:
		slog.Error("notify", "message", message, "duration", duration)
	case SeverityWarn:
		slog.Warn("notify", "message", message, "duration", duration)
	default:
		slog.Info("notify", "message", message, "duration", duration)
	}
}
