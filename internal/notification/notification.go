// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/notedeck/notedeck/internal/logger"
)

// AppName is the notification title.
const AppName = "notedeck"

// notifier sends the notification; tests replace it.
var notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores delivery through beeep.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// DocumentLoaded reports that a fetched document finished loading.
func DocumentLoaded(name string, loadErr error) error {
	if loadErr != nil {
		return Send(AppName, name+" failed to load")
	}
	return Send(AppName, name+" is ready")
}
