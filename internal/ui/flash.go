package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType selects the icon and colour of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer.
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient footer notice.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

func (f *FlashMessage) icon() string {
	switch f.Type {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (f *FlashMessage) render() string {
	text := f.icon() + " " + f.Text
	switch f.Type {
	case FlashError:
		return FlashErrorStyle.Render(text)
	case FlashWarning:
		return FlashWarningStyle.Render(text)
	case FlashSuccess:
		return FlashSuccessStyle.Render(text)
	default:
		return FlashInfoStyle.Render(text)
	}
}

// FlashTickMsg asks the footer to drop an expired flash.
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}
