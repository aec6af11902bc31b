package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	menuOpen     bool // Whether the document menu is open
	sourceView   bool // Whether the surface shows raw source
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "m", Desc: "documents"},
			{Key: "s", Desc: "source"},
			{Key: "r", Desc: "reload"},
			{Key: "y", Desc: "copy"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(menuOpen, sourceView bool) {
	f.menuOpen = menuOpen
	f.sourceView = sourceView
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows text in place of the bindings for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for a custom duration.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		content := f.flashMessage.render()
		if f.width > 2 {
			content = ansi.Truncate(content, f.width-2, "…")
		}
		return FooterStyle.Width(f.width).Render(content)
	}

	bindings := f.bindings
	if f.menuOpen {
		bindings = []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "1-9", Desc: "jump"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "close"},
		}
	}

	var parts []string
	for _, b := range bindings {
		desc := b.Desc
		if b.Key == "s" && f.sourceView {
			desc = "rendered"
		}
		key := FooterKeyStyle.Render(b.Key)
		parts = append(parts, key+FooterDescStyle.Render(": "+desc))
	}

	content := strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "")
	}
	return FooterStyle.Width(f.width).Render(content)
}
