package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/notedeck/notedeck/internal/keys"
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/surface"
	"github.com/notedeck/notedeck/internal/ui"
)

// Update handles messages. Selection changes made while handling a message
// may create a new surface; its load command is returned with the rest.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		handled, cmd := m.handleKeyPress(msg)
		cmds = append(cmds, cmd)
		if !handled {
			cmds = append(cmds, m.viewer.Update(msg))
		}

	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleMouseClick(msg))

	case tea.MouseWheelMsg:
		cmds = append(cmds, m.handleMouseWheel(msg))

	case surface.LoadedMsg:
		s := m.viewer.Current()
		pending := s != nil && s.ID() == msg.InstanceID && s.Status() == surface.StatusLoading
		cmds = append(cmds, m.viewer.Update(msg))
		if pending {
			cmds = append(cmds, m.notifyLoaded(s))
		}
		m.syncPanel()

	case ui.FlashTickMsg:
		if m.footer.HasFlash() && !m.footer.ClearIfExpired() {
			cmds = append(cmds, ui.FlashTick())
		}

	case copyResultMsg:
		cmds = append(cmds, m.handleCopyResult(msg))
	}

	cmds = append(cmds, m.flush())
	return m, tea.Batch(cmds...)
}

// handleKeyPress handles application key bindings. It reports false for
// keys the surface should see (scrolling).
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	key := msg.String()

	switch key {
	case keys.CtrlC, "q":
		return true, m.quit()
	}

	if m.store.MenuOpen() {
		return true, m.handleMenuKey(key)
	}

	switch key {
	case "m", keys.Space:
		m.store.ToggleMenu()
	case "s":
		m.viewer.ToggleSourceView()
		m.syncPanel()
	case "r":
		cmd := m.viewer.Reload()
		m.syncPanel()
		return true, cmd
	case "y":
		return true, m.copyActive()
	default:
		return false, nil
	}
	return true, nil
}

// handleMenuKey handles keys while the document menu is open. Every key is
// consumed so the surface does not scroll under the menu.
func (m *Model) handleMenuKey(key string) tea.Cmd {
	switch key {
	case keys.Up, "k":
		m.menu.MoveUp()
	case keys.Down, "j":
		m.menu.MoveDown()
	case keys.Home, "g":
		m.menu.MoveFirst()
	case keys.End, "G":
		m.menu.MoveLast()
	case keys.Enter:
		if item, ok := m.menu.Highlighted(); ok {
			m.store.Select(item.ID)
		}
	case keys.Escape:
		m.store.CloseMenu()
	case "m", keys.Space:
		m.store.ToggleMenu()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < m.collection.Len() {
				m.store.Select(m.collection.At(idx).ID)
			}
		}
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	logger.Info("App: quit requested")
	m.Close()
	return tea.Quit
}

// copyResultMsg reports how a copy request went.
type copyResultMsg struct {
	what string
	text string
	err  error
}

// copyActive copies the locator of a locator document, or the source of an
// inline one.
func (m *Model) copyActive() tea.Cmd {
	entry := m.Active()
	what, text := "locator", entry.Content.Locator()
	if !entry.Content.IsLocator() {
		what, text = "source", entry.Content.Body()
	}
	if s := m.viewer.Current(); s != nil && entry.Content.IsLocator() && s.SourceView() && s.Source() != "" {
		what, text = "source", s.Source()
	}

	copyText := m.copyText
	return func() tea.Msg {
		return copyResultMsg{what: what, text: text, err: copyText(text)}
	}
}

// handleCopyResult falls back to the terminal clipboard (OSC 52) when the
// system clipboard is unavailable.
func (m *Model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	if msg.err != nil {
		logger.Warn("App: clipboard write failed, using terminal clipboard: %v", msg.err)
		return tea.Batch(
			tea.SetClipboard(msg.text),
			m.ShowFlashInfo(fmt.Sprintf("Copied %s via terminal clipboard", msg.what)),
		)
	}
	return m.ShowFlashSuccess(fmt.Sprintf("Copied %s to clipboard", msg.what))
}

// SlowLoadThreshold is how long a load must take before a desktop
// notification is sent for it.
const SlowLoadThreshold = 5 * time.Second

// notifyLoaded sends a desktop notification for a slow load.
func (m *Model) notifyLoaded(s *surface.Surface) tea.Cmd {
	if m.notify == nil || time.Since(s.CreatedAt()) < m.slowLoad {
		return nil
	}
	notify, name, err := m.notify, s.Entry().Name, s.Err()
	return func() tea.Msg {
		_ = notify(name, err)
		return nil
	}
}
