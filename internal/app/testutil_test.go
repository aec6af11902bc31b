package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/keys"
	"github.com/notedeck/notedeck/internal/sandbox"
	"github.com/notedeck/notedeck/internal/surface"
)

// fakeClipboard records copied text and optionally fails.
type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

// testOptions returns options over the builtin pages with a fake clipboard.
func testOptions(clip *fakeClipboard) Options {
	return Options{
		Title:    "notedeck",
		Version:  "0.0.0-test",
		Policy:   sandbox.Strict(),
		CopyText: clip.write,
	}
}

// testModel creates a test Model over the builtin pages.
func testModel() (*Model, *fakeClipboard) {
	clip := &fakeClipboard{}
	return New(testOptions(clip)), clip
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(width, height int) (*Model, *fakeClipboard) {
	m, clip := testModel()
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, clip
}

// staticLoader serves pages from memory.
func staticLoader(pages map[string]string) surface.Loader {
	return surface.LoaderFunc(func(ctx context.Context, locator string) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, ok := pages[locator]
		if !ok {
			return nil, fmt.Errorf("no page at %s", locator)
		}
		return []byte(body), nil
	})
}

func locatorCollection() *document.Collection {
	return document.MustCollection(
		document.Entry{ID: "local", Name: "Local", Content: document.Inline("<p>local</p>", document.FormatHTML)},
		document.Entry{ID: "remote", Name: "Remote", Content: document.Locate("https://example.test/", document.FormatHTML)},
	)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// click sends a left click at x, y.
func click(m *Model, x, y int) *Model {
	result, _ := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	return result.(*Model)
}

// wheel sends a wheel event at x, y.
func wheel(m *Model, x, y int, button tea.MouseButton) *Model {
	result, _ := m.Update(tea.MouseWheelMsg{X: x, Y: y, Button: button})
	return result.(*Model)
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// clickTrigger clicks the first cell of the header trigger.
func clickTrigger(m *Model) *Model {
	r := m.header.TriggerRect()
	return click(m, r.X, r.Y)
}

// clickMenuItem clicks row i of the open menu.
func clickMenuItem(m *Model, i int) *Model {
	r := m.menu.Rect()
	return click(m, r.X+2, r.Y+1+i)
}

// runCmd runs cmd and any batched commands, discarding their messages.
// Timer commands must not reach it.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}
