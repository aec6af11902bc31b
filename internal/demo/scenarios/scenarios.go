// Package scenarios contains built-in demo scenarios for notedeck.
package scenarios

import (
	"time"

	"github.com/notedeck/notedeck/internal/demo"
	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/keys"
	"github.com/notedeck/notedeck/internal/sandbox"
)

// Overview walks through the built-in pages with the mouse and the
// keyboard.
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Switch documents with the menu, keys and outside clicks",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Wait(time.Second),

		demo.Annotate("Open the document menu"),
		demo.ClickTrigger(),
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Pick a document"),
		demo.ClickItem(1),
		demo.Wait(1200 * time.Millisecond),

		demo.Annotate("Click outside to dismiss"),
		demo.ClickTrigger(),
		demo.Wait(600 * time.Millisecond),
		demo.ClickAt(4, 12),
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Keyboard: m opens, digits jump"),
		demo.Key("m"),
		demo.Wait(600 * time.Millisecond),
		demo.Key("3"),
		demo.Wait(1200 * time.Millisecond),

		demo.Annotate("Arrow keys and enter"),
		demo.Key("m"),
		demo.Key(keys.Down),
		demo.Wait(600 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Wait(1200 * time.Millisecond),

		demo.Annotate("View the source"),
		demo.Key("s"),
		demo.Wait(1500 * time.Millisecond),
		demo.Key("s"),
		demo.Capture(),
	},
}

// Mixed shows inline, markdown and fetched documents side by side.
var Mixed = &demo.Scenario{
	Name:        "mixed",
	Description: "Inline HTML, markdown and a fetched page",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Collection: document.MustCollection(
			document.Entry{
				ID:      "notes",
				Name:    "Release notes",
				Content: document.Inline("# Release notes\n\n- faster switching\n- **markdown** support\n", document.FormatMarkdown),
			},
			document.Entry{
				ID:      "status",
				Name:    "Status page",
				Content: document.Locate("https://status.example.com/", document.FormatHTML),
			},
			document.Entry{
				ID:      "snippet",
				Name:    "Snippet",
				Content: document.Inline("<h2>Snippet</h2><pre><code>fmt.Println(\"hi\")</code></pre>", document.FormatHTML),
			},
		),
		Pages: map[string]string{
			"https://status.example.com/": "<html><head><title>Status</title></head><body><h1>All systems operational</h1><ul><li>API</li><li>Web</li></ul></body></html>",
		},
		Policy: sandbox.Strict(),
	},
	Steps: []demo.Step{
		demo.Wait(time.Second),
		demo.Annotate("A fetched page"),
		demo.Key("m"),
		demo.Key("2"),
		demo.Wait(1500 * time.Millisecond),
		demo.Annotate("Inline HTML"),
		demo.Key("m"),
		demo.Key("3"),
		demo.Wait(1500 * time.Millisecond),
		demo.Capture(),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{Overview, Mixed}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
