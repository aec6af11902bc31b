package document

import (
	"embed"
	"fmt"
)

//go:embed pages/*.html
var pages embed.FS

// Builtin returns the bundled demonstration pages, used when the config
// lists no documents of its own.
func Builtin() *Collection {
	entries := make([]Entry, 0, 3)
	for i := 1; i <= 3; i++ {
		body, err := pages.ReadFile(fmt.Sprintf("pages/page%d.html", i))
		if err != nil {
			panic(err)
		}
		entries = append(entries, Entry{
			ID:      fmt.Sprintf("page%d", i),
			Name:    fmt.Sprintf("Document %d", i),
			Content: Inline(string(body), FormatHTML),
		})
	}
	return MustCollection(entries...)
}
