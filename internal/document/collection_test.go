package document

import (
	"strings"
	"testing"

	"github.com/notedeck/notedeck/internal/errors"
)

func testCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := NewCollection(
		Entry{ID: "page1", Name: "Document 1", Content: Inline("<p>one</p>", FormatHTML)},
		Entry{ID: "page2", Name: "Document 2", Content: Inline("<p>two</p>", FormatHTML)},
		Entry{ID: "page3", Name: "Document 3", Content: Locate("notes/three.md", FormatMarkdown)},
	)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	return c
}

func TestNewCollection_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty", nil},
		{"missing id", []Entry{{ID: "a"}, {Name: "no id"}}},
		{"duplicate id", []Entry{{ID: "a"}, {ID: "b"}, {ID: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection(tt.entries...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.KindConfig) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestNewCollection_DefaultsNameToID(t *testing.T) {
	c := MustCollection(Entry{ID: "only"})
	if c.First().Name != "only" {
		t.Errorf("Name = %q, want id as label", c.First().Name)
	}
}

func TestCollection_Order(t *testing.T) {
	c := testCollection(t)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for i, want := range []string{"page1", "page2", "page3"} {
		if c.At(i).ID != want {
			t.Errorf("At(%d) = %q, want %q", i, c.At(i).ID, want)
		}
		if c.IndexOf(want) != i {
			t.Errorf("IndexOf(%q) = %d, want %d", want, c.IndexOf(want), i)
		}
	}
	if c.IndexOf("nope") != -1 {
		t.Error("IndexOf unknown id should be -1")
	}
}

func TestCollection_EntriesIsACopy(t *testing.T) {
	c := testCollection(t)

	entries := c.Entries()
	entries[0].Name = "mutated"

	if c.First().Name != "Document 1" {
		t.Error("mutating Entries() result must not change the collection")
	}
}

func TestCollection_InputIsCopied(t *testing.T) {
	entries := []Entry{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	c := MustCollection(entries...)

	entries[0].Name = "changed"
	if c.First().Name != "A" {
		t.Error("collection must not alias the caller's slice")
	}
}

func TestCollection_Resolve(t *testing.T) {
	c := testCollection(t)

	tests := []struct {
		id       string
		wantName string
	}{
		{"page1", "Document 1"},
		{"page2", "Document 2"},
		{"page3", "Document 3"},
		{"unknown", "Document 1"},
		{"", "Document 1"},
		{"PAGE2", "Document 1"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := c.Resolve(tt.id).Name; got != tt.wantName {
				t.Errorf("Resolve(%q) = %q, want %q", tt.id, got, tt.wantName)
			}
		})
	}
}

func TestContent_ExactlyOneRepresentation(t *testing.T) {
	inline := Inline("<h1>x</h1>", FormatHTML)
	if inline.IsLocator() || inline.Locator() != "" || inline.Body() == "" {
		t.Errorf("inline content has wrong shape: %+v", inline)
	}

	loc := Locate("https://example.test/doc.html", FormatHTML)
	if !loc.IsLocator() || loc.Body() != "" || loc.Locator() == "" {
		t.Errorf("locator content has wrong shape: %+v", loc)
	}
	if loc.Kind().String() != "locator" || inline.Kind().String() != "inline" {
		t.Error("unexpected kind names")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatHTML, false},
		{"HTML", FormatHTML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"txt", FormatText, false},
		{"pdf", FormatHTML, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"notes/a.md":                      FormatMarkdown,
		"notes/A.MARKDOWN":                FormatMarkdown,
		"https://x.test/readme.txt?raw=1": FormatText,
		"https://x.test/page":             FormatHTML,
		"page.html#top":                   FormatHTML,
	}
	for in, want := range tests {
		if got := DetectFormat(in); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuiltin(t *testing.T) {
	c := Builtin()

	if c.Len() != 3 {
		t.Fatalf("Builtin has %d entries, want 3", c.Len())
	}
	for i, e := range c.Entries() {
		if e.Content.IsLocator() {
			t.Errorf("builtin %s should be inline", e.ID)
		}
		if !strings.Contains(e.Content.Body(), "<html") {
			t.Errorf("builtin %s body should be an HTML document", e.ID)
		}
		if e.Name != []string{"Document 1", "Document 2", "Document 3"}[i] {
			t.Errorf("unexpected name %q", e.Name)
		}
	}
}
