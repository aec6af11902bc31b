// Package document holds the static set of documents a user can switch
// between. A Collection is built once at startup and never changes.
package document

import (
	"github.com/notedeck/notedeck/internal/errors"
)

// Entry is one selectable document.
type Entry struct {
	ID      string
	Name    string
	Content Content
}

// Collection is an ordered, immutable, non-empty list of entries.
// Insertion order is display order.
type Collection struct {
	entries []Entry
	index   map[string]int
}

// NewCollection validates entries and copies them into a Collection.
// An empty list, an empty ID or a repeated ID is a configuration error.
func NewCollection(entries ...Entry) (*Collection, error) {
	if len(entries) == 0 {
		return nil, errors.EmptyCollection()
	}

	c := &Collection{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.ID == "" {
			return nil, errors.MissingDocumentID(i)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, errors.DuplicateDocument(e.ID)
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		c.entries[i] = e
		c.index[e.ID] = i
	}
	return c, nil
}

// MustCollection is NewCollection for static tables known to be valid.
func MustCollection(entries ...Entry) *Collection {
	c, err := NewCollection(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// At returns the entry at position i.
func (c *Collection) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of the entries in display order.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// First returns the default entry.
func (c *Collection) First() Entry {
	return c.entries[0]
}

// IndexOf returns the display position of id, or -1.
func (c *Collection) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Lookup returns the entry with the given id.
func (c *Collection) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Resolve returns the entry with the given id, falling back to First when
// nothing matches. It never reports "no entry".
func (c *Collection) Resolve(id string) Entry {
	if e, ok := c.Lookup(id); ok {
		return e
	}
	return c.First()
}
