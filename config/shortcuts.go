package config

import (
	"log/slog"
	"sort"
	"strings"
)

// Placeholder that shortcut templates substitute the captured selection into.
const Placeholder = "{selection}"

// MinimalOutputClause is appended to every template so the model's answer can
// be pasted verbatim. It is applied at load time to all templates, including
// user-edited ones, and is never written back to the config file.
const MinimalOutputClause = "\nDo not add any other word than the strict minimum asked, so it can be pasted as is."

// Shortcut binds a hotkey identifier to a prompt template.
type Shortcut struct {
	Hotkey   string
	Template string
}

// Render substitutes the captured selection into the template's placeholder.
func (s Shortcut) Render(selection string) string {
	return strings.Replace(s.Template, Placeholder, selection, 1)
}

// Table is the immutable hotkey → shortcut mapping, built once at startup.
type Table struct {
	entries map[string]Shortcut
}

// NewTable builds a shortcut table from the persisted mapping. Templates must
// contain the selection placeholder exactly once; malformed entries are a
// configuration error and are dropped with a log line rather than kept or
// treated as fatal.
func NewTable(raw map[string]string) *Table {
	entries := make(map[string]Shortcut, len(raw))
	for hotkey, template := range raw {
		if n := strings.Count(template, Placeholder); n != 1 {
			slog.Error("Shortcut template must contain the selection placeholder exactly once, dropping",
				"hotkey", hotkey, "placeholders", n)
			continue
		}
		entries[hotkey] = Shortcut{
			Hotkey:   hotkey,
			Template: template + MinimalOutputClause,
		}
	}
	return &Table{entries: entries}
}

// Lookup returns the shortcut bound to a hotkey identifier.
func (t *Table) Lookup(hotkey string) (Shortcut, bool) {
	s, ok := t.entries[hotkey]
	return s, ok
}

// Hotkeys returns the bound hotkey identifiers in stable order.
func (t *Table) Hotkeys() []string {
	keys := make([]string, 0, len(t.entries))
	for hotkey := range t.entries {
		keys = append(keys, hotkey)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of bound shortcuts.
func (t *Table) Len() int {
	return len(t.entries)
}
