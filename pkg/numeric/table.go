package numeric

import (
	"fmt"
	"sort"

	"github.com/bft-labs/ircsend/internal/domain"
)

// Valid numeric reply codes.
const (
	MinCode = 1
	MaxCode = 999
)

// Table maps numeric reply codes to symbolic names.
type Table map[int]string

// Entry is a single code/name pair of a Table.
type Entry struct {
	Code int
	Name string
}

// Default returns a copy of the built-in registry.
func Default() Table {
	t := make(Table, len(defaultTable))
	for code, name := range defaultTable {
		t[code] = name
	}
	return t
}

// Entries returns the table's entries in ascending code order.
// Code order is the iteration order used when generating commands, so when
// two codes share a name the higher code is the one that ends up registered.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for code, name := range t {
		entries = append(entries, Entry{Code: code, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}

// Validate checks every entry. A nil or empty table is invalid.
// The returned error wraps domain.ErrConstruction.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: numeric table is empty", domain.ErrConstruction)
	}
	for _, e := range t.Entries() {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the code range and the shape of the name.
func (e Entry) Validate() error {
	if e.Code < MinCode || e.Code > MaxCode {
		return fmt.Errorf("%w: numeric %d out of range %d-%d", domain.ErrConstruction, e.Code, MinCode, MaxCode)
	}
	if !ValidName(e.Name) {
		return fmt.Errorf("%w: numeric %d: invalid symbolic name %q", domain.ErrConstruction, e.Code, e.Name)
	}
	return nil
}

// ValidName reports whether name is an upper-case identifier such as
// ERR_NOSUCHNICK: a letter followed by letters, digits or underscores.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
		case r == '_' || (r >= '0' && r <= '9'):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Collisions returns the names that more than one code maps to, with the
// codes in ascending order.
func (t Table) Collisions() map[string][]int {
	byName := make(map[string][]int)
	for _, e := range t.Entries() {
		byName[e.Name] = append(byName[e.Name], e.Code)
	}
	for name, codes := range byName {
		if len(codes) < 2 {
			delete(byName, name)
		}
	}
	return byName
}

// Merge returns a new table holding base with overlay's entries on top.
func Merge(base, overlay Table) Table {
	out := make(Table, len(base)+len(overlay))
	for code, name := range base {
		out[code] = name
	}
	for code, name := range overlay {
		out[code] = name
	}
	return out
}
