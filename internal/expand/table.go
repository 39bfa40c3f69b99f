package expand

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Table is the definition table: the immutable mapping from name to
// sequence text or combination items. It is built once from the loaded
// configuration and is read-only during expansion.
type Table struct {
	sequences    map[string]string
	combinations map[string][]Reference
}

// NewTable builds a Table from the two raw config maps. Combination
// definition strings are split on whitespace and each item is parsed
// eagerly, so malformed definitions fail at load time rather than on
// first use. Name uniqueness is enforced across the union of both maps.
func NewTable(sequences, combinations map[string]string) (*Table, error) {
	t := &Table{
		sequences:    make(map[string]string, len(sequences)),
		combinations: make(map[string][]Reference, len(combinations)),
	}

	for name, text := range sequences {
		if err := validName(name); err != nil {
			return nil, fmt.Errorf("sequence %q: %w", name, err)
		}
		t.sequences[name] = text
	}

	for name, def := range combinations {
		if err := validName(name); err != nil {
			return nil, fmt.Errorf("combination %q: %w", name, err)
		}
		if _, dup := t.sequences[name]; dup {
			return nil, fmt.Errorf("%w: %q is both a sequence and a combination", ErrDuplicateName, name)
		}
		items, err := parseItems(def)
		if err != nil {
			return nil, fmt.Errorf("combination %q: %w", name, err)
		}
		t.combinations[name] = items
	}

	return t, nil
}

// parseItems splits a raw combination definition into its parsed items.
// A whitespace-only definition is zero items, not an error.
func parseItems(def string) ([]Reference, error) {
	fields := strings.Fields(def)
	items := make([]Reference, 0, len(fields))
	for _, field := range fields {
		ref, err := ParseReference(field)
		if err != nil {
			return nil, err
		}
		items = append(items, ref)
	}
	return items, nil
}

// validName rejects names that could never be referenced: empty names,
// names containing digits (a digit starts the repetition suffix), and
// names containing whitespace (whitespace separates combination items).
func validName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	for _, r := range name {
		if isDigit(r) || unicode.IsSpace(r) {
			return ErrInvalidName
		}
	}
	return nil
}

// Sequence reports the literal text bound to name, if any.
func (t *Table) Sequence(name string) (string, bool) {
	text, ok := t.sequences[name]
	return text, ok
}

// Combination reports the item list bound to name, if any.
func (t *Table) Combination(name string) ([]Reference, bool) {
	items, ok := t.combinations[name]
	return items, ok
}

// Names returns the sorted union of all defined names.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.sequences)+len(t.combinations))
	for name := range t.sequences {
		names = append(names, name)
	}
	for name := range t.combinations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
