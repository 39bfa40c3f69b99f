package expand

import (
	"fmt"
	"math/rand"
	"strings"
)

// Expander resolves references against a definition table. It holds no
// mutable state besides the injected random source, so one Expander
// serves a whole run.
type Expander struct {
	table *Table
	rng   Rand
}

// systemRand draws from the process-level generator.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.Intn(n) }

// New creates an Expander over table. A nil rng selects the
// process-level random source; tests pass a seeded one.
func New(table *Table, rng Rand) *Expander {
	if rng == nil {
		rng = systemRand{}
	}
	return &Expander{table: table, rng: rng}
}

// ExpandToken parses a raw token and expands it to its final text.
func (e *Expander) ExpandToken(token string) (string, error) {
	ref, err := ParseReference(token)
	if err != nil {
		return "", err
	}
	return e.Expand(ref)
}

// Expand resolves ref to its final literal text.
func (e *Expander) Expand(ref Reference) (string, error) {
	frags, err := e.Fragments(ref)
	if err != nil {
		return "", err
	}
	return strings.Join(frags, ""), nil
}

// Fragments resolves ref to an ordered list of literal fragments, one
// per sequence repetition. Their concatenation equals Expand's result;
// the split lets a caller insert pauses between repetitions. Fragment
// order follows repetition order and, within a combination, definition
// order. On error no fragments are returned.
func (e *Expander) Fragments(ref Reference) ([]string, error) {
	var out []string
	if err := e.expand(ref, nil, make(map[string]bool), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// expand is the recursive core. path is the ordered list of names on
// the current resolution chain and onPath its membership set; together
// they detect cycles against the active path only, so diamond-shaped
// reuse of a name from sibling branches stays legal.
func (e *Expander) expand(ref Reference, path []string, onPath map[string]bool, out *[]string) error {
	if onPath[ref.Name] {
		chain := append(append([]string(nil), path...), ref.Name)
		return fmt.Errorf("%w: %s", ErrCyclicDefinition, strings.Join(chain, " -> "))
	}

	count := ref.Repeat.Count(e.rng)

	if text, ok := e.table.Sequence(ref.Name); ok {
		for i := 0; i < count; i++ {
			*out = append(*out, text)
		}
		return nil
	}

	items, ok := e.table.Combination(ref.Name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, ref.Name)
	}

	path = append(path, ref.Name)
	onPath[ref.Name] = true
	for i := 0; i < count; i++ {
		for _, item := range items {
			if err := e.expand(item, path, onPath, out); err != nil {
				return err
			}
		}
	}
	delete(onPath, ref.Name)
	return nil
}
