package expand

import "errors"

// Error kinds surfaced by the expansion engine. Callers match them with
// errors.Is; the wrapped message carries the offending token, name, or
// cycle path.
var (
	// ErrEmptyName reports a token or item with no name component.
	ErrEmptyName = errors.New("empty name")

	// ErrMalformedRepetition reports a trailing repetition suffix that is
	// neither a decimal integer nor a low..high pair.
	ErrMalformedRepetition = errors.New("malformed repetition")

	// ErrInvalidRange reports a range whose low bound exceeds its high bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownName reports a reference to a name with no definition.
	ErrUnknownName = errors.New("unknown name")

	// ErrCyclicDefinition reports a name referenced from within its own
	// expansion path.
	ErrCyclicDefinition = errors.New("cyclic definition")

	// ErrInvalidName reports a definition key that cannot be referenced
	// (contains digits or whitespace).
	ErrInvalidName = errors.New("invalid name")

	// ErrDuplicateName reports a name defined as both a sequence and a
	// combination.
	ErrDuplicateName = errors.New("name defined twice")
)
