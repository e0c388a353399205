package shape

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Prefixes for container identifiers. Shapes use their Kind name.
const (
	PrefixLayer    = "layer"
	PrefixPage     = "page"
	PrefixDocument = "doc"
	PrefixProject  = "proj"
	PrefixStyle    = "style"
)

// ID is a stable, globally unique identifier of the form prefix_suffix.
type ID string

// NewID returns a fresh identifier with the given prefix.
func NewID(prefix string) ID {
	return ID(typeid.MustGenerate(prefix).String())
}

// Prefix returns the prefix part of the identifier, or "" when id is not
// a valid TypeID.
func (id ID) Prefix() string {
	parsed, err := typeid.Parse(string(id))
	if err != nil {
		return ""
	}
	return parsed.Prefix()
}

// ValidateID checks that id is well formed and carries the prefix of kind k.
func ValidateID(id ID, k Kind) error {
	parsed, err := typeid.Parse(string(id))
	if err != nil {
		return fmt.Errorf("shape: invalid id %q: %w", id, err)
	}
	if parsed.Prefix() != k.String() {
		return fmt.Errorf("shape: expected prefix %q but got %q in id %q", k, parsed.Prefix(), id)
	}
	return nil
}
