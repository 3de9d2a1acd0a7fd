// Package naming provides the shared "has a name" idiom used across the
// DRAM core so that banks, channels and the controller can all be
// addressed by a stable dotted path in traces and panics.
package naming

// Named describes an object that has a name.
type Named interface {
	Name() string
}

// NameBase is a base implementation of Named. It is named distinctly
// from hooking.Base so that a type needing both mixins can embed both
// anonymously without a duplicate-field-name collision.
type NameBase struct {
	name string
}

// MakeBase creates a new NameBase with the given name.
func MakeBase(name string) NameBase {
	return NameBase{name: name}
}

// Name returns the object's name.
func (b *NameBase) Name() string {
	return b.name
}
