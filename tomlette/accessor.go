package tomlette

import (
	"fmt"

	"github.com/eidsvoll/tomlette/keypath"
	"github.com/eidsvoll/tomlette/value"
)

// Lookup resolves a dotted path (e.g. "server.database.host") against t,
// descending through nested tables one segment at a time. It reports false
// if any intermediate segment is missing or is not itself a table, or if
// path is not a well-formed dotted key per the strict bare-key grammar
// (spec.md §6.2).
func (t *Table) Lookup(path string) (Value, bool) {
	segments, err := keypath.Split(path)
	if err != nil {
		return Value{}, false
	}

	current := t.t
	for i, segment := range segments {
		v, ok := current.Get(segment)
		if !ok {
			return Value{}, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		next, ok := v.AsTable()
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return Value{}, false
}

// Override applies one CLI-style "--set path=value" assignment (spec.md
// §10.2): path is validated against the permissive Unicode-identifier
// grammar rather than the document's own strict bare-key grammar, since a
// user typing an override at a shell prompt is not bound by what the
// source document's own syntax could express. Missing intermediate tables
// are created; an existing sealed table, or a non-table intermediate,
// fails the same way a document's own dotted key would. Override values are
// always strings -- the CLI has no notation for typed literals.
func (t *Table) Override(path, val string) error {
	segments, err := keypath.SplitPermissive(path)
	if err != nil {
		return fmt.Errorf("tomlette: %w", err)
	}

	current := t.t
	for _, segment := range segments[:len(segments)-1] {
		existing, ok := current.Get(segment)
		if !ok {
			next := value.NewTableValue()
			if err := current.Set(segment, value.NewTable(next)); err != nil {
				return fmt.Errorf("tomlette: %q: %w", segment, err)
			}
			current = next
			continue
		}
		next, ok := existing.AsTable()
		if !ok {
			return fmt.Errorf("tomlette: %q is not a table", segment)
		}
		if next.Sealed() {
			return fmt.Errorf("tomlette: %q: %w", segment, value.SealedError{Kind: value.TableKind})
		}
		current = next
	}

	leaf := segments[len(segments)-1]
	if err := current.Set(leaf, value.NewString(val)); err != nil {
		return fmt.Errorf("tomlette: %q: %w", leaf, err)
	}
	return nil
}
