package builder

import (
	"fmt"

	"github.com/eidsvoll/tomlette/value"
)

// findOrCreateSubtableMut walks root along key, creating an empty Table at
// each missing segment, and descending into the last element of an array
// when a segment names one (spec.md §4.2's "dotted keys may extend into an
// array of tables' last element" rule). It never creates or extends an
// array itself -- only a `[[header]]` does that.
func findOrCreateSubtableMut(root *value.Table, key []string) (*value.Table, error) {
	table := root
	for _, segment := range key {
		existing, ok := table.Get(segment)
		if !ok {
			next := value.NewTableValue()
			if err := table.Set(segment, value.NewTable(next)); err != nil {
				return nil, err
			}
			table = next
			continue
		}
		switch existing.Kind() {
		case value.TableKind:
			table, _ = existing.AsTable()
			if table.Sealed() {
				return nil, fmt.Errorf("%q is a sealed inline table and cannot be extended", segment)
			}
		case value.ArrayKind:
			arr, _ := existing.AsArray()
			if arr.Sealed() {
				return nil, fmt.Errorf("%q is a sealed inline array and cannot be extended", segment)
			}
			last, ok := arr.Index(arr.Len() - 1)
			if !ok {
				return nil, fmt.Errorf("%q is an empty array, not a table", segment)
			}
			table, ok = last.AsTable()
			if !ok {
				return nil, fmt.Errorf("%q does not hold tables", segment)
			}
		default:
			return nil, fmt.Errorf("%q is not a table", segment)
		}
	}
	return table, nil
}

// currentTableMut resolves the table that a bare key=value line at the top
// level currently targets: the root, navigated along currentTableKey.
// Unlike findOrCreateSubtableMut it never creates anything -- every segment
// was already materialized when its header was opened.
func (b *Builder) currentTableMut() (*value.Table, error) {
	table := b.root
	for _, segment := range b.currentTableKey {
		existing, ok := table.Get(segment)
		if !ok {
			return nil, b.errf("%q is not defined", segment)
		}
		switch existing.Kind() {
		case value.TableKind:
			table, _ = existing.AsTable()
			if table.Sealed() {
				return nil, b.errf("%q is a sealed inline table and cannot be extended", segment)
			}
		case value.ArrayKind:
			arr, _ := existing.AsArray()
			if arr.Sealed() {
				return nil, b.errf("%q is a sealed inline array and cannot be extended", segment)
			}
			last, ok := arr.Index(arr.Len() - 1)
			if !ok {
				return nil, b.errf("%q is an empty array, not a table", segment)
			}
			table, ok = last.AsTable()
			if !ok {
				return nil, b.errf("%q does not hold tables", segment)
			}
		default:
			return nil, b.errf("%q is not a table", segment)
		}
	}
	return table, nil
}

// absoluteKeyString renders baseKey followed by relKey as the dotted,
// array-index-qualified path used to compare table/array identities across
// header occurrences (e.g. ".a.b" or ".a.2.b" for the third element of
// array-of-tables "a"). It is computed by walking the already-built tree,
// mirroring the original implementation's own `absolute_key_string`.
func (b *Builder) absoluteKeyString(baseKey, relKey []string) (string, error) {
	segments := make([]string, 0, len(baseKey)+len(relKey))
	segments = append(segments, baseKey...)
	segments = append(segments, relKey...)

	var path string
	table := b.root
	for _, segment := range segments {
		existing, ok := table.Get(segment)
		if !ok {
			return "", b.errf("%q is not defined", segment)
		}
		switch existing.Kind() {
		case value.TableKind:
			path += "." + segment
			table, _ = existing.AsTable()
		case value.ArrayKind:
			arr, _ := existing.AsArray()
			path += fmt.Sprintf(".%s.%d", segment, arr.Len()-1)
			last, ok := arr.Index(arr.Len() - 1)
			if !ok {
				return "", b.errf("%q is an empty array, not a table", segment)
			}
			table, ok = last.AsTable()
			if !ok {
				return "", b.errf("%q does not hold tables", segment)
			}
		default:
			return "", b.errf("%q is not a table", segment)
		}
	}
	return path, nil
}
