// Package tomlette is the public entry point: Parse/ParseFile run the
// scanner and builder over a document and hand back a Table, accessed
// through the Value/Table/Array façade re-exported below (dotted-path
// Lookup and Override are in accessor.go).
package tomlette

import (
	"fmt"
	"os"

	"github.com/eidsvoll/tomlette/builder"
	"github.com/eidsvoll/tomlette/scanner"
	"github.com/eidsvoll/tomlette/value"
)

// Parse builds a document tree from text. file is used only to label
// positions in any returned error; it need not be a real path.
func Parse(text string, file string) (*Table, error) {
	sc := scanner.New(text, scanner.FileRef(file))
	root, err := builder.Build(sc)
	if err != nil {
		return nil, err
	}
	return &Table{t: root}, nil
}

// ParseFile reads path and parses its contents, grounded on the teacher's
// ParseFilesystems (sqlparser/parser.go): here a single real file takes the
// place of an fs.FS tree-walk, since combining multiple documents into one
// is a Non-goal of this format (spec.md §1).
func ParseFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tomlette: reading %s: %w", path, err)
	}
	return Parse(string(data), path)
}

// reexported so callers never need to import the value package directly.
type (
	Value = value.Value
	Array = value.Array
)

// Table is the root (or any nested) table of a parsed document.
type Table struct {
	t *value.Table
}

func (t *Table) Keys() []string { return t.t.Keys() }
func (t *Table) Len() int       { return t.t.Len() }

// Get returns the direct child stored under key, with no dotted-path
// traversal; use Lookup for a dotted path.
func (t *Table) Get(key string) (Value, bool) {
	return t.t.Get(key)
}
