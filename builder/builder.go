// Package builder implements the recursive-descent assembly of a document
// tree from a token stream (spec.md §4.2). It owns all structural
// invariants -- no key redefinition, append-only arrays of tables, sealed
// inline composites -- via three absolute-path bookkeeping lists mirroring
// the original implementation's own representation.
package builder

import (
	"fmt"
	"strings"

	"github.com/eidsvoll/tomlette/scanner"
	"github.com/eidsvoll/tomlette/value"
)

// Builder walks a Scanner once, left to right, with no backtracking beyond
// the one-token lookahead Peek and the two-token lookahead used to
// distinguish `[table]` from `[[array-of-tables]]` headers.
type Builder struct {
	sc  *scanner.Scanner
	pos scanner.Pos

	root             *value.Table
	currentTableKey  []string
	predefinedTables []string
	inlinedTables    []string
	inlinedArrays    []string
}

// Build runs the recursive-descent builder over sc to completion, or stops
// at the first structural violation.
func Build(sc *scanner.Scanner) (*value.Table, error) {
	b := &Builder{sc: sc, root: value.NewTableValue()}
	return b.toml()
}

func (b *Builder) peek(p scanner.Posture) (scanner.Token, error) {
	tok, err := b.sc.Peek(p)
	if err == nil {
		b.pos = tok.Start
	}
	return tok, err
}

func (b *Builder) next(p scanner.Posture) (scanner.Token, error) {
	tok, err := b.sc.Next(p)
	if err == nil {
		b.pos = tok.Start
	}
	return tok, err
}

func (b *Builder) errf(format string, args ...any) error {
	return Error{Pos: b.pos, Message: fmt.Sprintf(format, args...)}
}

func (b *Builder) require(tt scanner.TokenType) error {
	tok, err := b.next(scanner.Any)
	if err != nil {
		return err
	}
	if tok.Type != tt {
		return b.errf("expected %s, found %s", tt, tok.Type)
	}
	return nil
}

func (b *Builder) requireString() (string, error) {
	tok, err := b.next(scanner.Any)
	if err != nil {
		return "", err
	}
	if tok.Type != scanner.StringToken {
		return "", b.errf("expected a key, found %s", tok.Type)
	}
	return tok.Str, nil
}

func (b *Builder) requireNewlineOrEOF() error {
	tok, err := b.next(scanner.Any)
	if err != nil {
		return err
	}
	if tok.Type != scanner.NewlineToken && tok.Type != scanner.EOFToken {
		return b.errf("expected end of line, found %s", tok.Type)
	}
	return nil
}

func (b *Builder) skipNewlines() error {
	for {
		tok, err := b.peek(scanner.Any)
		if err != nil {
			return err
		}
		if tok.Type != scanner.NewlineToken {
			return nil
		}
		if _, err := b.next(scanner.Any); err != nil {
			return err
		}
	}
}

// toml is the top-level loop: a document is a sequence of newlines,
// key=value lines (each implicitly targeting the current table), and
// table/array-of-tables headers that change which table is current.
func (b *Builder) toml() (*value.Table, error) {
	for {
		tok, err := b.peek(scanner.Any)
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case scanner.EOFToken:
			return b.root, nil
		case scanner.NewlineToken:
			if _, err := b.next(scanner.Any); err != nil {
				return nil, err
			}
		case scanner.StringToken:
			if err := b.keyValueLine(); err != nil {
				return nil, err
			}
		case scanner.LeftBracketToken:
			isArrayOfTables, err := b.peekIsArrayOfTablesHeader()
			if err != nil {
				return nil, err
			}
			if isArrayOfTables {
				key, err := b.arrayOfTablesHeader()
				if err != nil {
					return nil, err
				}
				if err := b.openArrayOfTables(key); err != nil {
					return nil, err
				}
			} else {
				key, err := b.tableHeader()
				if err != nil {
					return nil, err
				}
				if err := b.openTable(key); err != nil {
					return nil, err
				}
			}
		default:
			return nil, b.errf("expected a key, newline, end of input, or table header, found %s", tok.Type)
		}
	}
}

// peekIsArrayOfTablesHeader looks two tokens ahead, via a cheap Scanner
// clone, to tell `[[a]]` from `[a]` without committing to either (spec.md
// §9 "two-token lookahead").
func (b *Builder) peekIsArrayOfTablesHeader() (bool, error) {
	lookahead := b.sc.Clone()
	if _, err := lookahead.Next(scanner.Any); err != nil {
		return false, err
	}
	second, err := lookahead.Next(scanner.Any)
	if err != nil {
		return false, err
	}
	return second.Type == scanner.LeftBracketToken, nil
}

// keyValueLine parses one `key = value` line at top level, inserts it at
// the current table, and updates the bookkeeping lists that the table- and
// array-of-tables-header handlers consult to reject redefinitions.
func (b *Builder) keyValueLine() error {
	key, val, err := b.keyValuePair()
	if err != nil {
		return err
	}
	if err := b.requireNewlineOrEOF(); err != nil {
		return err
	}

	table, err := b.currentTableMut()
	if err != nil {
		return err
	}
	subtableKey := key[:len(key)-1]
	subtable, err := findOrCreateSubtableMut(table, subtableKey)
	if err != nil {
		return err
	}
	lastSegment := key[len(key)-1]
	if _, exists := subtable.Get(lastSegment); exists {
		return b.errf("key %q is already defined", lastSegment)
	}
	if err := subtable.Set(lastSegment, val); err != nil {
		return b.errf("%s", err)
	}

	absoluteKey, err := b.absoluteKeyString(b.currentTableKey, subtableKey)
	if err != nil {
		return err
	}
	b.predefinedTables = append(b.predefinedTables, absoluteKey)

	fullPath := absoluteKey + "." + lastSegment
	for _, inlined := range b.inlinedTables {
		if strings.HasPrefix(fullPath, inlined) {
			return b.errf("cannot extend the sealed inline table at %q", inlined)
		}
	}
	switch val.Kind() {
	case value.TableKind:
		b.inlinedTables = append(b.inlinedTables, fullPath)
	case value.ArrayKind:
		b.inlinedArrays = append(b.inlinedArrays, fullPath)
	}
	return nil
}

func (b *Builder) keyValuePair() ([]string, value.Value, error) {
	key, err := b.key()
	if err != nil {
		return nil, value.Value{}, err
	}
	if err := b.require(scanner.EqualToken); err != nil {
		return nil, value.Value{}, err
	}
	val, err := b.value()
	if err != nil {
		return nil, value.Value{}, err
	}
	return key, val, nil
}

func (b *Builder) key() ([]string, error) {
	segment, err := b.requireString()
	if err != nil {
		return nil, err
	}
	key := []string{segment}
	for {
		tok, err := b.peek(scanner.Any)
		if err != nil {
			return nil, err
		}
		if tok.Type != scanner.DotToken {
			return key, nil
		}
		if err := b.require(scanner.DotToken); err != nil {
			return nil, err
		}
		segment, err := b.requireString()
		if err != nil {
			return nil, err
		}
		key = append(key, segment)
	}
}

func (b *Builder) tableHeader() ([]string, error) {
	if err := b.require(scanner.LeftBracketToken); err != nil {
		return nil, err
	}
	key, err := b.key()
	if err != nil {
		return nil, err
	}
	if err := b.require(scanner.RightBracketToken); err != nil {
		return nil, err
	}
	if err := b.requireNewlineOrEOF(); err != nil {
		return nil, err
	}
	return key, nil
}

func (b *Builder) arrayOfTablesHeader() ([]string, error) {
	if err := b.require(scanner.LeftBracketToken); err != nil {
		return nil, err
	}
	if err := b.require(scanner.LeftBracketToken); err != nil {
		return nil, err
	}
	key, err := b.key()
	if err != nil {
		return nil, err
	}
	if err := b.require(scanner.RightBracketToken); err != nil {
		return nil, err
	}
	if err := b.require(scanner.RightBracketToken); err != nil {
		return nil, err
	}
	if err := b.requireNewlineOrEOF(); err != nil {
		return nil, err
	}
	return key, nil
}

// openTable makes key the current table, creating any missing intermediate
// tables, and rejects a header naming a table already opened by an earlier
// header (spec.md §4.2's table-header redefinition rule).
func (b *Builder) openTable(key []string) error {
	if _, err := findOrCreateSubtableMut(b.root, key); err != nil {
		return err
	}
	absKey, err := b.absoluteKeyString(nil, key)
	if err != nil {
		return err
	}
	for _, predefined := range b.predefinedTables {
		if predefined == absKey {
			return b.errf("table %q is already defined", absKey)
		}
	}
	b.predefinedTables = append(b.predefinedTables, absKey)
	b.currentTableKey = key
	return nil
}

// openArrayOfTables appends a new table to the array named by key (creating
// the array on its first occurrence), makes that new table current, and
// rejects appending to an array that was instead defined as an inline or
// dotted-key array.
func (b *Builder) openArrayOfTables(key []string) error {
	table := b.root
	for _, segment := range key[:len(key)-1] {
		v, ok := table.Get(segment)
		switch {
		case !ok:
			next := value.NewTableValue()
			if err := table.Set(segment, value.NewTable(next)); err != nil {
				return b.errf("%s", err)
			}
			table = next
		case v.Kind() == value.TableKind:
			table, _ = v.AsTable()
			if table.Sealed() {
				return b.errf("%q is a sealed inline table and cannot be extended", segment)
			}
		case v.Kind() == value.ArrayKind:
			arr, _ := v.AsArray()
			if arr.Sealed() {
				return b.errf("%q is a sealed inline array and cannot be extended", segment)
			}
			last, lok := arr.Index(arr.Len() - 1)
			if !lok {
				return b.errf("%q is an empty array, not a table", segment)
			}
			table, ok = last.AsTable()
			if !ok {
				return b.errf("%q does not hold tables", segment)
			}
		default:
			return b.errf("%q is not a table", segment)
		}
	}

	lastSegment := key[len(key)-1]
	v, ok := table.Get(lastSegment)
	switch {
	case ok && v.Kind() == value.ArrayKind:
		arr, _ := v.AsArray()
		if err := arr.Append(value.NewTable(value.NewTableValue())); err != nil {
			return b.errf("%s", err)
		}
	case !ok:
		arr := value.NewArrayValue()
		if err := arr.Append(value.NewTable(value.NewTableValue())); err != nil {
			return b.errf("%s", err)
		}
		if err := table.Set(lastSegment, value.NewArray(arr)); err != nil {
			return b.errf("%s", err)
		}
	default:
		return b.errf("%q is not an array of tables", lastSegment)
	}

	absoluteKey, err := b.absoluteKeyString(nil, key[:len(key)-1])
	if err != nil {
		return err
	}
	fullPath := absoluteKey + "." + lastSegment
	for _, inlined := range b.inlinedArrays {
		if inlined == fullPath {
			return b.errf("cannot append to the sealed array at %q", fullPath)
		}
	}

	b.currentTableKey = key
	return nil
}
