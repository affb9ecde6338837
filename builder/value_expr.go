package builder

import (
	"github.com/eidsvoll/tomlette/scanner"
	"github.com/eidsvoll/tomlette/value"
)

// value parses one value expression: a scalar literal, an inline table, or
// an inline array (spec.md §4.2 "value"). Scalars are peeked in Value
// posture to keep the scanner from mistaking them for bare keys, then
// consumed on a second pass once the kind is known.
func (b *Builder) value() (value.Value, error) {
	tok, err := b.peek(scanner.Value)
	if err != nil {
		return value.Value{}, err
	}

	switch tok.Type {
	case scanner.StringToken:
		b.next(scanner.Value)
		return value.NewString(tok.Str), nil
	case scanner.IntegerToken:
		b.next(scanner.Value)
		return value.NewInteger(tok.Int), nil
	case scanner.FloatToken:
		b.next(scanner.Value)
		return value.NewFloat(tok.Flt), nil
	case scanner.BoolToken:
		b.next(scanner.Value)
		return value.NewBool(tok.Bln), nil
	case scanner.OffsetDateTimeToken:
		b.next(scanner.Value)
		return value.NewOffsetDateTime(tok.Time), nil
	case scanner.LocalDateTimeToken:
		b.next(scanner.Value)
		return value.NewLocalDateTime(tok.Time), nil
	case scanner.LocalDateToken:
		b.next(scanner.Value)
		return value.NewLocalDate(tok.Time), nil
	case scanner.LocalTimeToken:
		b.next(scanner.Value)
		return value.NewLocalTime(tok.Time), nil
	case scanner.LeftBraceToken:
		return b.inlineTable()
	case scanner.LeftBracketToken:
		return b.array()
	default:
		return value.Value{}, b.errf("expected a value, found %s", tok.Type)
	}
}

// inlineTable parses `{ k = v, ... }`. It is sealed the instant its closing
// brace is scanned (spec.md §6 "Sealed"): no later dotted key or header can
// ever add to it again.
func (b *Builder) inlineTable() (value.Value, error) {
	if err := b.require(scanner.LeftBraceToken); err != nil {
		return value.Value{}, err
	}

	inlineTable := value.NewTableValue()

	tok, err := b.peek(scanner.Any)
	if err != nil {
		return value.Value{}, err
	}
	switch tok.Type {
	case scanner.RightBraceToken:
		// empty inline table
	case scanner.StringToken:
		if err := b.inlineTablePair(inlineTable); err != nil {
			return value.Value{}, err
		}
		for {
			tok, err := b.peek(scanner.Any)
			if err != nil {
				return value.Value{}, err
			}
			if tok.Type != scanner.CommaToken {
				break
			}
			if err := b.require(scanner.CommaToken); err != nil {
				return value.Value{}, err
			}
			if err := b.inlineTablePair(inlineTable); err != nil {
				return value.Value{}, err
			}
		}
	default:
		return value.Value{}, b.errf("expected a key or '}', found %s", tok.Type)
	}

	if err := b.require(scanner.RightBraceToken); err != nil {
		return value.Value{}, err
	}
	inlineTable.Seal()
	return value.NewTable(inlineTable), nil
}

func (b *Builder) inlineTablePair(into *value.Table) error {
	key, val, err := b.keyValuePair()
	if err != nil {
		return err
	}
	subtableKey := key[:len(key)-1]
	subtable, err := findOrCreateSubtableMut(into, subtableKey)
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
	return nil
}

// array parses `[ v, v, ... ]`. Newlines are permitted (and skipped)
// between elements and around commas, but the array itself seals the same
// way an inline table does: its closing bracket makes it immutable.
func (b *Builder) array() (value.Value, error) {
	if err := b.require(scanner.LeftBracketToken); err != nil {
		return value.Value{}, err
	}

	arr := value.NewArrayValue()

	tok, err := b.peek(scanner.Any)
	if err != nil {
		return value.Value{}, err
	}
	if tok.Type != scanner.RightBracketToken {
		if err := b.skipNewlines(); err != nil {
			return value.Value{}, err
		}
		v, err := b.value()
		if err != nil {
			return value.Value{}, err
		}
		if err := arr.Append(v); err != nil {
			return value.Value{}, b.errf("%s", err)
		}
		if err := b.skipNewlines(); err != nil {
			return value.Value{}, err
		}
		for {
			tok, err := b.peek(scanner.Any)
			if err != nil {
				return value.Value{}, err
			}
			if tok.Type != scanner.CommaToken {
				break
			}
			if err := b.require(scanner.CommaToken); err != nil {
				return value.Value{}, err
			}
			if err := b.skipNewlines(); err != nil {
				return value.Value{}, err
			}
			tok, err = b.peek(scanner.Any)
			if err != nil {
				return value.Value{}, err
			}
			if tok.Type == scanner.RightBracketToken {
				break
			}
			v, err := b.value()
			if err != nil {
				return value.Value{}, err
			}
			if err := arr.Append(v); err != nil {
				return value.Value{}, b.errf("%s", err)
			}
			if err := b.skipNewlines(); err != nil {
				return value.Value{}, err
			}
		}
	}

	if err := b.require(scanner.RightBracketToken); err != nil {
		return value.Value{}, err
	}
	arr.Seal()
	return value.NewArray(arr), nil
}
