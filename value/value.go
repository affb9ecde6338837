// Package value defines the tagged-union document value produced by the
// builder: the ten kinds spec.md §6 names (String, Integer, Float, Bool,
// the four date/time variants, Array, Table), plus the two composite
// containers (Table, Array) that track whether they may still be extended.
package value

import (
	"fmt"
	"time"
)

// Kind identifies which field of a Value holds meaningful data.
type Kind int

const (
	StringKind Kind = iota + 1
	IntegerKind
	FloatKind
	BoolKind
	OffsetDateTimeKind
	LocalDateTimeKind
	LocalDateKind
	LocalTimeKind
	ArrayKind
	TableKind
)

var kindNames = map[Kind]string{
	StringKind:         "string",
	IntegerKind:        "integer",
	FloatKind:          "float",
	BoolKind:           "bool",
	OffsetDateTimeKind: "offset-date-time",
	LocalDateTimeKind:  "local-date-time",
	LocalDateKind:      "local-date",
	LocalTimeKind:      "local-time",
	ArrayKind:          "array",
	TableKind:          "table",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Value is a single node of a parsed document. Only the field(s)
// corresponding to Kind() are meaningful; it is a value type, copied
// freely, except Array and Table payloads which are held by pointer so
// that appends/sets made through one Value are visible through copies.
type Value struct {
	kind Kind

	str string
	i   int64
	f   float64
	b   bool
	t   time.Time

	arr *Array
	tbl *Table
}

func (v Value) Kind() Kind { return v.kind }

// String renders a scalar value's natural text form. Composite kinds
// (Array, Table) have no single-line rendering and return a placeholder;
// callers that need to display them should use internal/dumptest instead.
func (v Value) String() string {
	switch v.kind {
	case StringKind:
		return v.str
	case IntegerKind:
		return fmt.Sprintf("%d", v.i)
	case FloatKind:
		return fmt.Sprintf("%g", v.f)
	case BoolKind:
		return fmt.Sprintf("%t", v.b)
	case OffsetDateTimeKind:
		return v.t.Format(time.RFC3339Nano)
	case LocalDateTimeKind:
		return v.t.Format("2006-01-02T15:04:05.999999999")
	case LocalDateKind:
		return v.t.Format("2006-01-02")
	case LocalTimeKind:
		return v.t.Format("15:04:05.999999999")
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

func NewString(s string) Value                     { return Value{kind: StringKind, str: s} }
func NewInteger(i int64) Value                      { return Value{kind: IntegerKind, i: i} }
func NewFloat(f float64) Value                      { return Value{kind: FloatKind, f: f} }
func NewBool(b bool) Value                          { return Value{kind: BoolKind, b: b} }
func NewOffsetDateTime(t time.Time) Value           { return Value{kind: OffsetDateTimeKind, t: t} }
func NewLocalDateTime(t time.Time) Value            { return Value{kind: LocalDateTimeKind, t: t} }
func NewLocalDate(t time.Time) Value                { return Value{kind: LocalDateKind, t: t} }
func NewLocalTime(t time.Time) Value                { return Value{kind: LocalTimeKind, t: t} }
func NewArray(a *Array) Value                       { return Value{kind: ArrayKind, arr: a} }
func NewTable(tb *Table) Value                      { return Value{kind: TableKind, tbl: tb} }

func (v Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.str, true
}

func (v Value) AsInteger() (int64, bool) {
	if v.kind != IntegerKind {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != FloatKind {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

func (v Value) AsOffsetDateTime() (time.Time, bool) {
	if v.kind != OffsetDateTimeKind {
		return time.Time{}, false
	}
	return v.t, true
}

func (v Value) AsLocalDateTime() (time.Time, bool) {
	if v.kind != LocalDateTimeKind {
		return time.Time{}, false
	}
	return v.t, true
}

func (v Value) AsLocalDate() (time.Time, bool) {
	if v.kind != LocalDateKind {
		return time.Time{}, false
	}
	return v.t, true
}

func (v Value) AsLocalTime() (time.Time, bool) {
	if v.kind != LocalTimeKind {
		return time.Time{}, false
	}
	return v.t, true
}

func (v Value) AsArray() (*Array, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsTable() (*Table, bool) {
	if v.kind != TableKind {
		return nil, false
	}
	return v.tbl, true
}

// Table is a set of key/value pairs with insertion order preserved for
// display purposes, plus the sealed bit spec.md §6's "Sealed" invariant
// describes: an inline table ({...}) is sealed the moment its closing
// brace is scanned, and a sealed Table can never gain or lose keys again.
type Table struct {
	order  []string
	values map[string]Value
	sealed bool
}

func NewTableValue() *Table {
	return &Table{values: make(map[string]Value)}
}

// Get returns the direct child stored under key.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Set adds a new key. It is the caller's responsibility (the builder) to
// have already rejected redefinitions per spec.md §4.2; Set only enforces
// the one invariant that is purely a property of the Table itself: a
// sealed table cannot be mutated.
func (t *Table) Set(key string, v Value) error {
	if t.sealed {
		return SealedError{Kind: TableKind}
	}
	if _, exists := t.values[key]; !exists {
		t.order = append(t.order, key)
	}
	t.values[key] = v
	return nil
}

// Keys returns the table's direct keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Table) Len() int { return len(t.order) }

func (t *Table) Sealed() bool { return t.sealed }

// Seal marks the table closed; called when an inline table's closing `}`
// is scanned (spec.md §4.2 "Inline tables and arrays").
func (t *Table) Seal() { t.sealed = true }

// Array is an ordered list of values, with the same seal-on-close
// semantics as Table: inline arrays ([...]) seal at `]`, but an array
// introduced by a [[table header]] is deliberately never sealed, since
// later `[[same.header]]` occurrences must be able to append to it.
type Array struct {
	items  []Value
	sealed bool
}

func NewArrayValue() *Array {
	return &Array{}
}

// Append adds v to the end of the array.
func (a *Array) Append(v Value) error {
	if a.sealed {
		return SealedError{Kind: ArrayKind}
	}
	a.items = append(a.items, v)
	return nil
}

func (a *Array) Index(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return Value{}, false
	}
	return a.items[i], true
}

func (a *Array) Len() int { return len(a.items) }

func (a *Array) Sealed() bool { return a.sealed }

func (a *Array) Seal() { a.sealed = true }
