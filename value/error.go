package value

import "fmt"

// Pos is a 1-indexed line/column position within a named source file,
// mirroring scanner.Pos without importing the scanner package (value has
// no other dependency on the lexer).
type Pos struct {
	File      string
	Line, Col int
}

// Error is a position-tagged failure raised while building or inspecting
// a document.
type Error struct {
	Pos     Pos
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}

// SealedError is returned by Table.Set/Array.Append once the container has
// been closed (spec.md §6 "Sealed"). It carries no position: the builder
// is expected to wrap it with one via Error before surfacing it to a
// caller, since only the builder knows where in the source the offending
// mutation was attempted.
type SealedError struct {
	Kind Kind
}

func (e SealedError) Error() string {
	return fmt.Sprintf("%s is sealed and cannot be extended", e.Kind)
}
