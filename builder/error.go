package builder

import (
	"fmt"

	"github.com/eidsvoll/tomlette/scanner"
)

// Error is the failure kind the builder raises for the violations it
// reports itself: spec.md §7 deals in one opaque "Parse" error, enriched
// here with the position the scanner had reached at the point of failure.
// Build does not rewrap other errors: lexical failures arrive as
// scanner.Error, and path-walk failures from findOrCreateSubtableMut as
// plain errors without a position.
type Error struct {
	Pos     scanner.Pos
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}
