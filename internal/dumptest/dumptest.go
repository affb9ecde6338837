// Package dumptest provides a repr-based pretty-printer for test failure
// messages, grounded on the teacher's sqltest/querydump.go use of
// github.com/alecthomas/repr for diffing query results: here it is
// retargeted at parsed tomlette documents instead of SQL rows.
package dumptest

import (
	"fmt"

	"github.com/alecthomas/repr"

	"github.com/eidsvoll/tomlette/value"
)

// Dump renders v as an indented Go-literal-like string, suitable for
// embedding in a t.Errorf/t.Fatalf diff when an assertion on a parsed
// document fails.
func Dump(v value.Value) string {
	return repr.String(v, repr.Indent("  "))
}

// DumpTable renders a whole table the same way.
func DumpTable(t *value.Table) string {
	return repr.String(t, repr.Indent("  "))
}

// Diff is a small convenience for table-driven tests: it formats a
// want/got pair only when they differ in their repr rendering, and returns
// the empty string otherwise.
func Diff(want, got value.Value) string {
	w, g := Dump(want), Dump(got)
	if w == g {
		return ""
	}
	return fmt.Sprintf("want:\n%s\ngot:\n%s", w, g)
}
