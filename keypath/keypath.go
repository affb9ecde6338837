// Package keypath splits dotted key-path strings: the strict bare-key
// grammar shared with the builder for Table.Lookup, and a more permissive
// Unicode-identifier grammar for CLI override flags (spec.md §10.2), which
// accepts any key a user might reasonably type, not just the exact subset
// a source document may define.
package keypath

import (
	"fmt"
	"strings"

	"github.com/smasher164/xid"
)

// Split parses a strict, builder-grammar dotted path such as "a.b-c.d" into
// its segments. Quoted-string segments (e.g. "a.\"b.c\".d") are not
// supported; Lookup only ever needs to address keys the document's own
// bare-key/dotted-key syntax could have written.
func Split(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("keypath: empty path")
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if !isBareKey(seg) {
			return nil, fmt.Errorf("keypath: %q is not a valid key segment", seg)
		}
	}
	return segments, nil
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
		if !ok {
			return false
		}
	}
	return true
}

// SplitPermissive parses the more relaxed dotted-path grammar accepted by
// the CLI's --set flag (spec.md §10.2): segments may be any Unicode
// identifier, not just the CORE's ASCII bare-key subset, since a user
// overriding a value from the command line is not bound by what the
// source document's own grammar could express.
func SplitPermissive(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("keypath: empty path")
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if !isPermissiveKey(seg) {
			return nil, fmt.Errorf("keypath: %q is not a valid key segment", seg)
		}
	}
	return segments, nil
}

func isPermissiveKey(s string) bool {
	first := true
	for _, r := range s {
		if first {
			first = false
			if !(xid.Start(r) || r == '_') {
				return false
			}
			continue
		}
		if !(xid.Continue(r) || r == '-') {
			return false
		}
	}
	return !first // reject empty segments
}
