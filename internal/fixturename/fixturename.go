// Package fixturename generates unique names for on-disk test fixtures, so
// that ParseFile tests run in parallel (t.Parallel) without colliding over
// a shared temp path. Grounded on the teacher's sqltest/fixture.go, which
// used the same gofrs/uuid-suffix idea to hand out unique database schema
// names for live-DB test fixtures; here it names temp files instead.
package fixturename

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
)

// New returns a filename of the form "<prefix>-<uuid><ext>" with the
// uuid's dashes stripped, mirroring the teacher's
// strings.ReplaceAll(uuid.String(), "-", "") convention.
func New(prefix, ext string) string {
	id := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")
	return fmt.Sprintf("%s-%s%s", prefix, id, ext)
}
