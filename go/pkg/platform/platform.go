// Package platform supplies the host-specific path rules consumed by the
// typed path parser: separator recognition, the absoluteness predicate,
// and the path-validity predicate. Canonical paths always use the forward
// slash regardless of what the host accepts on input.
package platform

import (
	"fmt"
	"strings"
)

// Separator is the logical separator used by every canonical path.
const Separator byte = '/'

// Validate reports whether s may be stored as a canonical path on this
// host. Control characters that no filesystem accepts in names are
// rejected everywhere; host-specific rules are layered on top.
func Validate(s string) error {
	if i := strings.IndexAny(s, "\x00\n\r"); i >= 0 {
		return fmt.Errorf("illegal control character at offset %d", i)
	}
	return validateHost(s)
}
