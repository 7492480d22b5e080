//go:build windows

package platform

import (
	"fmt"
	"strings"
)

// ToSlash rewrites backslash separators to the logical slash.
func ToSlash(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// IsAbs reports whether the slash-normalized s is anchored at a root:
// either a leading slash or a drive letter followed by a colon and slash.
// Drive-relative input such as "C:foo" is not absolute.
func IsAbs(s string) bool {
	return RootLen(s) > 0
}

// RootLen returns the length of the absolute root prefix of a canonical
// path: 3 for a drive root ("c:/"), 1 for a bare slash, 0 otherwise.
func RootLen(s string) int {
	if len(s) > 2 && isDriveLetter(s[0]) && s[1] == ':' && s[2] == '/' {
		return 3
	}
	if len(s) > 0 && s[0] == '/' {
		return 1
	}
	return 0
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

var reservedNames = func() map[string]bool {
	m := map[string]bool{"CON": true, "PRN": true, "AUX": true, "NUL": true}
	for i := '1'; i <= '9'; i++ {
		m["COM"+string(i)] = true
		m["LPT"+string(i)] = true
	}
	return m
}()

func validateHost(s string) error {
	for _, seg := range strings.Split(s[RootLen(s):], "/") {
		if seg == "" {
			continue
		}
		if i := strings.IndexAny(seg, `<>:"|?*`); i >= 0 {
			return fmt.Errorf("segment %q contains reserved character %q", seg, seg[i])
		}
		// Device names are reserved with any extension, e.g. "NUL.txt".
		name := seg
		if i := strings.IndexByte(name, '.'); i >= 0 {
			name = name[:i]
		}
		if reservedNames[strings.ToUpper(name)] {
			return fmt.Errorf("segment %q is a reserved device name", seg)
		}
	}
	return nil
}
