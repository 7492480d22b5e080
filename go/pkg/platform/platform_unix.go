//go:build !windows

package platform

// ToSlash returns s unchanged. On unix the backslash is an ordinary
// filename character, not a separator.
func ToSlash(s string) string {
	return s
}

// IsAbs reports whether the slash-normalized s is anchored at the root.
func IsAbs(s string) bool {
	return len(s) > 0 && s[0] == '/'
}

// RootLen returns the length of the absolute root prefix of a canonical
// path: 1 for absolute paths, 0 otherwise.
func RootLen(s string) int {
	if IsAbs(s) {
		return 1
	}
	return 0
}

func validateHost(string) error {
	return nil
}
