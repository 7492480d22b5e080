package typath

import (
	"fmt"
	"strings"

	"github.com/chrisdone/path/go/pkg/errors"
	"github.com/chrisdone/path/go/pkg/platform"
)

// ErrMalformed indicates input that does not parse for the requested base
// and kind. Malformed input is an expected outcome when parsing untrusted
// strings, never a fatal condition.
var ErrMalformed = errors.New("typath: malformed path")

// ParseAbsDir parses raw as an absolute directory path.
func ParseAbsDir(raw string) (AbsDir, error) {
	s, err := normalize(raw, true, true)
	if err != nil {
		return AbsDir{}, err
	}
	return AbsDir{path: s}, nil
}

// ParseRelDir parses raw as a relative directory path. The empty string is
// valid and denotes the current directory; a lone "." or "./" does not.
func ParseRelDir(raw string) (RelDir, error) {
	s, err := normalize(raw, false, true)
	if err != nil {
		return RelDir{}, err
	}
	return RelDir{path: s}, nil
}

// ParseAbsFile parses raw as an absolute file path.
func ParseAbsFile(raw string) (AbsFile, error) {
	s, err := normalize(raw, true, false)
	if err != nil {
		return AbsFile{}, err
	}
	return AbsFile{path: s}, nil
}

// ParseRelFile parses raw as a relative file path.
func ParseRelFile(raw string) (RelFile, error) {
	s, err := normalize(raw, false, false)
	if err != nil {
		return RelFile{}, err
	}
	return RelFile{path: s}, nil
}

// MustAbsDir is for constant paths; it panics on malformed input.
func MustAbsDir(raw string) AbsDir {
	p, err := ParseAbsDir(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// MustRelDir is for constant paths; it panics on malformed input.
func MustRelDir(raw string) RelDir {
	p, err := ParseRelDir(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// MustAbsFile is for constant paths; it panics on malformed input.
func MustAbsFile(raw string) AbsFile {
	p, err := ParseAbsFile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// MustRelFile is for constant paths; it panics on malformed input.
func MustRelFile(raw string) RelFile {
	p, err := ParseRelFile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// ValidAbsDir reports whether raw is already a canonical absolute
// directory string. The Valid predicates let randomized test harnesses
// filter generated strings without constructing values.
func ValidAbsDir(raw string) bool {
	s, err := normalize(raw, true, true)
	return err == nil && s == raw
}

// ValidRelDir reports whether raw is already a canonical relative
// directory string.
func ValidRelDir(raw string) bool {
	s, err := normalize(raw, false, true)
	return err == nil && s == raw
}

// ValidAbsFile reports whether raw is already a canonical absolute file
// string.
func ValidAbsFile(raw string) bool {
	s, err := normalize(raw, true, false)
	return err == nil && s == raw
}

// ValidRelFile reports whether raw is already a canonical relative file
// string.
func ValidRelFile(raw string) bool {
	s, err := normalize(raw, false, false)
	return err == nil && s == raw
}

// normalize validates raw against the (abs, dir) grammar and rewrites it
// into canonical form. It is the only producer of canonical strings from
// untrusted input; the algebra relies on its postconditions.
func normalize(raw string, abs, dir bool) (string, error) {
	if raw == "" {
		if abs || !dir {
			return "", errors.Join(ErrMalformed, fmt.Errorf("empty path is only a relative directory"))
		}
		return "", nil
	}

	s := platform.ToSlash(raw)

	if platform.IsAbs(s) != abs {
		if abs {
			return "", errors.Join(ErrMalformed, fmt.Errorf("path %q is not absolute", raw))
		}
		return "", errors.Join(ErrMalformed, fmt.Errorf("path %q is not relative", raw))
	}

	root := ""
	if abs {
		r := platform.RootLen(s)
		root, s = s[:r], s[r:]
	}

	// A trailing separator states directory intent; the file parsers
	// reject it rather than strip it.
	if !dir && strings.HasSuffix(s, "/") {
		return "", errors.Join(ErrMalformed, fmt.Errorf("file path %q ends with a separator", raw))
	}

	segs := make([]string, 0, strings.Count(s, "/")+1)
	for _, seg := range strings.Split(s, "/") {
		switch seg {
		case "", ".":
			// Separator runs collapse and current-directory references
			// vanish. A leading "~" is kept: it is an ordinary segment
			// here, never an expansion trigger.
			continue
		case "..":
			return "", errors.Join(ErrMalformed, fmt.Errorf("parent reference in %q", raw))
		}
		segs = append(segs, seg)
	}

	joined := strings.Join(segs, "/")

	if dir {
		if len(segs) == 0 {
			if !abs {
				// "." and "./" normalize to nothing, but only the empty
				// string spells the current directory.
				return "", errors.Join(ErrMalformed, fmt.Errorf("path %q normalizes to nothing", raw))
			}
			joined = ""
		} else {
			joined += "/"
		}
	} else if !hasFileChar(joined) {
		return "", errors.Join(ErrMalformed, fmt.Errorf("path %q has no file name", raw))
	}

	canonical := root + joined
	if err := platform.Validate(canonical); err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	return canonical, nil
}

// hasFileChar reports whether s contains at least one character that is
// neither a separator nor a dot.
func hasFileChar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '/' && s[i] != '.' {
			return true
		}
	}
	return false
}
