// Package typath provides immutable path values that distinguish absolute
// from relative paths and files from directories at compile time.
//
// A value is produced either by one of the four parsers (ParseAbsDir,
// ParseRelDir, ParseAbsFile, ParseRelFile) or by the path algebra, and
// both only ever yield canonical strings:
//
//   - directories end with exactly one trailing separator, files never do;
//   - no doubled separators, no "." segments, no ".." segments;
//   - absolute paths start with the platform root, relative paths do not.
//
// Because every stored string is canonical, operations such as Append are
// plain string concatenation with no re-validation, equality is string
// equality, and values can key maps directly.
package typath

import "strings"

// Abs and Rel are the markers for the Base parameter.
type (
	Abs struct{}
	Rel struct{}
)

// File and Dir are the markers for the Kind parameter.
type (
	File struct{}
	Dir  struct{}
)

// Base constrains the anchoring of a path.
type Base interface{ Abs | Rel }

// Kind constrains what a path denotes.
type Kind interface{ File | Dir }

// Path is an immutable path carrying its base and kind in the type.
// The markers have no runtime representation; a Path is exactly one
// canonical string.
//
// Zero values: the zero RelDir is the current directory (the empty path)
// and the zero RelFile is the empty sentinel returned by Filename on a
// path with no segments. Zero absolute values do not arise from this API.
type Path[B Base, K Kind] struct {
	path string
}

// The four inhabited combinations.
type (
	AbsDir  = Path[Abs, Dir]
	AbsFile = Path[Abs, File]
	RelDir  = Path[Rel, Dir]
	RelFile = Path[Rel, File]
)

// CurDir is the display form of the empty relative directory.
const CurDir = "./"

// String returns the display form: the canonical string, except the empty
// relative directory which shows as "./" so it stays visible in output.
// Two paths of the same type display equally iff they are equal.
func (p Path[B, K]) String() string {
	if p.path == "" && isRel[B]() && isDir[K]() {
		return CurDir
	}
	return p.path
}

// Canonical returns the stored canonical string. It is the sole basis for
// equality, ordering, hashing and serialization.
func (p Path[B, K]) Canonical() string {
	return p.path
}

// Compare orders two paths of the same type by their canonical strings.
func Compare[B Base, K Kind](a, b Path[B, K]) int {
	return strings.Compare(a.path, b.path)
}

func isRel[B Base]() bool {
	var b B
	_, ok := any(b).(Rel)
	return ok
}

func isDir[K Kind]() bool {
	var k K
	_, ok := any(k).(Dir)
	return ok
}
