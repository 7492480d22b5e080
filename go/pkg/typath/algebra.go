package typath

import (
	"fmt"
	"strings"

	"github.com/chrisdone/path/go/pkg/errors"
	"github.com/chrisdone/path/go/pkg/platform"
)

// ErrNotDescendant indicates the path does not strictly extend the
// directory it was stripped against.
var ErrNotDescendant = errors.New("typath: path is not a descendant of the directory")

// Append joins a relative path onto a directory. The result keeps the
// directory's base and the child's kind.
//
// Both arguments are canonical, so the result is the literal
// concatenation: the directory already ends with a separator and the
// child can introduce neither doubled separators nor parent references.
func Append[B Base, K Kind](dir Path[B, Dir], child Path[Rel, K]) Path[B, K] {
	return Path[B, K]{path: dir.path + child.path}
}

// Parent returns the directory immediately containing p, computed from
// p's own segments. The root is its own parent, as is the empty relative
// directory.
func (p Path[B, K]) Parent() Path[B, Dir] {
	root := platform.RootLen(p.path)
	s := strings.TrimSuffix(p.path, "/")
	if len(s) <= root {
		return Path[B, Dir]{path: p.path[:root]}
	}
	i := strings.LastIndexByte(s, '/')
	if i < root {
		i = root - 1
	}
	return Path[B, Dir]{path: s[:i+1]}
}

// Filename returns the last segment as a relative file, discarding all
// leading directory structure. A path with no segments yields the empty
// sentinel file.
func (p Path[B, K]) Filename() RelFile {
	root := platform.RootLen(p.path)
	s := strings.TrimSuffix(p.path, "/")
	if len(s) <= root {
		return RelFile{}
	}
	return RelFile{path: s[strings.LastIndexByte(s, '/')+1:]}
}

// Dirname returns the last directory segment as a relative directory.
// It depends only on the trailing structure: Dirname(Append(a, b)) equals
// Dirname(b) for any nonempty relative directory b. A path with no
// segments yields the empty relative directory.
func Dirname[B Base](p Path[B, Dir]) RelDir {
	root := platform.RootLen(p.path)
	s := strings.TrimSuffix(p.path, "/")
	if len(s) <= root {
		return RelDir{}
	}
	return RelDir{path: s[strings.LastIndexByte(s, '/')+1:] + "/"}
}

// IsParentOf reports whether p's canonical string extends dir's. No
// normalization is needed because both sides are canonical, so this is a
// literal prefix test. A directory is a parent of itself: appending the
// empty relative directory to it yields it back.
func IsParentOf[B Base, K Kind](dir Path[B, Dir], p Path[B, K]) bool {
	return strings.HasPrefix(p.path, dir.path)
}

// StripDir removes the dir prefix from p, re-anchoring the remainder as
// relative and keeping p's kind. Stripping a directory from itself is a
// non-match: the result must be a strictly deeper descendant.
func StripDir[B Base, K Kind](dir Path[B, Dir], p Path[B, K]) (Path[Rel, K], error) {
	rest, ok := strings.CutPrefix(p.path, dir.path)
	if !ok || rest == "" {
		return Path[Rel, K]{}, errors.Join(ErrNotDescendant, fmt.Errorf("path %q, directory %q", p.path, dir.path))
	}
	return Path[Rel, K]{path: rest}, nil
}
