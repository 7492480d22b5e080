//go:build !windows

package platform_test

import (
	"testing"

	"github.com/chrisdone/path/go/pkg/platform"
)

func TestToSlash(t *testing.T) {
	// Backslash is an ordinary filename character on unix.
	if got := platform.ToSlash(`foo\bar`); got != `foo\bar` {
		t.Errorf("normalization mismatch: got %q", got)
	}
}

func TestIsAbs(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/", want: true},
		{path: "//foo", want: true},
		{path: "", want: false},
		{path: "foo/bar", want: false},
		{path: "~/foo", want: false},
	}

	for _, test := range tests {
		if got := platform.IsAbs(test.path); got != test.want {
			t.Errorf("IsAbs(%q): want %v, got %v", test.path, test.want, got)
		}
	}
}

func TestRootLen(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{path: "/foo/", want: 1},
		{path: "/", want: 1},
		{path: "foo/", want: 0},
		{path: "", want: 0},
	}

	for _, test := range tests {
		if got := platform.RootLen(test.path); got != test.want {
			t.Errorf("RootLen(%q): want %d, got %d", test.path, test.want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		path string
		ok   bool
	}{
		{name: "plain", path: "/foo/bar/", ok: true},
		{name: "backslash", path: `/foo\bar/`, ok: true},
		{name: "embedded_nul", path: "/foo\x00bar/", ok: false},
		{name: "embedded_newline", path: "/foo\nbar/", ok: false},
		{name: "embedded_carriage_return", path: "/foo\rbar/", ok: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			err := platform.Validate(test.path)
			if (err == nil) != test.ok {
				t.Errorf("Validate(%q): unexpected result %v", test.path, err)
			}
		})
	}
}
