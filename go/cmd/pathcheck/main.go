// Command pathcheck validates paths against a requested base and kind and
// prints their canonical forms, one per line.
//
// Usage:
//
//	pathcheck -base=abs -kind=dir /var//log/./apt
//
// It exits non-zero if any argument is malformed.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/golang/glog"

	"github.com/chrisdone/path/go/pkg/typath"
)

var (
	base = flag.String("base", "abs", `anchoring to require: "abs" or "rel"`)
	kind = flag.String("kind", "dir", `kind to require: "dir" or "file"`)
)

func main() {
	flag.Parse()
	defer log.Flush()

	parse, err := parser(*base, *kind)
	if err != nil {
		log.Exitf("pathcheck: %v", err)
	}

	bad := 0
	for _, raw := range flag.Args() {
		display, err := parse(raw)
		if err != nil {
			log.Errorf("pathcheck: %q: %v", raw, err)
			bad++
			continue
		}
		fmt.Println(display)
	}
	if bad > 0 {
		log.Flush()
		os.Exit(1)
	}
}

func parser(base, kind string) (func(string) (string, error), error) {
	switch base + "/" + kind {
	case "abs/dir":
		return func(raw string) (string, error) {
			p, err := typath.ParseAbsDir(raw)
			return p.String(), err
		}, nil
	case "abs/file":
		return func(raw string) (string, error) {
			p, err := typath.ParseAbsFile(raw)
			return p.String(), err
		}, nil
	case "rel/dir":
		return func(raw string) (string, error) {
			p, err := typath.ParseRelDir(raw)
			return p.String(), err
		}, nil
	case "rel/file":
		return func(raw string) (string, error) {
			p, err := typath.ParseRelFile(raw)
			return p.String(), err
		}, nil
	}
	return nil, fmt.Errorf("unknown base/kind %s/%s", base, kind)
}
