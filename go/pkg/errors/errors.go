// Package errors provides the small error-composition surface used across
// this module: sentinel creation and nil-tolerant joining.
package errors

import (
	"errors"
	"strings"
)

// New returns an error with the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join combines errs, ignoring nils. It returns nil when nothing remains
// and, unlike the stdlib, returns a sole surviving error unchanged so that
// wrapping in the common single-error case costs nothing:
//
//	err = errors.Join(errClose, err)
func Join(errs ...error) error {
	n := 0
	var last error
	for _, err := range errs {
		if err != nil {
			n++
			last = err
		}
	}
	switch n {
	case 0:
		return nil
	case 1:
		return last
	}
	kept := make([]error, 0, n)
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	return &multiError{errs: kept}
}

type multiError struct {
	errs []error
}

func (e *multiError) Error() string {
	var b strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the joined errors to the traversal used by Is and As.
func (e *multiError) Unwrap() []error {
	return e.errs
}
