// Package panicutil provides panic recovery helpers for background goroutines.
package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Capture runs the function and recovers any panic it raises, returning the
// recovered value as a *panics.ErrRecovered error with the panicking stack.
// It returns nil when the function returns normally.
func Capture(f func()) error {
	var catcher panics.Catcher
	catcher.Try(f)
	if recovered := catcher.Recovered(); recovered != nil {
		return recovered.AsError()
	}
	return nil
}
