// Package metadata reads the Spotlight "date added" attribute of files.
package metadata

import "time"

// Provider answers when a path was added to the system. The boolean is false
// when the attribute is absent or the provider could not answer; callers treat
// both cases as "unknown".
type Provider interface {
	DateAdded(path string) (time.Time, bool)
}

// Func adapts an ordinary function to a Provider.
type Func func(path string) (time.Time, bool)

// DateAdded calls f(path).
func (f Func) DateAdded(path string) (time.Time, bool) {
	return f(path)
}
