package bundle

import (
	"path/filepath"
	"time"
)

// Suffix is the name suffix macOS uses for application bundles.
const Suffix = ".app"

// Record represents an application bundle that passed the cutoff test.
type Record struct {
	Path    string    // absolute bundle path, e.g. /Applications/Safari.app
	AddedAt time.Time // Spotlight kMDItemDateAdded
}

// Name returns the bundle directory name (e.g. "Safari.app").
func (r Record) Name() string {
	return filepath.Base(r.Path)
}
