// Package scanner discovers application bundle candidates on disk.
package scanner

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/recentapps/internal/bundle"
)

// System roots that are always scanned, in order.
const (
	ApplicationsDir = "/Applications"
	UtilitiesDir    = "/Applications/Utilities"
)

// Scanner lists application bundles one level below a fixed set of roots.
type Scanner struct {
	roots []string
}

// New creates a new Scanner over the given roots.
func New(roots ...string) *Scanner {
	r := make([]string, len(roots))
	copy(r, roots)
	return &Scanner{roots: r}
}

// Scan is shorthand for New(roots...).Candidates().
func Scan(roots ...string) iter.Seq[string] {
	return New(roots...).Candidates()
}

// DefaultRoots returns the directories searched for installed applications:
// /Applications, /Applications/Utilities and ~/Applications.
// An empty home drops the per-user root.
func DefaultRoots(home string) []string {
	roots := []string{ApplicationsDir, UtilitiesDir}
	if home != "" {
		roots = append(roots, filepath.Join(home, "Applications"))
	}
	return roots
}

// IsBundleName reports whether a directory entry name looks like an
// application bundle. Hidden entries are never treated as bundles.
func IsBundleName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, bundle.Suffix) && len(name) > len(bundle.Suffix)
}
