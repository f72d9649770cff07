package scanner

import (
	"iter"
	"os"
	"path/filepath"
)

// Candidates yields every bundle path found directly under the scanner's
// roots. Roots are visited in order and entries within a root in lexical
// order. Missing or unreadable roots are skipped silently.
//
// Nested bundles are not visited. A path reachable from two roots is
// yielded once.
func (s *Scanner) Candidates() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})

		for _, root := range s.roots {
			for _, path := range listBundles(root) {
				key := filepath.Clean(path)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				if !yield(path) {
					return
				}
			}
		}
	}
}

// listBundles returns the bundle paths directly inside root. Entries read
// before a directory error are kept; a root that cannot be opened at all
// yields nothing.
func listBundles(root string) []string {
	entries, _ := os.ReadDir(root)

	var paths []string
	for _, entry := range entries {
		if !IsBundleName(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	return paths
}
