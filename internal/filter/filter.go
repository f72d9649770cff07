// Package filter decides which application bundles count as recent installs.
package filter

import (
	"iter"
	"math"
	"time"

	"github.com/blackwell-systems/recentapps/internal/bundle"
	"github.com/blackwell-systems/recentapps/internal/metadata"
)

// maxWindowDays bounds the calendar arithmetic in Cutoff; larger windows
// reach back before any bundle could exist.
const maxWindowDays = math.MaxInt32

// Cutoff returns the instant days*24h before now. Bundles added at or after
// this instant are recent. Windows too large to compute return the zero
// time, so every dated bundle qualifies.
func Cutoff(now time.Time, days int) time.Time {
	if days > maxWindowDays {
		return time.Time{}
	}
	cutoff := now.UTC().AddDate(0, 0, -days)
	if days > 0 && !cutoff.Before(now) {
		return time.Time{}
	}
	return cutoff
}

// Include looks up when path was added and returns a Record when that instant
// is not before cutoff. Bundles without a date are excluded, never errors.
func Include(p metadata.Provider, path string, cutoff time.Time) (bundle.Record, bool) {
	added, ok := p.DateAdded(path)
	if !ok {
		return bundle.Record{}, false
	}
	if added.Before(cutoff) {
		return bundle.Record{}, false
	}
	return bundle.Record{Path: path, AddedAt: added}, true
}

// Collect runs Include over every candidate in order and returns the records
// that qualify. onCandidate, if non-nil, is called before each lookup.
func Collect(p metadata.Provider, candidates iter.Seq[string], cutoff time.Time, onCandidate func(path string)) []bundle.Record {
	var records []bundle.Record
	for path := range candidates {
		if onCandidate != nil {
			onCandidate(path)
		}
		if rec, ok := Include(p, path, cutoff); ok {
			records = append(records, rec)
		}
	}
	return records
}
