// Package report renders the recent-installs report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/blackwell-systems/recentapps/internal/bundle"
)

// TimestampLayout is used for every timestamp in the report.
const TimestampLayout = "2006-01-02 15:04:05 MST"

// Report holds everything needed to render one run's output.
type Report struct {
	Days     int
	Cutoff   time.Time
	Now      time.Time
	Location *time.Location // defaults to time.Local
	Records  []bundle.Record
}

// Sort returns a copy of records ordered most recent first; equal timestamps
// fall back to path order so output is deterministic.
func Sort(records []bundle.Record) []bundle.Record {
	sorted := make([]bundle.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.AddedAt.Equal(b.AddedAt) {
			return a.AddedAt.After(b.AddedAt)
		}
		return a.Path < b.Path
	})
	return sorted
}

// Build renders the report: a header with the window and count, then one line
// per bundle, or a single explanatory line when nothing qualifies. Only the
// header depends on Cutoff and Now.
func Build(r Report) string {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}

	var sb strings.Builder
	sb.WriteString(Header(r.Days, len(r.Records), r.Cutoff, r.Now, loc))
	sb.WriteString("\n")

	if len(r.Records) == 0 {
		fmt.Fprintf(&sb, "No applications found with date-added within the last %d days.\n", r.Days)
		return sb.String()
	}

	for _, rec := range Sort(r.Records) {
		sb.WriteString(Line(rec, loc))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Header returns the first report line, e.g.
// "Applications added in the last 14 days: 3 applications (since 2026-10-05 09:00:00 PDT, 2 weeks ago)".
func Header(days, count int, cutoff, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("Applications added in the last %s: %s (since %s, %s)",
		english.Plural(days, "day", ""),
		english.Plural(count, "application", ""),
		cutoff.In(loc).Format(TimestampLayout),
		humanize.RelTime(cutoff, now, "ago", "from now"))
}

// Line formats one record as "<timestamp> - <name> (<path>)".
func Line(rec bundle.Record, loc *time.Location) string {
	return fmt.Sprintf("%s - %s (%s)", rec.AddedAt.In(loc).Format(TimestampLayout), rec.Name(), rec.Path)
}
