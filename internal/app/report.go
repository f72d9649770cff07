package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/recentapps/internal/filter"
	"github.com/blackwell-systems/recentapps/internal/metadata"
	"github.com/blackwell-systems/recentapps/internal/output"
	"github.com/blackwell-systems/recentapps/internal/report"
	"github.com/blackwell-systems/recentapps/internal/scanner"
)

// reportEnv holds the fixed inputs of one run and the collaborators the
// pipeline talks to.
type reportEnv struct {
	roots      []string
	provider   metadata.Provider
	outputPath string
	stdout     io.Writer
	status     io.Writer // progress line, drawn only on a terminal
	now        func() time.Time
	location   *time.Location
}

// newReportEnv builds the environment for a run. Tests replace it.
var newReportEnv = defaultReportEnv

// defaultReportEnv scans the standard application folders through Spotlight
// and writes the report next to the executable.
func defaultReportEnv() (*reportEnv, error) {
	// Without a home directory only the system roots are scanned.
	home, _ := os.UserHomeDir()

	outputPath, err := output.DefaultReportPath()
	if err != nil {
		return nil, err
	}

	return &reportEnv{
		roots:      scanner.DefaultRoots(home),
		provider:   metadata.NewMDLS(),
		outputPath: outputPath,
		stdout:     os.Stdout,
		status:     os.Stderr,
		now:        time.Now,
		location:   time.Local,
	}, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	// Validate before touching the filesystem
	if err := validateDays(reportDays); err != nil {
		return err
	}

	env, err := newReportEnv()
	if err != nil {
		return fmt.Errorf("failed to prepare report: %w", err)
	}

	return generateReport(env, reportDays)
}

// generateReport runs scan -> filter -> build -> emit once, in sequence.
func generateReport(env *reportEnv, days int) error {
	now := env.now()
	cutoff := filter.Cutoff(now, days)

	status := output.NewStatus(env.status)
	records := filter.Collect(env.provider, scanner.Scan(env.roots...), cutoff, func(path string) {
		status.Update("Checking " + filepath.Base(path))
	})
	status.Clear()

	text := report.Build(report.Report{
		Days:     days,
		Cutoff:   cutoff,
		Now:      now,
		Location: env.location,
		Records:  records,
	})

	sink := output.Sink{Stdout: env.stdout, Path: env.outputPath}
	return sink.Emit(text)
}
