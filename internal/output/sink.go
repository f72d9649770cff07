package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReportFileName is the report written next to the executable.
const ReportFileName = "latest_installs.txt"

// Sink delivers a rendered report to the terminal and to a file.
type Sink struct {
	Stdout io.Writer
	Path   string
}

// Emit writes text verbatim to Stdout, then replaces the file at Path with the
// same text. Terminal output is best-effort; a failed file write is returned
// because the report has not been delivered.
func (s Sink) Emit(text string) error {
	if s.Stdout != nil {
		io.WriteString(s.Stdout, text) //nolint:errcheck // terminal is best-effort
	}

	if err := writeFileAtomic(s.Path, []byte(text)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file beside path and renames it over
// path, so readers never see a half-written report.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+".tmp")

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// DefaultReportPath returns latest_installs.txt in the directory holding the
// running executable, with symlinks resolved.
func DefaultReportPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ReportFileName), nil
}
