package metadata

import (
	"os/exec"
	"strings"
	"time"
)

// DateAddedAttr is the Spotlight attribute recording when an item was added.
const DateAddedAttr = "kMDItemDateAdded"

// mdlsLayout is the format mdls uses for raw date values,
// e.g. "2024-05-01 17:02:33 +0000".
const mdlsLayout = "2006-01-02 15:04:05 -0700"

// MDLS queries Spotlight through the mdls command-line tool.
type MDLS struct {
	// Bin is the mdls executable; defaults to "mdls" resolved via PATH.
	Bin string
}

// NewMDLS returns a provider backed by the system mdls binary.
func NewMDLS() *MDLS {
	return &MDLS{Bin: "mdls"}
}

// DateAdded runs `mdls -name kMDItemDateAdded -raw <path>`. A missing binary,
// a non-zero exit or unparseable output all report the attribute as absent.
func (m *MDLS) DateAdded(path string) (time.Time, bool) {
	bin := m.Bin
	if bin == "" {
		bin = "mdls"
	}

	cmd := exec.Command(bin, "-name", DateAddedAttr, "-raw", path)
	out, err := cmd.Output()
	if err != nil {
		// Not indexed, not found, or no mdls on this system; degrade silently
		return time.Time{}, false
	}

	return ParseDateAdded(string(out))
}

// ParseDateAdded parses a raw mdls date value. It returns false for empty
// output and for "(null)", which mdls prints when the attribute is unset.
func ParseDateAdded(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "(null)" {
		return time.Time{}, false
	}

	t, err := time.Parse(mdlsLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
