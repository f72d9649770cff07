package bundle

import "testing"

func TestRecordName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Applications/Safari.app", "Safari.app"},
		{"/Applications/Utilities/Terminal.app", "Terminal.app"},
		{"/Users/dev/Applications/Chrome Apps.localized.app", "Chrome Apps.localized.app"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			r := Record{Path: tt.path}
			if got := r.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
