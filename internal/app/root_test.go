package app

import (
	"errors"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if RootCmd.Use != "recentapps" {
		t.Errorf("expected Use to be 'recentapps', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if RootCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandDaysFlag(t *testing.T) {
	flag := RootCmd.Flags().Lookup("days")
	if flag == nil {
		t.Fatal("expected --days flag to be registered")
	}

	if flag.Shorthand != "d" {
		t.Errorf("expected --days shorthand 'd', got %q", flag.Shorthand)
	}
	if flag.DefValue != "14" {
		t.Errorf("expected --days default 14, got %s", flag.DefValue)
	}
	if flag.Usage == "" {
		t.Error("expected --days flag to have usage text")
	}
}

func TestValidateDays(t *testing.T) {
	tests := []struct {
		days    int
		wantErr bool
	}{
		{1, false},
		{14, false},
		{3650, false},
		{0, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := validateDays(tt.days)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateDays(%d) error = %v, wantErr %v", tt.days, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidDays) {
			t.Errorf("validateDays(%d) error = %v, want ErrInvalidDays", tt.days, err)
		}
	}
}

func TestIsUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid days", validateDays(0), true},
		{"flag error", &usageError{err: errors.New("bad flag")}, true},
		{"other", errors.New("failed to write report"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUsageError(tt.err); got != tt.want {
				t.Errorf("IsUsageError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
