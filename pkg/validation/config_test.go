package validation

import (
	"strings"
	"testing"
	"time"
)

func TestValidateTicker(t *testing.T) {
	tests := []struct {
		name          string
		settings      TickerSettings
		expectedCount int
		contains      string
	}{
		{
			name: "Defaults produce no warnings",
			settings: TickerSettings{
				Interval:     5 * time.Second,
				InitialPrice: 189.5,
				Floor:        150,
				MaxDelta:     1,
				HistorySize:  120,
			},
			expectedCount: 0,
		},
		{
			name: "Sub-second interval",
			settings: TickerSettings{
				Interval:     100 * time.Millisecond,
				InitialPrice: 189.5,
				Floor:        150,
				MaxDelta:     1,
				HistorySize:  10,
			},
			expectedCount: 1,
			contains:      "shorter than one second",
		},
		{
			name: "Initial price below floor",
			settings: TickerSettings{
				Interval:     5 * time.Second,
				InitialPrice: 120,
				Floor:        150,
				MaxDelta:     1,
				HistorySize:  10,
			},
			expectedCount: 1,
			contains:      "below the floor",
		},
		{
			name: "Everything wrong",
			settings: TickerSettings{
				Interval:     0,
				InitialPrice: 100,
				Floor:        150,
				MaxDelta:     0,
				HistorySize:  0,
			},
			expectedCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateTicker(tt.settings)
			if len(warnings) != tt.expectedCount {
				t.Fatalf("ValidateTicker() returned %d warnings, expected %d: %v", len(warnings), tt.expectedCount, warnings)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("expected warning to contain %q, got %q", tt.contains, warnings[0])
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) unexpected error: %v", level, err)
		}
	}
	if err := ValidateLogLevel("verbose"); err == nil {
		t.Error("ValidateLogLevel(verbose) expected error but got nil")
	}
}

func TestValidateLogFormat(t *testing.T) {
	for _, format := range []string{"", "json", "console"} {
		if err := ValidateLogFormat(format); err != nil {
			t.Errorf("ValidateLogFormat(%q) unexpected error: %v", format, err)
		}
	}
	if err := ValidateLogFormat("logfmt"); err == nil {
		t.Error("ValidateLogFormat(logfmt) expected error but got nil")
	}
}
