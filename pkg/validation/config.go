package validation

import (
	"fmt"
	"time"
)

// TickerSettings mirrors the tunable price simulator parameters for validation.
type TickerSettings struct {
	Interval     time.Duration
	InitialPrice float64
	Floor        float64
	MaxDelta     float64
	HistorySize  int
}

// ValidateTicker returns warnings for simulator settings that are legal but
// unlikely to be intended.
func ValidateTicker(settings TickerSettings) []string {
	var warnings []string

	if settings.Interval < time.Second {
		warnings = append(warnings, fmt.Sprintf("ticker interval %s is shorter than one second", settings.Interval))
	}

	if settings.InitialPrice < settings.Floor {
		warnings = append(warnings, fmt.Sprintf("initial price %.2f is below the floor %.2f and will be clamped on the first tick",
			settings.InitialPrice, settings.Floor))
	}

	if settings.MaxDelta <= 0 {
		warnings = append(warnings, fmt.Sprintf("max delta %.2f disables price movement", settings.MaxDelta))
	}

	if settings.HistorySize <= 0 {
		warnings = append(warnings, "history size is not positive; price history will be empty")
	}

	return warnings
}

// ValidateLogLevel checks a logging level name.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks a logging encoder name.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}
