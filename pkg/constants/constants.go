// Package constants provides shared constants for the aromadata application.
package constants

import "time"

// Yield estimation constants
const (
	// BaseYieldPerHectare is the reference yield in sacks per hectare before any factor applies
	BaseYieldPerHectare = 12.0

	// KilogramsPerSack is the multiplier applied to the per-pound price when estimating revenue
	KilogramsPerSack = 125.0

	// SpecialtyAltitudeMeters is the altitude from which specialty coffee is recommended
	SpecialtyAltitudeMeters = 1500
)

// Price simulation constants
const (
	// InitialPrice is the price in USD/lb the simulator resets to on every start
	InitialPrice = 189.5

	// InitialDelta is the change displayed before the first tick
	InitialDelta = 2.3

	// PriceFloor is the lowest price the simulator will ever commit
	PriceFloor = 150.0

	// MaxTickDelta bounds the absolute value of a single random perturbation
	MaxTickDelta = 1.0

	// DefaultTickInterval is the time between two simulated price movements
	DefaultTickInterval = 5 * time.Second

	// DefaultHistorySize is the number of recent price samples kept for charts
	DefaultHistorySize = 120
)

// Export format constants
const (
	// ExportFormatPretty is the human-readable table format
	ExportFormatPretty = "pretty"

	// ExportFormatCSV is the comma-separated format with a literal header line
	ExportFormatCSV = "csv"

	// ExportFormatJSON is the indented JSON records format
	ExportFormatJSON = "json"

	// ExportFormatXLSX is the spreadsheet workbook format
	ExportFormatXLSX = "xlsx"

	// ExportBaseName is the file name, without extension, offered for downloads
	ExportBaseName = "estadisticas_cafe"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "AROMADATA"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the dashboard
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum accepted request body (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeout bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeout = 10 * time.Second
)

// Validation constants
const (
	// FloatTolerance is the tolerance used when comparing derived yield figures
	FloatTolerance = 1e-9

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
