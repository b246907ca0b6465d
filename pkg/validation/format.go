// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/aromadata/aromadata/pkg/constants"
)

// SupportedExportFormats lists the formats accepted by ValidateExportFormat.
var SupportedExportFormats = []string{
	constants.ExportFormatCSV,
	constants.ExportFormatJSON,
	constants.ExportFormatXLSX,
	constants.ExportFormatPretty,
}

// ValidateExportFormat checks if the export format is one of the supported formats.
func ValidateExportFormat(format string) error {
	for _, supported := range SupportedExportFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected export format of %s, got %s",
		strings.Join(SupportedExportFormats, ", "), format)
}

// ValidateDownloadFormat is ValidateExportFormat restricted to the formats the
// dashboard offers as file downloads.
func ValidateDownloadFormat(format string) error {
	if format == constants.ExportFormatPretty {
		return fmt.Errorf("format %s is not available as a download", format)
	}
	return ValidateExportFormat(format)
}
