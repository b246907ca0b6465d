package cmd

import (
	"fmt"
	"os"

	"github.com/aromadata/aromadata/internal/dataset"
	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/aromadata/aromadata/pkg/export"
	"github.com/aromadata/aromadata/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		exportFormat string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the monthly production table",
		Long: `Write the monthly production table as a pretty table, CSV, JSON or an
Excel workbook. The format defaults to output.format from the configuration.
Workbooks are written to estadisticas_cafe.xlsx unless --out is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Determine output format (CLI override takes precedence over config)
			if exportFormat == "" {
				exportFormat = a.conf.Output.Format
			}
			if exportFormat == "" {
				exportFormat = constants.ExportFormatPretty
			}
			if err := validation.ValidateExportFormat(exportFormat); err != nil {
				return err
			}
			if outPath == "" && exportFormat == constants.ExportFormatXLSX {
				outPath = export.FileName(exportFormat)
			}

			if outPath != "" {
				if err := writeExportFile(outPath, exportFormat); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				if err := export.Write(w, exportFormat, dataset.Production()); err != nil {
					return fmt.Errorf("failed to export %s: %w", exportFormat, err)
				}
				// CSV and JSON bodies have no trailing newline.
				if exportFormat != constants.ExportFormatPretty {
					fmt.Fprintln(w)
				}
			}

			a.logger.Info("dataset exported",
				zap.String("op", "cmd.export"),
				zap.String("format", exportFormat),
				zap.String("out", outPath),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exportFormat, "format", "f", "", "export format: pretty, csv, json, xlsx")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

// writeExportFile writes the production table to path. A failed close is
// reported since it may be the only sign of a short write.
func writeExportFile(path, exportFormat string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := export.Write(f, exportFormat, dataset.Production()); err != nil {
		return fmt.Errorf("failed to export %s: %w", exportFormat, err)
	}
	return nil
}
