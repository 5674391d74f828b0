package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openmfl/mfl-cli/internal/export"
)

var (
	exportRecords string
	exportFormat  string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a harmonized collection as CSV, GeoJSON or a shapefile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := readRecords(exportRecords)
		if err != nil {
			return err
		}

		switch exportFormat {
		case "shp":
			if err := export.WriteShapefile(exportOut, records); err != nil {
				return err
			}
		case "csv", "geojson":
			f, err := os.Create(exportOut)
			if err != nil {
				return eris.Wrapf(err, "create %s", exportOut)
			}
			defer f.Close() //nolint:errcheck

			if exportFormat == "csv" {
				err = export.WriteCSV(f, records)
			} else {
				err = export.WriteGeoJSON(f, records)
			}
			if err != nil {
				return err
			}
		default:
			return eris.Errorf("unknown format %q: want csv, geojson or shp", exportFormat)
		}

		zap.L().Info("export complete",
			zap.String("format", exportFormat),
			zap.Int("records", len(records)),
			zap.String("out", exportOut),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportRecords, "records", "", "harmonized records JSON path (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv, geojson or shp")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (required)")
	_ = exportCmd.MarkFlagRequired("records")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
