package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openmfl/mfl-cli/internal/fieldmap"
)

var (
	fieldmapPath     string
	fieldmapInput    string
	fieldmapSheet    string
	fieldmapSkipRows int
)

var fieldmapCmd = &cobra.Command{
	Use:   "fieldmap",
	Short: "Inspect field map artifacts",
}

var fieldmapValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a field map, optionally against a source table's header",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fm, err := fieldmap.Load(fieldmapPath)
		if err != nil {
			return err
		}

		log := zap.L().With(zap.String("map", fieldmapPath))
		log.Info("field map valid",
			zap.String("source", fm.Source),
			zap.Int("fields", len(fm.Fields)),
		)

		if fieldmapInput == "" {
			return nil
		}

		table, err := loadTable(cmd.Context(), fieldmapInput, fieldmapSheet, fieldmapSkipRows)
		if err != nil {
			return err
		}
		res, err := fm.Resolve(table.Header)
		if err != nil {
			return err
		}

		log.Info("field map resolves",
			zap.String("input", fieldmapInput),
			zap.Strings("unmapped_fields", res.Unmapped),
			zap.Strings("unused_columns", res.Unused),
		)
		return nil
	},
}

func init() {
	fieldmapValidateCmd.Flags().StringVar(&fieldmapPath, "map", "", "field map YAML path (required)")
	fieldmapValidateCmd.Flags().StringVar(&fieldmapInput, "input", "", "source table to resolve the map against (optional)")
	fieldmapValidateCmd.Flags().StringVar(&fieldmapSheet, "sheet", "", "XLSX sheet name")
	fieldmapValidateCmd.Flags().IntVar(&fieldmapSkipRows, "skip-rows", 0, "rows to skip before the header row")
	_ = fieldmapValidateCmd.MarkFlagRequired("map")
	fieldmapCmd.AddCommand(fieldmapValidateCmd)
	rootCmd.AddCommand(fieldmapCmd)
}
