package main

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/openmfl/mfl-cli/internal/vocab"
)

var compareField string

var compareCmd = &cobra.Command{
	Use:   "compare label=records.json [label=records.json ...]",
	Short: "Compare one field's vocabulary across harmonized collections",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collections := make([]vocab.Collection, 0, len(args))
		for _, arg := range args {
			label, path, ok := strings.Cut(arg, "=")
			if !ok || label == "" || path == "" {
				return eris.Errorf("argument %q: want label=records.json", arg)
			}
			records, err := readRecords(path)
			if err != nil {
				return err
			}
			collections = append(collections, vocab.Collection{Source: label, Records: records})
		}

		alignment, err := vocab.Align(collections, compareField)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(alignment)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareField, "field", "", "canonical scalar field path, e.g. facility_type (required)")
	_ = compareCmd.MarkFlagRequired("field")
	rootCmd.AddCommand(compareCmd)
}
