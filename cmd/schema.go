package main

import (
	"github.com/spf13/cobra"

	"github.com/openmfl/mfl-cli/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the facility record JSON Schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(schema.Document())
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
