package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtlesim/internal/config"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of scenario config files",
	Long: `Emit the JSON Schema describing scenario YAML files, for editor
validation and completion.

Examples:
  turtlesim schema
  turtlesim schema --out ./configs/scenario.schema.json`,
	Args: cobra.NoArgs,
	Run:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Write the schema to this file instead of stdout")
}

func runSchema(_ *cobra.Command, _ []string) {
	if flagSchemaOut != "" {
		exitOnError("writing schema", config.WriteSchema(flagSchemaOut))
		fmt.Printf("Wrote %s\n", flagSchemaOut)
		return
	}

	data, err := json.MarshalIndent(config.BuildSchema(), "", "  ")
	exitOnError("encoding schema", err)
	fmt.Println(string(data))
}
