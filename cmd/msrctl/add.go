package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovis-hpc/maestro/v1/registry"
)

var addCmd = &cobra.Command{
	Use:   "add <schema.json>",
	Short: "Register a schema with the registry",
	Long: `Register a schema from a JSON definition and print the assigned id.

The definition is validated locally before it is sent. Pass "-" to read
the definition from stdin.

Example:
  msrctl add schema.json --url http://head1:8080`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}

		sch, err := registry.DecodeSchema(data)
		if err != nil {
			return fmt.Errorf("parsing schema definition: %w", err)
		}

		id, err := client.Add(cmd.Context(), sch)
		if err != nil {
			return fmt.Errorf("registering schema %q: %w", sch.Name(), err)
		}

		fmt.Println(id)
		return nil
	},
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func init() {
	rootCmd.AddCommand(addCmd)
}
