package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovis-hpc/maestro/v1/registry"
)

var getDigestOnly bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a schema by id",
	Long: `Fetch a schema by id and print its JSON definition.

With --digest only the schema's SHA-1 digest is printed, which is
useful for comparing schemas across registries.

Example:
  msrctl get 1b49...-1 --url http://head1:8080 | jq '.fields[].name'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := client.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetching schema %q: %w", args[0], err)
		}

		if getDigestOnly {
			fmt.Println(sch.Digest().String())
			return nil
		}

		data, err := registry.EncodeSchema(sch)
		if err != nil {
			return fmt.Errorf("encoding schema: %w", err)
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, data, "", "  "); err != nil {
			return err
		}
		pretty.WriteByte('\n')
		_, err = pretty.WriteTo(os.Stdout)
		return err
	},
}

func init() {
	getCmd.Flags().BoolVar(&getDigestOnly, "digest", false, "print only the schema digest")
	rootCmd.AddCommand(getCmd)
}
