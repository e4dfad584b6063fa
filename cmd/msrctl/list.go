package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovis-hpc/maestro/v1/metricschema"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List all schema names known to the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := client.ListNames(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing names: %w", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var digestsCmd = &cobra.Command{
	Use:   "digests",
	Short: "List all schema digests known to the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		digests, err := client.ListDigests(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing digests: %w", err)
		}
		for _, d := range digests {
			fmt.Println(d.String())
		}
		return nil
	},
}

var (
	versionsName   string
	versionsDigest string
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List schema ids for a name or a digest",
	Long: `List the ids of all schema versions that share a name or a digest.

Exactly one of --name and --digest must be given.

Examples:
  msrctl versions --name meminfo --url http://head1:8080
  msrctl versions --digest 06b48a... --url http://head1:8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var digest *metricschema.Digest
		if versionsDigest != "" {
			d, err := metricschema.ParseDigest(versionsDigest)
			if err != nil {
				return fmt.Errorf("parsing digest %q: %w", versionsDigest, err)
			}
			digest = &d
		}

		ids, err := client.ListIDs(cmd.Context(), versionsName, digest)
		if err != nil {
			return fmt.Errorf("listing versions: %w", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().StringVar(&versionsName, "name", "", "schema name to look up")
	versionsCmd.Flags().StringVar(&versionsDigest, "digest", "", "schema digest (40 hex characters) to look up")
	versionsCmd.MarkFlagsMutuallyExclusive("name", "digest")
	versionsCmd.MarkFlagsOneRequired("name", "digest")

	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(digestsCmd)
	rootCmd.AddCommand(versionsCmd)
}
