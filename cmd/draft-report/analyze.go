package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(o *overrides) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the full analysis report as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildService(cmd, o)
			if err != nil {
				return err
			}
			report, err := svc.Analyze(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "single line JSON")
	return cmd
}
