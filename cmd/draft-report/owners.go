package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okian/draftintel/internal/domain/types"
)

func newOwnersCmd(o *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "owners",
		Short: "Print owners ranked by hit rate, plus advice for you",
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
			return writeOwners(cmd.OutOrStdout(), report)
		},
	}
}

func writeOwners(out io.Writer, report types.Report) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tOWNER\tHIT RATE\tRETENTION\tAVG PTS/PICK\tPICKS")
	for _, r := range report.OwnerStats {
		name := r.Name
		if r.IsYou {
			name += " (you)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d%%\t%d%%\t%d\t%d\n",
			r.LeagueRank, name, r.HitRate, r.RetentionRate, r.AvgPointsPerPick, r.TotalPicks)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write owners: %w", err)
	}

	u := report.UserStats
	if u == nil || u.Advisory == nil {
		return nil
	}
	sections := []struct {
		title string
		lines []string
	}{
		{"Strengths", u.Strengths},
		{"Areas to improve", u.Weaknesses},
		{"Trade recommendations", u.TradeRecommendations},
	}
	for _, s := range sections {
		if len(s.lines) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s:\n", s.title)
		for _, l := range s.lines {
			fmt.Fprintf(out, "  - %s\n", l)
		}
	}
	return nil
}
