package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/intel"

	"github.com/spf13/cobra"
)

var (
	snapshotTimeout    time.Duration
	snapshotCompetitor string
	snapshotType       string
	snapshotQuery      string
	snapshotRange      string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Refresh once and print the dashboard snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := setup()

		dash, err := newDashboard(cfg)
		if err != nil {
			return err
		}

		if _, err := intel.ParseType(snapshotType); err != nil {
			return err
		}
		since, err := intel.SinceFor(snapshotRange, time.Now())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), snapshotTimeout)
		defer cancel()

		snap := dash.Refresh(ctx)
		snap.Activities = intel.Filter(snap.Activities, intel.Criteria{
			Competitor: snapshotCompetitor,
			Type:       snapshotType,
			Query:      snapshotQuery,
			Since:      since,
		})

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}

func init() {
	snapshotCmd.Flags().DurationVar(&snapshotTimeout, "timeout", time.Minute, "overall refresh deadline")
	snapshotCmd.Flags().StringVar(&snapshotCompetitor, "competitor", intel.All, "only show this competitor")
	snapshotCmd.Flags().StringVar(&snapshotType, "type", intel.All, "only show this activity type")
	snapshotCmd.Flags().StringVarP(&snapshotQuery, "query", "q", "", "case-insensitive text search")
	snapshotCmd.Flags().StringVar(&snapshotRange, "range", intel.All, "look-back window: 7d, 30d, 90d or all")
}
