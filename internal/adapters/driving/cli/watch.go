package cli

import (
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/adapters/driving/watch"
	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

var (
	watchDebounce time.Duration
	watchInterval time.Duration
	watchDryRun   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Re-run the analysis whenever the export changes",
	Long: `Watches an export directory or archive and re-runs the analysis after it
changes. Bursts of file events are coalesced and runs are rate limited.
Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before a re-run")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", watch.DefaultMinInterval, "minimum time between runs")
	watchCmd.Flags().BoolVar(&watchDryRun, "dry-run", false, "do not archive runs")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	opts := watch.Options{
		Debounce:    watchDebounce,
		MinInterval: watchInterval,
		Analyze:     driving.AnalyzeOptions{DryRun: watchDryRun},
	}

	w := watch.New(analysisService, args[0], opts, func(snap *domain.Snapshot, err error) {
		if err != nil {
			cmd.PrintErrf("analysis failed: %v\n", err)
			return
		}
		a := snap.Analytics
		cmd.Printf("[%s] %s: %s connections, %s%% engaged, %s dormant\n",
			snap.CreatedAt.Format(time.TimeOnly), snap.ID,
			humanize.Comma(int64(a.TotalConnections)), a.EngagementRate,
			humanize.Comma(int64(a.DormantCount)))
	})

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return w.Run(cmd.Context())
}
