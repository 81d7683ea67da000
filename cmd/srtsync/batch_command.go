package main

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"srtsync/internal/batch"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch DIRECTORY",
		Short: "Auto-sync every video/subtitle pair in a directory",
		Long: `Batch scans a directory, pairs video files with .srt files by sorted
basename, and runs an automatic sync on each pair. Outputs use the
_batch_autosync.srt suffix. A failing pair does not stop the run; all
results are reported in the summary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			// One batch run at a time; concurrent runs would race on the
			// history database and work directory.
			lock := flock.New(filepath.Join(cfg.Paths.StateDir, "srtsync-batch.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire batch lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another batch run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			pairs, err := batch.Discover(args[0])
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			s, err := ctx.newSyncer(store)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			runner := &batch.Runner{
				Syncer: s,
				Logger: logger,
				OnPairDone: func(index int, outcome batch.Outcome) {
					name := filepath.Base(outcome.Pair.MediaPath)
					if outcome.Err != nil {
						fmt.Fprintf(out, "[%d/%d] %s: failed\n", index+1, len(pairs), name)
					} else {
						fmt.Fprintf(out, "[%d/%d] %s: ok\n", index+1, len(pairs), name)
					}
				},
			}
			outcomes := runner.Run(cmd.Context(), pairs)

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderBatchSummary(outcomes))

			if failed := batch.Failed(outcomes); failed > 0 {
				return fmt.Errorf("%d of %d pairs failed", failed, len(outcomes))
			}
			return nil
		},
	}
	return cmd
}

func renderBatchSummary(outcomes []batch.Outcome) string {
	headers := []string{"Video", "Subtitle", "Result", "Confidence"}
	rows := make([][]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		result := "ok"
		confidence := fmt.Sprintf("%.0f%%", outcome.Confidence*100)
		if outcome.Err != nil {
			result = outcome.Err.Error()
			confidence = "-"
		}
		rows = append(rows, []string{
			filepath.Base(outcome.Pair.MediaPath),
			filepath.Base(outcome.Pair.SubtitlePath),
			result,
			confidence,
		})
	}
	return renderTable(headers, rows, 3)
}
