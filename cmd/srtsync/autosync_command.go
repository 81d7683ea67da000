package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"srtsync/internal/autosync"
	"srtsync/internal/syncer"
)

func newAutosyncCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autosync VIDEO SUBTITLE",
		Short: "Correct subtitle timing automatically from the video's audio",
		Long: `Autosync samples short audio windows from two regions of the video,
transcribes them, and matches the speech against the subtitle text to find
two anchor points. The derived correction is applied to every cue and the
result written next to the original with an _autosync.srt suffix.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
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

			bar := newAttemptBar(cfg.Sync.MaxAttempts * 2)
			if bar != nil {
				s.OnAttempt = func(run int, attempt autosync.Attempt) {
					_ = bar.Add(1)
				}
			}

			result, err := s.AutoSync(cmd.Context(), args[0], args[1], syncer.SuffixAuto)
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(os.Stderr)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Matched with %.0f%% confidence\n", result.Confidence*100)
			fmt.Fprintf(out, "Corrected %d cues (scale %.6f, offset %.1fms)\n",
				result.CueCount, result.Coefficients.Scale, result.Coefficients.Offset)
			fmt.Fprintf(out, "Wrote %s\n", result.OutputPath)
			return nil
		},
	}
	return cmd
}

// newAttemptBar builds a progress bar over the total attempt budget, or
// nil when stderr is not a terminal.
func newAttemptBar(maxAttempts int) *progressbar.ProgressBar {
	if !isTerminal(os.Stderr) {
		return nil
	}
	return progressbar.NewOptions(maxAttempts,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("probing"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}
