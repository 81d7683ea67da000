package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srtsync/internal/srt"
	"srtsync/internal/timecorrect"
	"srtsync/internal/timestore"
)

type anchorLoader interface {
	LastAnchors(ctx context.Context) (*timestore.AnchorTimes, error)
}

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var f1, t1, f2, t2 string

	cmd := &cobra.Command{
		Use:   "sync SUBTITLE",
		Short: "Correct subtitle timing from two timestamp pairs",
		Long: `Sync derives a linear time correction from two anchor pairs and writes
the corrected file next to the original with a _c.srt suffix.

Each anchor pair maps a timestamp as written in the subtitle file (--f1,
--f2) to the moment it is actually spoken in the video (--t1, --t2).
Timestamps use SRT notation, HH:MM:SS,mmm. Omitted flags fall back to the
values saved by the previous sync.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			first, second, err := resolveAnchors(cmd, store, f1, t1, f2, t2)
			if err != nil {
				return err
			}

			s, err := ctx.newSyncer(store)
			if err != nil {
				return err
			}
			result, err := s.ManualSync(cmd.Context(), args[0], first, second)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Corrected %d cues (scale %.6f, offset %.1fms)\n",
				result.CueCount, result.Coefficients.Scale, result.Coefficients.Offset)
			fmt.Fprintf(out, "Wrote %s\n", result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&f1, "f1", "", "First anchor: timestamp in the subtitle file (HH:MM:SS,mmm)")
	cmd.Flags().StringVar(&t1, "t1", "", "First anchor: actual time in the video (HH:MM:SS,mmm)")
	cmd.Flags().StringVar(&f2, "f2", "", "Second anchor: timestamp in the subtitle file (HH:MM:SS,mmm)")
	cmd.Flags().StringVar(&t2, "t2", "", "Second anchor: actual time in the video (HH:MM:SS,mmm)")
	return cmd
}

// resolveAnchors parses the four timestamp flags, filling omitted ones from
// the saved times of the previous run.
func resolveAnchors(cmd *cobra.Command, store anchorLoader, f1, t1, f2, t2 string) (timecorrect.Anchor, timecorrect.Anchor, error) {
	var first, second timecorrect.Anchor

	saved, err := store.LastAnchors(cmd.Context())
	if err != nil {
		return first, second, err
	}

	missing := func(name string) error {
		if saved == nil {
			return fmt.Errorf("--%s is required (no saved times from a previous sync)", name)
		}
		return nil
	}

	resolve := func(name, value string, fallback int64) (int64, error) {
		if strings.TrimSpace(value) == "" {
			if err := missing(name); err != nil {
				return 0, err
			}
			return fallback, nil
		}
		ms, err := srt.ParseTimestamp(value)
		if err != nil {
			return 0, fmt.Errorf("--%s: %w", name, err)
		}
		return ms, nil
	}

	var fallback timestoreAnchors
	if saved != nil {
		fallback = timestoreAnchors{saved.From1Ms, saved.To1Ms, saved.From2Ms, saved.To2Ms}
	}

	if first.SourceMs, err = resolve("f1", f1, fallback[0]); err != nil {
		return first, second, err
	}
	if first.TargetMs, err = resolve("t1", t1, fallback[1]); err != nil {
		return first, second, err
	}
	if second.SourceMs, err = resolve("f2", f2, fallback[2]); err != nil {
		return first, second, err
	}
	if second.TargetMs, err = resolve("t2", t2, fallback[3]); err != nil {
		return first, second, err
	}
	return first, second, nil
}

type timestoreAnchors [4]int64
