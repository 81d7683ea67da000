package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"srtsync/internal/srt"
)

func newTimesCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "times",
		Short: "Show saved anchor timestamps and sync history",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()

			saved, err := store.LastAnchors(cmd.Context())
			if err != nil {
				return err
			}
			if saved == nil {
				fmt.Fprintln(out, "No saved times yet")
			} else {
				fmt.Fprintf(out, "Saved times (from %s):\n", saved.UpdatedAt.Local().Format(time.DateTime))
				fmt.Fprintln(out, renderTable(
					[]string{"", "Subtitle", "Video"},
					[][]string{
						{"First anchor", srt.FormatTimestamp(saved.From1Ms), srt.FormatTimestamp(saved.To1Ms)},
						{"Second anchor", srt.FormatTimestamp(saved.From2Ms), srt.FormatTimestamp(saved.To2Ms)},
					},
					1, 2,
				))
			}

			history, err := store.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(out, "No sync history yet")
				return nil
			}

			rows := make([][]string, 0, len(history))
			for _, record := range history {
				confidence := "-"
				if record.Confidence > 0 {
					confidence = fmt.Sprintf("%.0f%%", record.Confidence*100)
				}
				rows = append(rows, []string{
					record.CreatedAt.Local().Format(time.DateTime),
					record.Mode,
					filepath.Base(record.SubtitlePath),
					fmt.Sprintf("%.6f", record.Scale),
					fmt.Sprintf("%.1f", record.OffsetMs),
					confidence,
				})
			}
			fmt.Fprintln(out, "History:")
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Mode", "Subtitle", "Scale", "Offset (ms)", "Confidence"},
				rows,
				3, 4, 5,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum history rows to show")
	return cmd
}
