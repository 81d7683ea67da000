package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"srtsync/internal/logging"
	"srtsync/internal/syncer"
)

// Pair is one video/subtitle couple to sync.
type Pair struct {
	MediaPath    string
	SubtitlePath string
}

// Outcome is the result of syncing one pair.
type Outcome struct {
	Pair       Pair
	OutputPath string
	Confidence float64
	Err        error
}

var videoExtensions = map[string]struct{}{
	".mkv":  {},
	".mp4":  {},
	".m4v":  {},
	".avi":  {},
	".mov":  {},
	".webm": {},
	".ts":   {},
	".mpg":  {},
	".mpeg": {},
}

// Output suffixes that mark files this tool wrote; they never join a pair.
var generatedSuffixes = []string{
	syncer.SuffixManual,
	syncer.SuffixAuto,
	syncer.SuffixBatch,
}

// Discover scans a directory (non-recursively) and pairs video files with
// subtitle files by sorted basename position. The counts must agree.
func Discover(dir string) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var videos, subtitles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case ext == ".srt":
			if isGenerated(name) {
				continue
			}
			subtitles = append(subtitles, filepath.Join(dir, name))
		default:
			if _, ok := videoExtensions[ext]; ok {
				videos = append(videos, filepath.Join(dir, name))
			}
		}
	}

	return PairFiles(videos, subtitles)
}

// PairFiles matches explicit file lists positionally after sorting each by
// basename.
func PairFiles(videos, subtitles []string) ([]Pair, error) {
	if len(videos) == 0 {
		return nil, fmt.Errorf("no video files to pair")
	}
	if len(videos) != len(subtitles) {
		return nil, fmt.Errorf("cannot pair %d video files with %d subtitle files", len(videos), len(subtitles))
	}
	for _, path := range append(append([]string{}, videos...), subtitles...) {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("missing file: %w", err)
		}
	}

	// Sort copies so the caller's slices keep their order.
	sortByBase := func(paths []string) []string {
		sorted := append([]string(nil), paths...)
		sort.Slice(sorted, func(i, j int) bool {
			return filepath.Base(sorted[i]) < filepath.Base(sorted[j])
		})
		return sorted
	}
	videos = sortByBase(videos)
	subtitles = sortByBase(subtitles)

	pairs := make([]Pair, len(videos))
	for i := range videos {
		pairs[i] = Pair{MediaPath: videos[i], SubtitlePath: subtitles[i]}
	}
	return pairs, nil
}

func isGenerated(name string) bool {
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Runner executes automatic syncs over a pair list.
type Runner struct {
	Syncer *syncer.Syncer
	Logger *slog.Logger
	// OnPairDone observes each finished pair, in order.
	OnPairDone func(index int, outcome Outcome)
}

// Run syncs every pair in order, collecting per-pair outcomes. An error on
// one pair is recorded and the run moves on; context cancellation stops the
// remainder.
func (r *Runner) Run(ctx context.Context, pairs []Pair) []Outcome {
	log := logging.NewComponentLogger(r.Logger, "batch")
	outcomes := make([]Outcome, 0, len(pairs))

	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, Outcome{Pair: pair, Err: err})
			continue
		}

		outcome := Outcome{Pair: pair}
		result, err := r.Syncer.AutoSync(ctx, pair.MediaPath, pair.SubtitlePath, syncer.SuffixBatch)
		if err != nil {
			outcome.Err = err
			log.Warn("pair failed",
				logging.String("media", pair.MediaPath),
				logging.String("subtitle", pair.SubtitlePath),
				logging.Error(err),
			)
		} else {
			outcome.OutputPath = result.OutputPath
			outcome.Confidence = result.Confidence
			log.Info("pair synced",
				logging.String("media", pair.MediaPath),
				logging.String("output", result.OutputPath),
				logging.Float64("confidence", result.Confidence),
			)
		}
		outcomes = append(outcomes, outcome)
		if r.OnPairDone != nil {
			r.OnPairDone(i, outcome)
		}
	}
	return outcomes
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	count := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			count++
		}
	}
	return count
}
