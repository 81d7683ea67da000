// Package batch pairs video and subtitle files and runs an automatic sync
// for each pair. Pairing is positional: both groups are sorted by basename
// and matched index by index, so a directory laid out as episode01.mkv /
// episode01.srt pairs naturally. A failed pair never stops the run; every
// outcome is collected for the summary.
package batch
