// Package syncer orchestrates complete sync operations: load the subtitle
// file, derive correction coefficients (from user-supplied anchors or from
// the automatic search), remap every cue, and write the corrected file next
// to the original with a mode-specific suffix.
package syncer
