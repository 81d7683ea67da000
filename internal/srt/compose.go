package srt

import (
	"strconv"
	"strings"
)

// Compose serializes the document back to SRT text. Cues are written in
// sequence order with their current indices and timestamps.
func Compose(doc *Document) string {
	var b strings.Builder
	for i, cue := range doc.Cues {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(cue.Index))
		b.WriteString("\n")
		b.WriteString(FormatTimestamp(cue.StartMs))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(cue.EndMs))
		b.WriteString("\n")
		b.WriteString(cue.Text)
		b.WriteString("\n")
	}
	return b.String()
}
