package timestore

import "time"

// Sync modes recorded in history.
const (
	ModeManual = "manual"
	ModeAuto   = "auto"
	ModeBatch  = "batch"
)

// AnchorTimes holds the two timestamp pairs from the most recent manual
// sync. All values are milliseconds on the subtitle (From) and video (To)
// timelines.
type AnchorTimes struct {
	From1Ms   int64
	To1Ms     int64
	From2Ms   int64
	To2Ms     int64
	UpdatedAt time.Time
}

// SyncRecord is one completed sync operation.
type SyncRecord struct {
	ID           int64
	SubtitlePath string
	MediaPath    string
	Mode         string
	Scale        float64
	OffsetMs     float64
	Confidence   float64
	OutputPath   string
	CreatedAt    time.Time
}
