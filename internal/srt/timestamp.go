package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts an SRT timestamp ("HH:MM:SS,mmm") to
// milliseconds. A period is accepted in place of the comma since some
// authoring tools emit it.
func ParseTimestamp(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty timestamp", ErrParse)
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	if minutes > 59 || seconds > 59 || millis > 999 || hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return 0, fmt.Errorf("%w: timestamp %q out of range", ErrParse, value)
	}
	return int64(hours)*3600000 + int64(minutes)*60000 + int64(seconds)*1000 + int64(millis), nil
}

// FormatTimestamp renders milliseconds as an SRT timestamp. Negative values
// are clamped to zero; SRT has no representation for time before the start.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3600000
	ms %= 3600000
	minutes := ms / 60000
	ms %= 60000
	seconds := ms / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// FormatSeconds renders a time in seconds as an SRT timestamp, rounding to
// the nearest millisecond.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	return FormatTimestamp(int64(seconds*1000 + 0.5))
}
