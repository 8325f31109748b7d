package video

import (
	"fmt"
	"regexp"
	"strconv"
)

// Timestamp represents a position on a video timeline in HH:MM:SS form
type Timestamp struct {
	Hours   int
	Minutes int
	Seconds int
}

// MaxHours bounds the hour field so second counts and their sums stay well inside int
const MaxHours = 999999

// timestampRegex matches H+:M+:S+ with digits only; range checks happen after matching
var timestampRegex = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)

// ParseTimestamp parses a timestamp string in HH:MM:SS format.
// Hours may exceed 99 up to MaxHours; minutes and seconds must be 0-59.
func ParseTimestamp(s string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return Timestamp{}, fmt.Errorf("%w format %q: expected HH:MM:SS", ErrInvalidTimestamp, s)
	}

	hours, err := strconv.Atoi(matches[1])
	if err != nil || hours > MaxHours {
		return Timestamp{}, fmt.Errorf("%w %q: hours out of range", ErrInvalidTimestamp, s)
	}
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	if len(matches[2]) > 2 || minutes > 59 {
		return Timestamp{}, fmt.Errorf("%w %q: minutes must be 0-59", ErrInvalidTimestamp, s)
	}
	if len(matches[3]) > 2 || seconds > 59 {
		return Timestamp{}, fmt.Errorf("%w %q: seconds must be 0-59", ErrInvalidTimestamp, s)
	}

	return Timestamp{
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}, nil
}

// FromSeconds builds a Timestamp from a non-negative second count
func FromSeconds(total int) Timestamp {
	if total < 0 {
		total = 0
	}
	return Timestamp{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// String returns the timestamp in HH:MM:SS format.
// The hour field is zero-padded to two digits but never truncated.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// TotalSeconds returns the timestamp as total seconds
func (t Timestamp) TotalSeconds() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// After returns true if t is after other
func (t Timestamp) After(other Timestamp) bool {
	return t.TotalSeconds() > other.TotalSeconds()
}
