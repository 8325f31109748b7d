package video

import "errors"

var (
	// ErrInvalidTimestamp is returned when a timestamp is not HH:MM:SS
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrInvalidRange is returned when a clip's end does not come after its start
	ErrInvalidRange = errors.New("invalid clip range")
	// ErrNoClips is returned when a join is requested for an empty clip set
	ErrNoClips = errors.New("no clips requested")
)
