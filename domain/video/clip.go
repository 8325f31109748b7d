package video

import (
	"fmt"
	"path/filepath"
)

// IntermediatePrefix is prepended to a source filename to name its cut
const IntermediatePrefix = "cut_"

// ClipRequest is one source file trimmed to a range of its timeline
type ClipRequest struct {
	Filename string
	Start    Timestamp
	End      Timestamp
}

// NewClipRequest parses start and end and validates the resulting range
func NewClipRequest(filename, start, end string) (ClipRequest, error) {
	s, err := ParseTimestamp(start)
	if err != nil {
		return ClipRequest{}, fmt.Errorf("clip %s: invalid start time: %w", filename, err)
	}

	e, err := ParseTimestamp(end)
	if err != nil {
		return ClipRequest{}, fmt.Errorf("clip %s: invalid end time: %w", filename, err)
	}

	req := ClipRequest{Filename: filename, Start: s, End: e}
	if err := req.Validate(); err != nil {
		return ClipRequest{}, err
	}
	return req, nil
}

// Validate checks that the clip request is usable
func (r ClipRequest) Validate() error {
	if r.Filename == "" {
		return fmt.Errorf("clip filename is required")
	}

	if !r.End.After(r.Start) {
		return fmt.Errorf("%w: clip %s: end time %s must be after start time %s", ErrInvalidRange, r.Filename, r.End, r.Start)
	}

	return nil
}

// DurationSeconds returns the length of the clip in seconds
func (r ClipRequest) DurationSeconds() int {
	return r.End.TotalSeconds() - r.Start.TotalSeconds()
}

// SourcePath returns the path of the source file inside workDir
func (r ClipRequest) SourcePath(workDir string) string {
	return filepath.Join(workDir, r.Filename)
}

// IntermediatePath returns the path the cut is written to inside workDir
func (r ClipRequest) IntermediatePath(workDir string) string {
	return filepath.Join(workDir, IntermediatePrefix+r.Filename)
}

// ClipSet is an ordered collection of clip requests keyed by filename.
// Insertion order is the concatenation order. Adding a filename that is
// already present replaces its range but keeps its original position.
type ClipSet struct {
	order []string
	clips map[string]ClipRequest
}

// NewClipSet builds a set from requests in order
func NewClipSet(reqs ...ClipRequest) *ClipSet {
	s := &ClipSet{clips: make(map[string]ClipRequest)}
	for _, r := range reqs {
		s.Add(r)
	}
	return s
}

// Add inserts or replaces a request. It reports true when an existing
// entry with the same filename was replaced.
func (s *ClipSet) Add(r ClipRequest) bool {
	if s.clips == nil {
		s.clips = make(map[string]ClipRequest)
	}
	_, exists := s.clips[r.Filename]
	if !exists {
		s.order = append(s.order, r.Filename)
	}
	s.clips[r.Filename] = r
	return exists
}

// Len returns the number of distinct clips
func (s *ClipSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Clips returns the requests in insertion order
func (s *ClipSet) Clips() []ClipRequest {
	if s == nil {
		return nil
	}
	out := make([]ClipRequest, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.clips[name])
	}
	return out
}
