package config

import (
	"fmt"
	"strings"
)

// ParseClipFlag parses a command-line clip of the form FILE=START-END,
// e.g. "intro.mp4=00:00:15-00:01:57".
func ParseClipFlag(s string) (ClipConfig, error) {
	idx := strings.LastIndex(s, "=")
	if idx <= 0 {
		return ClipConfig{}, fmt.Errorf("invalid clip %q: expected FILE=HH:MM:SS-HH:MM:SS", s)
	}

	file, span := s[:idx], s[idx+1:]
	start, end, ok := strings.Cut(span, "-")
	if !ok || start == "" || end == "" {
		return ClipConfig{}, fmt.Errorf("invalid clip %q: expected FILE=HH:MM:SS-HH:MM:SS", s)
	}

	return ClipConfig{
		File:  strings.TrimSpace(file),
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}, nil
}
