package ffmpeg

import (
	"context"
	"fmt"
)

// InstallURL is where users are pointed when ffmpeg is missing
const InstallURL = "https://ffmpeg.org/download.html"

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found or not executable (%v). Install from: %s", e.Name, e.Err, e.InstallURL)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func verifyInstalled(ctx context.Context, runner CommandRunner, ffmpegPath string) error {
	if _, err := runner.Output(ctx, ffmpegPath, "-version"); err != nil {
		return &DependencyError{Name: ffmpegPath, InstallURL: InstallURL, Err: err}
	}
	return nil
}
