package ffmpeg

import (
	"context"
	"fmt"

	"clipjoin/domain/video"
)

// Cutter implements video.Cutter using ffmpeg
type Cutter struct {
	settings
}

// NewCutter creates a new FFmpeg-based cutter
func NewCutter(opts ...Option) *Cutter {
	return &Cutter{settings: newSettings(opts)}
}

// Cut implements video.Cutter.
// -ss before -i seeks the input; -to is an absolute position on the source timeline.
func (c *Cutter) Cut(ctx context.Context, req video.CutRequest) error {
	args := []string{
		c.overwriteFlag(),
		"-ss", req.Start.String(),
		"-i", req.InputPath,
		"-to", req.End.String(),
		"-c:v", c.videoCodec,
		"-c:a", c.audioCodec,
		"-avoid_negative_ts", "1",
		req.OutputPath,
	}

	if err := c.runner.Run(ctx, c.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg cut failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (c *Cutter) VerifyInstalled(ctx context.Context) error {
	return verifyInstalled(ctx, c.runner, c.ffmpegPath)
}

// Ensure Cutter implements video.Cutter
var _ video.Cutter = (*Cutter)(nil)
