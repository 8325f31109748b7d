package ffmpeg

import (
	"context"
	"fmt"

	"clipjoin/domain/video"
)

// Combiner implements video.Combiner using ffmpeg's concat filter
type Combiner struct {
	settings
}

// NewCombiner creates a new FFmpeg-based combiner
func NewCombiner(opts ...Option) *Combiner {
	return &Combiner{settings: newSettings(opts)}
}

// Combine implements video.Combiner. Each input must carry one video and one audio stream.
func (c *Combiner) Combine(ctx context.Context, inputs []string, outputPath string) error {
	if len(inputs) < 2 {
		return fmt.Errorf("combine needs at least 2 inputs, got %d", len(inputs))
	}

	args := []string{c.overwriteFlag()}
	for _, in := range inputs {
		args = append(args, "-i", in)
	}
	args = append(args,
		"-filter_complex", ConcatFilter(len(inputs)),
		"-c:v", c.videoCodec,
		"-c:a", c.audioCodec,
		outputPath,
	)

	if err := c.runner.Run(ctx, c.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg combine failed: %w", err)
	}

	return nil
}

// ConcatFilter returns the filter graph joining n inputs of one video and one audio stream each
func ConcatFilter(n int) string {
	return fmt.Sprintf("concat=n=%d:v=1:a=1", n)
}

// Ensure Combiner implements video.Combiner
var _ video.Combiner = (*Combiner)(nil)
