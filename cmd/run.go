package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	appvideo "clipjoin/application/video"
	"clipjoin/domain/video"
	"clipjoin/infrastructure/config"
	"clipjoin/infrastructure/ffmpeg"
	"clipjoin/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	runFlags     clipFlags
	runJobs      int
	runAssumeYes bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cut the requested clips and join them into one file",
	Long: `Cut every requested clip with ffmpeg and join the cuts, in order, into one file.

The estimated total duration is shown first and the run only starts after
confirmation (skip with --yes). With a single clip the cut is moved to the
output path instead of being re-encoded a second time. Intermediate cut_*
files are removed whether the run succeeds or fails.

Example:
  clipjoin run --config clips.yaml
  clipjoin run --dir /videos --output final.mp4 --clip a.mp4=00:00:10-00:00:20 --clip b.mp4=00:00:00-00:00:05`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runFlags.register(runCmd)
	runCmd.Flags().IntVarP(&runJobs, "jobs", "j", 0, "number of clips to cut concurrently (overrides jobs)")
	runCmd.Flags().BoolVarP(&runAssumeYes, "yes", "y", false, "do not ask for confirmation")
}

func runRun(cmd *cobra.Command, args []string) error {
	base, err := GetConfig()
	if err != nil {
		return err
	}

	c, err := runFlags.apply(base)
	if err != nil {
		return err
	}
	if runJobs > 0 {
		c.Jobs = runJobs
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	set, err := clipSetFromConfig(c, GetLogger())
	if err != nil {
		return err
	}

	runner := &ffmpeg.ExecCommandRunner{Logger: GetLogger()}
	if verbose {
		runner.Stderr = os.Stderr
	}
	opts := []ffmpeg.Option{
		ffmpeg.WithFFmpegPath(c.FFmpeg.Path),
		ffmpeg.WithCodecs(c.FFmpeg.VideoCodec, c.FFmpeg.AudioCodec),
		ffmpeg.WithOverwrite(c.FFmpeg.OverwriteEnabled()),
		ffmpeg.WithCommandRunner(runner),
	}

	return RunJoinWithDependencies(
		cmd.Context(),
		ffmpeg.NewCutter(opts...),
		ffmpeg.NewCombiner(opts...),
		filesystem.NewChecker(),
		DefaultPrompter,
		JoinOptions{
			WorkDir:     c.WorkDir,
			OutputPath:  c.OutputPath(),
			Clips:       set,
			Jobs:        c.Jobs,
			AssumeYes:   runAssumeYes,
			NoOverwrite: !c.FFmpeg.OverwriteEnabled(),
			Logger:      GetLogger(),
		},
		cmd.OutOrStdout(),
	)
}

// clipSetFromConfig builds the ordered clip set, warning about collapsed duplicates
func clipSetFromConfig(c *config.Config, logger *slog.Logger) (*video.ClipSet, error) {
	set, dups, err := c.ClipSet()
	if err != nil {
		return nil, err
	}
	for _, d := range dups {
		logger.Warn("clip listed more than once; the last range is used at the first position", "file", d)
	}
	return set, nil
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// JoinOptions carries the resolved run configuration
type JoinOptions struct {
	WorkDir     string
	OutputPath  string
	Clips       *video.ClipSet
	Jobs        int
	AssumeYes   bool
	// NoOverwrite keeps existing intermediate and output files in place
	NoOverwrite bool
	Logger      *slog.Logger
}

// RunJoinWithDependencies runs the join command with injected dependencies (for testing)
func RunJoinWithDependencies(
	ctx context.Context,
	cutter video.Cutter,
	combiner video.Combiner,
	files appvideo.FileStore,
	prompter Prompter,
	opts JoinOptions,
	output OutputWriter,
) error {
	if opts.Clips.Len() == 0 {
		return fmt.Errorf("%w: list clips in the run file or pass --clip", video.ErrNoClips)
	}

	// Verify ffmpeg is available if cutter supports it
	if verifiable, ok := cutter.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("ffmpeg verification failed: %w", err)
		}
	}

	fmt.Fprintf(output, "Total duration of the final video will be: %s\n", video.TotalDuration(opts.Clips))

	if !opts.AssumeYes {
		proceed, err := prompter.Confirm("Do you want to continue?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		if !proceed {
			fmt.Fprintln(output, "Operation cancelled by the user.")
			return nil
		}
	}

	service := appvideo.NewJoinService(cutter, combiner, files, output,
		appvideo.WithLogger(opts.Logger),
		appvideo.WithOverwrite(!opts.NoOverwrite),
	)

	_, err := service.Join(ctx, appvideo.JoinInput{
		WorkDir:    opts.WorkDir,
		OutputPath: opts.OutputPath,
		Clips:      opts.Clips,
		Jobs:       opts.Jobs,
	})
	return err
}
