package video

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"clipjoin/domain/video"

	"golang.org/x/sync/errgroup"
)

// FileStore groups the filesystem ports a join needs
type FileStore interface {
	video.FileChecker
	video.FileMover
	video.FileRemover
}

// JoinResult contains the result of a join operation
type JoinResult struct {
	OutputPath string
	Clips      int
	Combined   bool
	Duration   string
}

// JoinInput represents the input for a join operation
type JoinInput struct {
	WorkDir    string
	OutputPath string
	Clips      *video.ClipSet
	Jobs       int // concurrent cuts; values below 1 mean sequential
}

// JoinService cuts each requested clip and joins the cuts into one file
type JoinService struct {
	cutter    video.Cutter
	combiner  video.Combiner
	files     FileStore
	output    io.Writer
	logger    *slog.Logger
	overwrite bool
}

// JoinServiceOption is a functional option for configuring JoinService
type JoinServiceOption func(*JoinService)

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) JoinServiceOption {
	return func(s *JoinService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOverwrite controls whether existing intermediate and output files may be
// replaced. It should match the policy the cutter and combiner were built with.
func WithOverwrite(overwrite bool) JoinServiceOption {
	return func(s *JoinService) {
		s.overwrite = overwrite
	}
}

// NewJoinService creates a new JoinService. Progress lines are written to output.
func NewJoinService(cutter video.Cutter, combiner video.Combiner, files FileStore, output io.Writer, opts ...JoinServiceOption) *JoinService {
	if output == nil {
		output = io.Discard
	}
	s := &JoinService{
		cutter:    cutter,
		combiner:  combiner,
		files:     files,
		output:    output,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		overwrite: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Join cuts every clip in insertion order, then moves the single cut or
// combines all cuts into input.OutputPath. Intermediate files handed to the
// cutter are removed on every return path, including failures and
// cancellation; paths the cutter was never asked to write are left alone.
func (s *JoinService) Join(ctx context.Context, input JoinInput) (*JoinResult, error) {
	clips := input.Clips.Clips()
	if len(clips) == 0 {
		return nil, video.ErrNoClips
	}

	if err := s.validate(input, clips); err != nil {
		return nil, err
	}

	cleanup := &cleanupStack{}
	defer s.runCleanup(cleanup, input.OutputPath)

	intermediates, err := s.cutAll(ctx, input, clips, cleanup)
	if err != nil {
		return nil, err
	}

	result := &JoinResult{
		OutputPath: input.OutputPath,
		Clips:      len(intermediates),
		Duration:   video.TotalDuration(input.Clips).String(),
	}

	if len(intermediates) == 1 {
		fmt.Fprintf(s.output, "Only one clip; skipping combine step...\n")
		if !s.overwrite && s.files.Exists(input.OutputPath) {
			return nil, fmt.Errorf("output file already exists: %s", input.OutputPath)
		}
		if err := s.files.Move(intermediates[0], input.OutputPath); err != nil {
			return nil, err
		}
	} else {
		fmt.Fprintf(s.output, "Combining %d clips...\n", len(intermediates))
		if err := s.combiner.Combine(ctx, intermediates, input.OutputPath); err != nil {
			return nil, err
		}
		result.Combined = true
	}

	fmt.Fprintf(s.output, "Final output saved to %s\n", input.OutputPath)
	return result, nil
}

// validate checks sources exist and that no intermediate would clobber a source or the output
func (s *JoinService) validate(input JoinInput, clips []video.ClipRequest) error {
	if input.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if !s.overwrite && s.files.Exists(input.OutputPath) {
		return fmt.Errorf("output file already exists: %s", input.OutputPath)
	}

	sources := make(map[string]bool, len(clips))
	for _, c := range clips {
		src := c.SourcePath(input.WorkDir)
		if !s.files.Exists(src) {
			return fmt.Errorf("source file does not exist: %s", src)
		}
		sources[src] = true
	}

	for _, c := range clips {
		tmp := c.IntermediatePath(input.WorkDir)
		if sources[tmp] {
			return fmt.Errorf("intermediate file %s would overwrite a source clip", tmp)
		}
		if tmp == input.OutputPath {
			return fmt.Errorf("output path %s collides with the intermediate file for %s", tmp, c.Filename)
		}
	}

	return nil
}

// cutAll runs the cutter over clips with at most input.Jobs processes in
// flight. The returned paths are in insertion order.
func (s *JoinService) cutAll(ctx context.Context, input JoinInput, clips []video.ClipRequest, cleanup *cleanupStack) ([]string, error) {
	jobs := input.Jobs
	if jobs < 1 {
		jobs = 1
	}

	paths := make([]string, len(clips))
	for i, c := range clips {
		paths[i] = c.IntermediatePath(input.WorkDir)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var mu sync.Mutex
	total := len(clips)

	for i, c := range clips {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			mu.Lock()
			fmt.Fprintf(s.output, "[%d/%d] Cutting %s from %s to %s...\n", i+1, total, c.Filename, c.Start, c.End)
			mu.Unlock()

			// a file left by someone else is only ours once the cutter may replace it
			if s.overwrite || !s.files.Exists(paths[i]) {
				cleanup.push(paths[i])
			}

			req := video.CutRequest{
				InputPath:  c.SourcePath(input.WorkDir),
				OutputPath: paths[i],
				Start:      c.Start,
				End:        c.End,
			}
			if err := s.cutter.Cut(gctx, req); err != nil {
				return fmt.Errorf("cut %s: %w", c.Filename, err)
			}

			s.logger.Debug("clip cut", "source", req.InputPath, "output", req.OutputPath)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup's context is cancelled by Wait; a cancelled parent still counts
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// runCleanup removes every registered intermediate except keep
func (s *JoinService) runCleanup(cleanup *cleanupStack, keep string) {
	removed := 0
	for _, path := range cleanup.drain() {
		if path == keep || !s.files.Exists(path) {
			continue
		}
		if err := s.files.RemoveIfExists(path); err != nil {
			s.logger.Warn("failed to remove intermediate file", "path", path, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		fmt.Fprintf(s.output, "Removed %d intermediate file(s)\n", removed)
	}
}

// cleanupStack records intermediate paths; drain returns them newest first
type cleanupStack struct {
	mu    sync.Mutex
	paths []string
}

func (c *cleanupStack) push(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *cleanupStack) drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.paths))
	for i := len(c.paths) - 1; i >= 0; i-- {
		out = append(out, c.paths[i])
	}
	c.paths = nil
	return out
}
