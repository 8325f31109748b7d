package video

import "context"

// CutRequest describes one cut for the external media processor
type CutRequest struct {
	InputPath  string
	OutputPath string
	Start      Timestamp
	End        Timestamp
}

// Cutter extracts a sub-range of one input into one output, re-encoding for frame-accurate boundaries.
// This is a port that can be implemented by different infrastructure adapters
type Cutter interface {
	Cut(ctx context.Context, req CutRequest) error
}

// Combiner concatenates inputs, in order, into a single output
type Combiner interface {
	Combine(ctx context.Context, inputs []string, outputPath string) error
}

// FileChecker defines the interface for checking file existence
// This is used to validate that source files exist before cutting
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}

// FileMover moves a finished file into place
type FileMover interface {
	Move(src, dst string) error
}

// FileRemover deletes a file. Removing a missing file is not an error.
type FileRemover interface {
	RemoveIfExists(path string) error
}
