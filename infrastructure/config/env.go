package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the run file
const (
	EnvFFmpegPath = "CLIPJOIN_FFMPEG"
	EnvWorkDir    = "CLIPJOIN_WORK_DIR"
	EnvJobs       = "CLIPJOIN_JOBS"
)

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error; existing variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from the environment using lookup (usually os.Getenv)
func (c *Config) ApplyEnv(lookup func(string) string) error {
	if v := lookup(EnvFFmpegPath); v != "" {
		c.FFmpeg.Path = v
	}
	if v := lookup(EnvWorkDir); v != "" {
		c.WorkDir = v
	}
	if v := lookup(EnvJobs); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil || jobs < 1 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvJobs, v)
		}
		c.Jobs = jobs
	}
	return nil
}
