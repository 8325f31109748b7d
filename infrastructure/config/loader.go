package config

import (
	"fmt"
	"os"
	"path/filepath"

	"clipjoin/domain/video"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the run file is looked for when --config is not given
const DefaultPath = "clipjoin.yaml"

// DefaultOutput is the final file name used when none is configured
const DefaultOutput = "final_output.mp4"

// Config represents a complete run: where the sources live, what to cut, and where to write
type Config struct {
	WorkDir string       `yaml:"work_dir"`
	Output  string       `yaml:"output"`
	Jobs    int          `yaml:"jobs,omitempty"`
	FFmpeg  FFmpegConfig `yaml:"ffmpeg"`
	Clips   []ClipConfig `yaml:"clips"`
}

// FFmpegConfig contains settings for the external media processor
type FFmpegConfig struct {
	Path       string `yaml:"path,omitempty"`
	VideoCodec string `yaml:"video_codec,omitempty"`
	AudioCodec string `yaml:"audio_codec,omitempty"`
	Overwrite  *bool  `yaml:"overwrite,omitempty"`
}

// ClipConfig is one entry of the ordered clip list
type ClipConfig struct {
	File  string `yaml:"file"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyDefaults fills in unset optional values
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	if c.FFmpeg.Path == "" {
		c.FFmpeg.Path = "ffmpeg"
	}
}

// OverwriteEnabled reports whether ffmpeg may replace existing outputs (default true)
func (f FFmpegConfig) OverwriteEnabled() bool {
	return f.Overwrite == nil || *f.Overwrite
}

// OutputPath resolves the final output path; relative paths are inside WorkDir
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.WorkDir, c.Output)
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.WorkDir == "" {
		return fmt.Errorf("work_dir is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	for i, clip := range c.Clips {
		if clip.File == "" {
			return fmt.Errorf("clip %d: file is required", i+1)
		}
	}
	return nil
}

// ClipSet converts the clip list into the ordered domain set. Filenames
// listed more than once collapse into one entry; they are returned in
// duplicates so the caller can warn.
func (c *Config) ClipSet() (*video.ClipSet, []string, error) {
	set := video.NewClipSet()
	var duplicates []string
	for _, cc := range c.Clips {
		req, err := video.NewClipRequest(cc.File, cc.Start, cc.End)
		if err != nil {
			return nil, nil, err
		}
		if set.Add(req) {
			duplicates = append(duplicates, cc.File)
		}
	}
	return set, duplicates, nil
}
