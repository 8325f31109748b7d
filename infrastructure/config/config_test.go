package config

import (
	"os"
	"path/filepath"
	"testing"

	"clipjoin/domain/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `work_dir: /videos
output: final.mp4
jobs: 2
ffmpeg:
  path: /usr/local/bin/ffmpeg
  video_codec: libx264
  audio_codec: aac
  overwrite: false
clips:
  - file: 2.mp4
    start: "00:00:15"
    end: "00:01:57"
  - file: 1.mp4
    start: "00:00:00"
    end: "00:00:30"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clipjoin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/videos", cfg.WorkDir)
	assert.Equal(t, "/videos/final.mp4", cfg.OutputPath())
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpeg.Path)
	assert.False(t, cfg.FFmpeg.OverwriteEnabled())
	require.Len(t, cfg.Clips, 2)
	assert.Equal(t, ClipConfig{File: "2.mp4", Start: "00:00:15", End: "00:01:57"}, cfg.Clips[0])
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "work_dir: /videos\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.Path)
	assert.True(t, cfg.FFmpeg.OverwriteEnabled())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeConfig(t, "clips: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(cfg, path))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestOutputPath_Absolute(t *testing.T) {
	cfg := &Config{WorkDir: "/videos", Output: "/exports/final.mp4"}
	assert.Equal(t, "/exports/final.mp4", cfg.OutputPath())
}

func TestValidate(t *testing.T) {
	assert.ErrorContains(t, (&Config{Output: "x.mp4"}).Validate(), "work_dir is required")
	assert.ErrorContains(t, (&Config{WorkDir: "/v"}).Validate(), "output is required")
	assert.ErrorContains(t, (&Config{WorkDir: "/v", Output: "x.mp4", Clips: []ClipConfig{{Start: "00:00:00"}}}).Validate(), "clip 1: file is required")
	assert.NoError(t, (&Config{WorkDir: "/v", Output: "x.mp4"}).Validate())
}

func TestClipSet(t *testing.T) {
	cfg := &Config{Clips: []ClipConfig{
		{File: "b.mp4", Start: "00:00:00", End: "00:00:05"},
		{File: "a.mp4", Start: "00:00:10", End: "00:00:20"},
		{File: "b.mp4", Start: "00:00:00", End: "00:00:08"},
	}}

	set, dups, err := cfg.ClipSet()
	require.NoError(t, err)

	assert.Equal(t, []string{"b.mp4"}, dups)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "b.mp4", set.Clips()[0].Filename)
	assert.Equal(t, 8, set.Clips()[0].DurationSeconds())
	assert.Equal(t, "00:00:18", video.TotalDuration(set).String())
}

func TestClipSet_InvalidRange(t *testing.T) {
	cfg := &Config{Clips: []ClipConfig{{File: "a.mp4", Start: "00:00:20", End: "00:00:10"}}}

	_, _, err := cfg.ClipSet()
	assert.ErrorIs(t, err, video.ErrInvalidRange)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvFFmpegPath: "/opt/ffmpeg",
		EnvWorkDir:    "/mnt/videos",
		EnvJobs:       "4",
	}
	cfg := &Config{}
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "/opt/ffmpeg", cfg.FFmpeg.Path)
	assert.Equal(t, "/mnt/videos", cfg.WorkDir)
	assert.Equal(t, 4, cfg.Jobs)

	env[EnvJobs] = "zero"
	assert.ErrorContains(t, cfg.ApplyEnv(func(k string) string { return env[k] }), EnvJobs)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")), "missing .env is not an error")

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLIPJOIN_TEST_DOTENV=from-file\n"), 0644))
	t.Setenv("CLIPJOIN_TEST_DOTENV", "")
	os.Unsetenv("CLIPJOIN_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("CLIPJOIN_TEST_DOTENV"))
}

func TestParseClipFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    ClipConfig
		wantErr bool
	}{
		{in: "a.mp4=00:00:10-00:00:20", want: ClipConfig{File: "a.mp4", Start: "00:00:10", End: "00:00:20"}},
		{in: "my=clip.mp4=00:01:00-00:02:30", want: ClipConfig{File: "my=clip.mp4", Start: "00:01:00", End: "00:02:30"}},
		{in: "a.mp4", wantErr: true},
		{in: "=00:00:10-00:00:20", wantErr: true},
		{in: "a.mp4=00:00:10", wantErr: true},
		{in: "a.mp4=00:00:10-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClipFlag(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
