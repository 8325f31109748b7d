package ffmpeg

// Default codecs used for both cutting and combining so every intermediate
// shares the same stream layout.
const (
	DefaultVideoCodec = "libx264"
	DefaultAudioCodec = "aac"
)

// settings holds the invocation knobs shared by Cutter and Combiner
type settings struct {
	ffmpegPath string
	videoCodec string
	audioCodec string
	overwrite  bool
	runner     CommandRunner
}

func defaultSettings() settings {
	return settings{
		ffmpegPath: "ffmpeg",
		videoCodec: DefaultVideoCodec,
		audioCodec: DefaultAudioCodec,
		overwrite:  true,
		runner:     &ExecCommandRunner{},
	}
}

// overwriteFlag tells ffmpeg to replace (-y) or refuse (-n) an existing output
func (s settings) overwriteFlag() string {
	if s.overwrite {
		return "-y"
	}
	return "-n"
}

// Option is a functional option for configuring Cutter and Combiner
type Option func(*settings)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.ffmpegPath = path
		}
	}
}

// WithCodecs overrides the video and audio encoders; empty values keep the defaults
func WithCodecs(video, audio string) Option {
	return func(s *settings) {
		if video != "" {
			s.videoCodec = video
		}
		if audio != "" {
			s.audioCodec = audio
		}
	}
}

// WithOverwrite controls whether an existing output file is replaced
func WithOverwrite(overwrite bool) Option {
	return func(s *settings) {
		s.overwrite = overwrite
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) Option {
	return func(s *settings) {
		s.runner = runner
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
