package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"clipjoin/infrastructure/config"
	"clipjoin/infrastructure/logging"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	verbose bool
	cfg     *config.Config
	cfgErr  error
	logger  = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "clipjoin",
	Short: "Trim video files to time ranges and join them into one file",
	Long: `clipjoin cuts each requested clip out of its source video with ffmpeg,
re-encoding for frame-accurate boundaries, then concatenates the cuts
into a single output file and removes the intermediate files.

Clips are read from a YAML run file (default ./clipjoin.yaml) or given
with --clip. They are joined in the order listed.

Example:
  clipjoin run --dir /videos --clip 1.mp4=00:00:15-00:01:57 --clip 2.mp4=00:00:00-00:00:40`,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the run, which
// stops ffmpeg and removes any intermediate files.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "run file (default is ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with CLIPJOIN_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log ffmpeg invocations and show ffmpeg output")
}

func initConfig() {
	level := logging.LogLevelInfo
	if verbose {
		level = logging.LogLevelDebug
	}
	if l, err := logging.New(os.Stderr, level); err == nil {
		logger = l
	}

	if err := config.LoadDotEnv(envFile); err != nil {
		logger.Warn("ignoring env file", "path", envFile, "error", err)
	}

	cfg, cfgErr = loadConfig(cfgFile)
	if cfgErr == nil {
		cfgErr = cfg.ApplyEnv(os.Getenv)
	}
}

// loadConfig reads the run file. The default path is optional so that
// everything can be given on the command line; an explicit path must exist.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err != nil {
			c := &config.Config{}
			c.ApplyDefaults()
			return c, nil
		}
		path = config.DefaultPath
	}
	return config.Load(path)
}

// GetConfig returns the loaded configuration
func GetConfig() (*config.Config, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return cfg, nil
}

// GetLogger returns the diagnostic logger configured from --verbose
func GetLogger() *slog.Logger {
	return logger
}
