package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"clipjoin/domain/video"
	"clipjoin/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a run file interactively",
	Long: `Prompts for the source directory, the output file and each clip, then
writes a run file that "clipjoin run" can use.

Clips are asked for one at a time; leave the file name empty to finish.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath
	}
	return RunSetupWithPrompter(DefaultPrompter, path, cmd.OutOrStdout())
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string, output OutputWriter) error {
	// Check if the run file already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", configPath), false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(output, "Setup cancelled.")
			return nil
		}
	}

	fmt.Fprintln(output, "Welcome to clipjoin setup!")
	fmt.Fprintln(output)

	cfg := &config.Config{}

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptClips(prompter, cfg); err != nil {
		return err
	}

	cfg.ApplyDefaults()

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	set, _, err := cfg.ClipSet()
	if err != nil {
		return err
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Saved %d clip(s), total %s, to %s\n", set.Len(), video.TotalDuration(set), configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	dir, err := prompter.Input("Which directory holds the source videos?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if dir == "" {
		return fmt.Errorf("source directory is required")
	}
	cfg.WorkDir = dir

	output, err := prompter.Input("Name of the final output file?", config.DefaultOutput)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Output = output

	return nil
}

func promptClips(prompter Prompter, cfg *config.Config) error {
	for {
		file, err := prompter.Input(fmt.Sprintf("Clip %d file name (empty to finish)", len(cfg.Clips)+1), "")
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if file == "" {
			break
		}

		start, err := prompter.Input("Start (HH:MM:SS)", "00:00:00")
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		end, err := prompter.Input("End (HH:MM:SS)", "")
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}

		if _, err := video.NewClipRequest(file, start, end); err != nil {
			return err
		}

		cfg.Clips = append(cfg.Clips, config.ClipConfig{File: file, Start: start, End: end})
	}

	if len(cfg.Clips) == 0 {
		return fmt.Errorf("at least one clip is required")
	}
	return nil
}
