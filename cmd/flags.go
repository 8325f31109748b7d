package cmd

import (
	"clipjoin/infrastructure/config"

	"github.com/spf13/cobra"
)

// clipFlags are shared by commands that accept clips on the command line
type clipFlags struct {
	dir    string
	output string
	clips  []string
}

func (f *clipFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "directory containing the source videos (overrides work_dir)")
	cmd.Flags().StringVar(&f.output, "output", "", "final output file, relative to --dir unless absolute (overrides output)")
	cmd.Flags().StringArrayVar(&f.clips, "clip", nil, "clip as FILE=HH:MM:SS-HH:MM:SS (repeatable, replaces the run file's clips)")
}

// apply returns a copy of base with the flags layered on top
func (f *clipFlags) apply(base *config.Config) (*config.Config, error) {
	c := *base
	if f.dir != "" {
		c.WorkDir = f.dir
	}
	if f.output != "" {
		c.Output = f.output
	}
	if len(f.clips) > 0 {
		c.Clips = make([]config.ClipConfig, 0, len(f.clips))
		for _, raw := range f.clips {
			clip, err := config.ParseClipFlag(raw)
			if err != nil {
				return nil, err
			}
			c.Clips = append(c.Clips, clip)
		}
	}
	return &c, nil
}
