package cmd

import (
	"fmt"
	"text/tabwriter"

	"clipjoin/domain/video"

	"github.com/spf13/cobra"
)

var durationFlags clipFlags

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Show the estimated duration of the joined video",
	Long: `Print each requested clip with its length and the total length of the
joined video. Nothing is cut and ffmpeg is not invoked.

Example:
  clipjoin duration --clip a.mp4=00:00:10-00:00:20 --clip b.mp4=00:00:00-00:00:05`,
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)
	durationFlags.register(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	base, err := GetConfig()
	if err != nil {
		return err
	}

	c, err := durationFlags.apply(base)
	if err != nil {
		return err
	}

	set, err := clipSetFromConfig(c, GetLogger())
	if err != nil {
		return err
	}

	return RunDurationWithDependencies(set, cmd.OutOrStdout())
}

// RunDurationWithDependencies prints the per-clip breakdown and the total
func RunDurationWithDependencies(set *video.ClipSet, output OutputWriter) error {
	if set.Len() > 0 {
		w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tSTART\tEND\tLENGTH")
		for _, c := range set.Clips() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Filename, c.Start, c.End, video.FormatSeconds(c.DurationSeconds()))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(output)
	}

	fmt.Fprintf(output, "Total duration of the final video will be: %s\n", video.TotalDuration(set))
	return nil
}
