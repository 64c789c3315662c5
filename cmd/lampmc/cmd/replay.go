package cmd

import (
	"github.com/spf13/cobra"

	"lampmc/controller"
	"lampmc/report"
	"lampmc/simulator"
)

var replayVariant string

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay TRACE",
	Short: "Replay an input trace tick by tick",
	Long: `Replay an input trace, e.g. "TF,FF,TF", and print the controller state after each tick.
Each symbol is the raw button level followed by the motion sensor. Replaying stops at the first violation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := controller.ParseVariant(replayVariant)
		if err != nil {
			return err
		}
		trace, err := report.ParseTrace(args[0])
		if err != nil {
			return err
		}
		records, violation := simulator.New(v).Replay(trace)
		return report.WriteReplay(cmd.OutOrStdout(), records, violation)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayVariant, "variant", "m", "", variantUsage())
}
