package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lampmc",
	Short: "Bounded model checker for the lamp controller",
	Long: `lampmc explores every button and motion input sequence up to a horizon and
reports the shortest sequence that breaks a property of the lamp controller.
A negative result is bounded and is not a proof for longer sequences.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
