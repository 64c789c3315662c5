package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lampmc"
	"lampmc/config"
	"lampmc/controller"
	"lampmc/report"
)

var (
	horizon    int
	workers    int
	variant    string
	exportPath string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Search for the shortest counterexample",
	Long: `Search every input sequence up to the horizon for a property violation.
Flags override values from the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		file, err := mergedConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := lampmc.FileOptions(file)
		if err != nil {
			return err
		}
		opts = append(opts, lampmc.WithLogger(logger))

		if file.Export != "" {
			f, err := os.Create(file.Export)
			if err != nil {
				return fmt.Errorf("unable to create export file: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()
			opts = append(opts, lampmc.Export(f))
		}

		res, err := lampmc.Check(cmd.Context(), opts...)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), res.Trace, res.Violation, res.Horizon)
	},
}

// Load the configuration file, if any, and override its values with the flags that were set
func mergedConfig(cmd *cobra.Command) (*config.File, error) {
	file := &config.File{}
	if configFile != "" {
		f, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		file = f
	}
	flags := cmd.Flags()
	if flags.Changed("horizon") {
		file.Horizon = horizon
	}
	if flags.Changed("workers") {
		file.Workers = workers
	}
	if flags.Changed("variant") {
		file.Variant = variant
	}
	if flags.Changed("export") {
		file.Export = exportPath
	}
	return file, nil
}

func variantUsage() string {
	names := ""
	for i, v := range controller.Variants() {
		if i > 0 {
			names += ", "
		}
		names += v.String()
	}
	return "controller variant: " + names
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&horizon, "horizon", "H", 0, "maximum trace length (default 15)")
	checkCmd.Flags().IntVarP(&workers, "workers", "w", 0, "goroutines expanding each level (default 1)")
	checkCmd.Flags().StringVarP(&variant, "variant", "m", "", variantUsage())
	checkCmd.Flags().StringVarP(&exportPath, "export", "e", "", "write the explored search tree in Newick format to this file")
}
