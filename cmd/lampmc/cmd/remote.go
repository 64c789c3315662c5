package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"lampmc/report"
	"lampmc/rpc"
)

var timeout time.Duration

// remoteCmd represents the remote command
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Run a check on a lampmc server",
	Long:  `Run a check on a server started with "lampmc serve". Uses the same flags and configuration file as check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := mergedConfig(cmd)
		if err != nil {
			return err
		}
		req := rpc.CheckRequest{Horizon: file.Horizon, Workers: file.Workers, Variant: file.Variant}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		conn, err := grpc.DialContext(ctx, address, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("unable to connect to %v: %w", address, err)
		}
		defer func() {
			_ = conn.Close()
		}()

		res, err := rpc.NewClient(conn).Check(ctx, req)
		if err != nil {
			return err
		}
		trace, err := report.ParseTrace(res.Trace)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "run: %v (%v, %v)\n", res.RunID, res.Variant, res.Elapsed)
		return report.Write(cmd.OutOrStdout(), trace, res.Violation, res.Horizon)
	},
}

func init() {
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.Flags().StringVarP(&address, "address", "a", "localhost:12111", "address of the server")
	remoteCmd.Flags().DurationVarP(&timeout, "timeout", "t", time.Minute, "deadline for the check")
	remoteCmd.Flags().IntVarP(&horizon, "horizon", "H", 0, "maximum trace length (default 15)")
	remoteCmd.Flags().IntVarP(&workers, "workers", "w", 0, "goroutines expanding each level (default 1)")
	remoteCmd.Flags().StringVarP(&variant, "variant", "m", "", variantUsage())
}
