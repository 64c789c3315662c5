package cmd

import (
	"fmt"
	"net"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"lampmc/rpc"
)

var (
	address    string
	maxWorkers int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the checker over grpc",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		lis, err := net.Listen("tcp", address)
		if err != nil {
			return fmt.Errorf("unable to listen on %v: %w", address, err)
		}
		srv := grpc.NewServer()
		rpc.RegisterCheckerServer(srv, rpc.NewServer(logger, maxWorkers))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			logger.Info("Shutting down")
			srv.GracefulStop()
		}()

		logger.Warn("Serving checker", zap.String("address", lis.Addr().String()))
		return srv.Serve(lis)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&address, "address", "a", "localhost:12111", "address to listen on")
	serveCmd.Flags().IntVar(&maxWorkers, "max-workers", runtime.GOMAXPROCS(0), "maximum workers a request may use")
}
