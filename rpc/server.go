package rpc

import (
	"context"
	"errors"

	"github.com/golang/protobuf/ptypes/empty"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"lampmc"
	"lampmc/controller"
	"lampmc/report"
	"lampmc/search"
	"lampmc/simulator"
)

// Server implements the checker service by running checks in the server process
type Server struct {
	logger *zap.Logger
	// Maximum number of workers a request may ask for. Larger requests are capped.
	maxWorkers int
}

func NewServer(logger *zap.Logger, maxWorkers int) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Server{
		logger:     logger,
		maxWorkers: maxWorkers,
	}
}

func (s *Server) Check(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeCheckRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	opts := []lampmc.CheckOption{lampmc.WithLogger(s.logger)}
	if req.Horizon != 0 {
		opts = append(opts, lampmc.Horizon(req.Horizon))
	}
	if req.Workers != 0 {
		opts = append(opts, lampmc.Workers(min(req.Workers, s.maxWorkers)))
	}
	variant, err := controller.ParseVariant(req.Variant)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	opts = append(opts, lampmc.WithVariant(variant))

	res, err := lampmc.Check(ctx, opts...)
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := encodeCheckResponse(res)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *Server) Replay(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeReplayRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	variant, err := controller.ParseVariant(req.Variant)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	trace, err := report.ParseTrace(req.Trace)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	records, v := simulator.New(variant).Replay(trace)
	s.logger.Debug("Replayed trace", zap.Stringer("variant", variant), zap.Int("ticks", len(records)), zap.Bool("violation", v != nil))
	out, err := encodeReplayResponse(records, v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *Server) Ping(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	return &empty.Empty{}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, search.ErrInvalidHorizon), errors.Is(err, search.ErrInvalidWorkers):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, err.Error())
}
