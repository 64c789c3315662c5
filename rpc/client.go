package rpc

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls the checker service over a grpc connection
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Run a check on the server
func (c *Client) Check(ctx context.Context, req CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	in, err := req.encode()
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, checkMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return decodeCheckResponse(out)
}

// Replay a trace on the server
func (c *Client) Replay(ctx context.Context, req ReplayRequest, opts ...grpc.CallOption) (*ReplayResponse, error) {
	in, err := req.encode()
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, replayMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return decodeReplayResponse(out), nil
}

// Check that the server is reachable
func (c *Client) Ping(ctx context.Context, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, pingMethod, &empty.Empty{}, new(empty.Empty), opts...)
}
