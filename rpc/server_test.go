package rpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"lampmc/monitor"
)

func startServer(t *testing.T) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterCheckerServer(srv, NewServer(nil, 4))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewClient(conn)
}

func TestPing(t *testing.T) {
	c := startServer(t)
	require.NoError(t, c.Ping(context.Background()))
}

func TestRemoteCheck(t *testing.T) {
	c := startServer(t)

	res, err := c.Check(context.Background(), CheckRequest{})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 15, res.Horizon)
	assert.Equal(t, "correct", res.Variant)
	assert.Nil(t, res.Violation)
	assert.NotEmpty(t, res.RunID)
	assert.Greater(t, res.Stats.States, 1)

	res, err = c.Check(context.Background(), CheckRequest{Variant: "skip-idle-entry-reset", Workers: 16})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "TF,FF,TF,FF,TF", res.Trace)
	require.NotNil(t, res.Violation)
	assert.Equal(t, monitor.IdleTimerZero, res.Violation.Property)
	assert.Equal(t, 4, res.Violation.Tick)
}

func TestRemoteCheckInvalidArgument(t *testing.T) {
	c := startServer(t)

	for _, req := range []CheckRequest{
		{Variant: "unknown"},
		{Horizon: -2},
		{Workers: -1},
	} {
		_, err := c.Check(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "request %+v", req)
	}
}

func TestRemoteReplay(t *testing.T) {
	c := startServer(t)

	res, err := c.Replay(context.Background(), ReplayRequest{Trace: "TF,TF,FF"})
	require.NoError(t, err)
	require.Len(t, res.Ticks, 3)
	assert.Nil(t, res.Violation)
	assert.Equal(t, ReplayTick{Tick: 1, Input: "TF", Pulse: false, Mode: "SteadyOn", Timer: 10, Lamp: 1}, res.Ticks[1])

	res, err = c.Replay(context.Background(), ReplayRequest{Variant: "level-button", Trace: "TF,TF,FF"})
	require.NoError(t, err)
	assert.Len(t, res.Ticks, 2)
	require.NotNil(t, res.Violation)
	assert.Equal(t, monitor.PulseMatchesEdge, res.Violation.Property)

	_, err = c.Replay(context.Background(), ReplayRequest{Trace: "XX"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDecodeCheckRequest(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{"horizon": 2.5})
	require.NoError(t, err)
	_, err = decodeCheckRequest(s)
	assert.ErrorIs(t, err, ErrInvalidField)

	s, err = structpb.NewStruct(map[string]interface{}{"variant": 3})
	require.NoError(t, err)
	_, err = decodeCheckRequest(s)
	assert.ErrorIs(t, err, ErrInvalidField)

	s, err = structpb.NewStruct(map[string]interface{}{"horizon": 4, "variant": nil})
	require.NoError(t, err)
	req, err := decodeCheckRequest(s)
	require.NoError(t, err)
	assert.Equal(t, CheckRequest{Horizon: 4}, req)
}
