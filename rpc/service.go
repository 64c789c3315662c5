package rpc

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The full name of the checker service
const ServiceName = "lampmc.Checker"

const (
	checkMethod  = "/" + ServiceName + "/Check"
	replayMethod = "/" + ServiceName + "/Replay"
	pingMethod   = "/" + ServiceName + "/Ping"
)

// CheckerServer is the server API of the checker service.
//
// Requests and responses are protobuf Structs. See CheckRequest, CheckResponse, ReplayRequest and ReplayResponse for their fields.
type CheckerServer interface {
	Check(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Replay(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *empty.Empty) (*empty.Empty, error)
}

// Register the checker service with the grpc server
func RegisterCheckerServer(s grpc.ServiceRegistrar, srv CheckerServer) {
	s.RegisterService(&checkerServiceDesc, srv)
}

var checkerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Check", Handler: structHandler(checkMethod, CheckerServer.Check)},
		{MethodName: "Replay", Handler: structHandler(replayMethod, CheckerServer.Replay)},
		{MethodName: "Ping", Handler: pingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lampmc/checker",
}

type structMethod func(CheckerServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func structHandler(fullMethod string, method structMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(CheckerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(CheckerServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func pingHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(empty.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CheckerServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: pingMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CheckerServer).Ping(ctx, req.(*empty.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
