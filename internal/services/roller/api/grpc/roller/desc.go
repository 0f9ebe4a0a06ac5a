package roller

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "dicegoblin.roll.v1.RollService"
	// RollMethod is the full method name of RollService.Roll.
	RollMethod = "/" + ServiceName + "/Roll"
)

// RollServiceServer is the server API for RollService.
type RollServiceServer interface {
	// Roll takes a roll expression and answers "<total> = <trace>".
	Roll(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// RegisterRollServiceServer registers srv on s.
func RegisterRollServiceServer(s grpc.ServiceRegistrar, srv RollServiceServer) {
	s.RegisterService(&RollServiceDesc, srv)
}

// RollServiceDesc describes RollService using well-known wrapper messages, so
// no generated code is needed on either side.
var RollServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RollServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Roll",
			Handler:    rollHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dicegoblin/roll/v1/roll.proto",
}

func rollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RollServiceServer).Roll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RollMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RollServiceServer).Roll(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
