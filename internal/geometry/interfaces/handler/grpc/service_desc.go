package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// 消息体统一使用 google.protobuf.Struct，字段名与 JSON DTO 相同，不需要额外的 .proto 生成步骤。
const (
	ServiceName = "trigrid.shape.v1.ShapeService"

	CalculateCoordinatesMethod   = "/" + ServiceName + "/CalculateCoordinates"
	CalculateCellReferenceMethod = "/" + ServiceName + "/CalculateCellReference"
)

type ShapeServiceServer interface {
	CalculateCoordinates(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CalculateCellReference(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var ShapeServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShapeServiceServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "CalculateCoordinates", Handler: calculateCoordinatesHandler},
		{MethodName: "CalculateCellReference", Handler: calculateCellReferenceHandler},
	},
	Streams:  []gogrpc.StreamDesc{},
	Metadata: "trigrid/shape/v1/shape.proto",
}

func RegisterShapeServiceServer(s gogrpc.ServiceRegistrar, srv ShapeServiceServer) {
	s.RegisterService(&ShapeServiceDesc, srv)
}

func calculateCoordinatesHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShapeServiceServer).CalculateCoordinates(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: CalculateCoordinatesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShapeServiceServer).CalculateCoordinates(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func calculateCellReferenceHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShapeServiceServer).CalculateCellReference(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: CalculateCellReferenceMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShapeServiceServer).CalculateCellReference(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ShapeServiceClient 是手写的客户端桩，供其他进程与测试调用。
type ShapeServiceClient struct {
	cc gogrpc.ClientConnInterface
}

func NewShapeServiceClient(cc gogrpc.ClientConnInterface) *ShapeServiceClient {
	return &ShapeServiceClient{cc: cc}
}

func (c *ShapeServiceClient) CalculateCoordinates(ctx context.Context, in *structpb.Struct, opts ...gogrpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CalculateCoordinatesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ShapeServiceClient) CalculateCellReference(ctx context.Context, in *structpb.Struct, opts ...gogrpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CalculateCellReferenceMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
