package grpc

import (
	"TriGrid/internal/geometry/interfaces/handler"
	"TriGrid/internal/geometry/interfaces/handler/dto"
	"TriGrid/internal/shared/transport"
	"context"
	"encoding/json"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type GrpcHandler struct {
	shape *handler.Shape
}

func NewGrpcHandler(s *handler.Shape) *GrpcHandler {
	return &GrpcHandler{shape: s}
}

func (h *GrpcHandler) RegisterRoutes(s gogrpc.ServiceRegistrar) {
	RegisterShapeServiceServer(s, h)
}

func (h *GrpcHandler) CalculateCoordinates(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req dto.CoordinatesReq
	if err := decodeStruct(in, &req); err != nil {
		return nil, h.fail(ctx, transport.InvalidParam, err.Error())
	}

	shape, err := h.shape.ShapeService.CalculateCoordinates(ctx, req.ToModel())
	if err != nil {
		return nil, h.error(ctx, err)
	}

	coords := make([]any, 0, len(shape))
	for _, v := range shape {
		coords = append(coords, map[string]any{"x": v.X, "y": v.Y})
	}
	return h.ok(ctx, map[string]any{"coordinates": coords})
}

func (h *GrpcHandler) CalculateCellReference(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req dto.CellReferenceReq
	if err := decodeStruct(in, &req); err != nil {
		return nil, h.fail(ctx, transport.InvalidParam, err.Error())
	}

	ref, err := h.shape.ShapeService.CalculateCellReference(ctx, req.ToModel())
	if err != nil {
		return nil, h.error(ctx, err)
	}
	return h.ok(ctx, map[string]any{"row": ref.Row(), "column": ref.Column()})
}

func (h *GrpcHandler) ok(ctx context.Context, data map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(data)
	if err != nil {
		return nil, h.fail(ctx, transport.SystemError, err.Error())
	}
	transport.SetBizCode(ctx, transport.BizCode(transport.OK))
	return out, nil
}

// fail 记录业务码并转换为 grpc status：客户端可处理的拒绝为 InvalidArgument，其余为 Internal。
func (h *GrpcHandler) fail(ctx context.Context, code int, msg string) error {
	transport.SetBizCode(ctx, transport.BizCode(code))
	if code >= transport.SystemError {
		return status.Error(codes.Internal, msg)
	}
	return status.Error(codes.InvalidArgument, msg)
}

func (h *GrpcHandler) error(ctx context.Context, err error) error {
	code, msg := handler.HandleError(ctx, h.shape.Log, err)
	return h.fail(ctx, code, msg)
}

// decodeStruct 经 protojson 转成 JSON 再解码，与 HTTP 入口共用同一套 JSON 规则：
// 小数写入整数字段（grid.size、数字形式的 shapeType）会解码失败，而不是被截断。
func decodeStruct(in *structpb.Struct, out any) error {
	raw, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
