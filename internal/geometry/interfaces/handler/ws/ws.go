package ws

import (
	"TriGrid/internal/geometry/interfaces/handler"
	"TriGrid/internal/geometry/interfaces/handler/dto"
	"TriGrid/internal/shared/transport"
	"TriGrid/internal/shared/transport/ws"
	"context"
)

type WsHandler struct {
	shape *handler.Shape
}

func NewWsHandler(s *handler.Shape) *WsHandler {
	return &WsHandler{shape: s}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	shapeGroup := r.Group("shape")
	shapeGroup.Handle("coordinates", h.CalculateCoordinates)
	shapeGroup.Handle("cellReference", h.CalculateCellReference)
}

func (h *WsHandler) CalculateCoordinates(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if wsReq == nil || wsReq.Body == nil || wsResp == nil || wsResp.Body == nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.CoordinatesReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	shape, err := h.shape.ShapeService.CalculateCoordinates(ctx, req.ToModel())
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	h.ok(wsResp, dto.NewCoordinatesResp(shape))
}

func (h *WsHandler) CalculateCellReference(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if wsReq == nil || wsReq.Body == nil || wsResp == nil || wsResp.Body == nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.CellReferenceReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	ref, err := h.shape.ShapeService.CalculateCellReference(ctx, req.ToModel())
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	h.ok(wsResp, dto.NewCellReferenceResp(ref))
}

func (h *WsHandler) ok(resp *ws.WsMsgResp, data any) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = data
}

func (h *WsHandler) fail(resp *ws.WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	if msg != "" {
		resp.Body.Msg = msg
	}
}

func (h *WsHandler) error(ctx context.Context, resp *ws.WsMsgResp, err error) {
	code, msg := handler.HandleError(ctx, h.shape.Log, err)
	h.fail(resp, code, msg)
}
