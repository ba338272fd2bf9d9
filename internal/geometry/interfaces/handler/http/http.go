package http

import (
	"TriGrid/internal/geometry/interfaces/handler"
	"TriGrid/internal/geometry/interfaces/handler/dto"
	httpdto "TriGrid/internal/geometry/interfaces/handler/http/dto"
	"TriGrid/internal/shared/transport"
	"context"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
)

type HttpHandler struct {
	shape *handler.Shape
}

func NewHttpHandler(s *handler.Shape) *HttpHandler {
	return &HttpHandler{shape: s}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	shapeGroup := group.Group("/shape")
	shapeGroup.POST("/coordinates", h.CalculateCoordinates)
	shapeGroup.POST("/cell-reference", h.CalculateCellReference)

	// 兼容旧客户端的路径
	legacy := group.Group("/Shape")
	legacy.POST("/CalculateCoordinates", h.CalculateCoordinates)
	legacy.POST("/CalculateGridValue", h.CalculateCellReference)
}

func (h *HttpHandler) CalculateCoordinates(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CoordinatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	shape, err := h.shape.ShapeService.CalculateCoordinates(ctx, req.ToModel())
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.NewCoordinatesResp(shape))
}

func (h *HttpHandler) CalculateCellReference(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CellReferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	ref, err := h.shape.ShapeService.CalculateCellReference(ctx, req.ToModel())
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.NewCellReferenceResp(ref))
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, httpdto.Success(transport.OK, data))
}

// fail 按业务码选择 HTTP 状态：服务端错误 500，其余拒绝 400。
func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	status := nethttp.StatusBadRequest
	if code >= transport.SystemError {
		status = nethttp.StatusInternalServerError
	}
	c.JSON(status, httpdto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, err error) {
	code, msg := handler.HandleError(ctx, h.shape.Log, err)
	h.fail(c, code, msg)
}
