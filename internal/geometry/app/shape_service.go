package app

import (
	"context"

	"TriGrid/internal/geometry/app/model"
	"TriGrid/internal/geometry/domain"
	"TriGrid/internal/geometry/service"
	"TriGrid/modules/kit/logx"

	"go.uber.org/zap"
)

const defaultMaxVertices = 16

type Options struct {
	// MaxVertices 限制单次请求的顶点数量，<= 0 时使用默认值。
	MaxVertices int
}

// ShapeService 是几何计算的应用层入口：调用纯函数内核，把“无结果”归类为带 reason 的业务错误。
type ShapeService struct {
	dispatcher  *service.ShapeDispatcher
	log         logx.Logger
	maxVertices int
}

func NewShapeService(dispatcher *service.ShapeDispatcher, log logx.Logger, opts Options) *ShapeService {
	if dispatcher == nil {
		dispatcher = service.NewShapeDispatcher(nil)
	}
	if log == nil {
		log = logx.Nop()
	}
	if opts.MaxVertices <= 0 {
		opts.MaxVertices = defaultMaxVertices
	}
	return &ShapeService{
		dispatcher:  dispatcher,
		log:         log,
		maxVertices: opts.MaxVertices,
	}
}

// CalculateCoordinates 由单元格引用计算形状顶点。
func (s *ShapeService) CalculateCoordinates(ctx context.Context, req model.CoordinatesReq) (domain.Shape, error) {
	if !req.Kind.Supported() {
		return nil, ErrUnsupportedShape.WithData("kind", req.Kind.String())
	}

	ref, refOK := domain.ParseCellReference(req.CellToken)
	shape, ok := s.dispatcher.CalculateCoordinates(req.Kind, req.Grid, ref)
	if !ok {
		reason := ReasonInvalidCellReference
		if !req.Grid.Valid() {
			reason = ReasonInvalidGrid
		}
		return nil, reject(MsgCalculateCoordinates, reason).
			WithData("cell", req.CellToken).
			WithData("grid_size", req.Grid.Size).
			WithData("cell_parsed", refOK)
	}

	s.log.WithContext(ctx).Debug("coordinates calculated",
		zap.String("cell", ref.String()),
		zap.Int("grid_size", req.Grid.Size),
		zap.Any("vertices", shape),
	)
	return shape, nil
}

// CalculateCellReference 由顶点反推单元格引用，顶点顺序为 [左上, 外侧, 右下]。
func (s *ShapeService) CalculateCellReference(ctx context.Context, req model.CellReferenceReq) (domain.CellReference, error) {
	if !req.Kind.Supported() {
		return domain.CellReference{}, ErrUnsupportedShape.WithData("kind", req.Kind.String())
	}
	if len(req.Vertices) > s.maxVertices {
		return domain.CellReference{}, reject(MsgCalculateCellReference, ReasonMalformedShape).
			WithData("vertices", len(req.Vertices))
	}

	ref, ok := s.dispatcher.CalculateCellReference(req.Kind, req.Grid, domain.Shape(req.Vertices))
	if !ok {
		reason := ReasonInvalidTriangle
		switch {
		case !req.Grid.Valid():
			reason = ReasonInvalidGrid
		case len(req.Vertices) != 3:
			reason = ReasonMalformedShape
		}
		return domain.CellReference{}, reject(MsgCalculateCellReference, reason).
			WithData("vertices", len(req.Vertices)).
			WithData("grid_size", req.Grid.Size)
	}

	s.log.WithContext(ctx).Debug("cell reference inferred",
		zap.String("cell", ref.String()),
		zap.Int("grid_size", req.Grid.Size),
	)
	return ref, nil
}
