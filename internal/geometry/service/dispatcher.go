package service

import "TriGrid/internal/geometry/domain"

// Calculator 是 ShapeDispatcher 依赖的几何计算能力，GeometryService 是默认实现。
type Calculator interface {
	ComputeTriangleVertices(grid domain.Grid, ref domain.CellReference) (domain.Shape, bool)
	InferCellReference(grid domain.Grid, t domain.Triangle) (domain.CellReference, bool)
}

var _ Calculator = (*GeometryService)(nil)

// ShapeDispatcher 按形状类别把请求路由到具体的几何计算。
// 新增形状类别时只需要在这里增加分支。
type ShapeDispatcher struct {
	calc Calculator
}

func NewShapeDispatcher(calc Calculator) *ShapeDispatcher {
	if calc == nil {
		calc = NewGeometryService()
	}
	return &ShapeDispatcher{calc: calc}
}

// CalculateCoordinates 计算引用对应的形状顶点；不支持的类别直接返回 false，不触达计算。
func (d *ShapeDispatcher) CalculateCoordinates(kind domain.ShapeKind, grid domain.Grid, ref domain.CellReference) (domain.Shape, bool) {
	switch kind {
	case domain.ShapeKindTriangle:
		return d.calc.ComputeTriangleVertices(grid, ref)
	default:
		return nil, false
	}
}

// CalculateCellReference 由顶点反推引用；三角形必须恰好 3 个顶点，按给定顺序解释。
func (d *ShapeDispatcher) CalculateCellReference(kind domain.ShapeKind, grid domain.Grid, shape domain.Shape) (domain.CellReference, bool) {
	switch kind {
	case domain.ShapeKindTriangle:
		t, ok := domain.TriangleFromShape(shape)
		if !ok {
			return domain.CellReference{}, false
		}
		return d.calc.InferCellReference(grid, t)
	default:
		return domain.CellReference{}, false
	}
}
