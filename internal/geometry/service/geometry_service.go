package service

import (
	"math"

	"TriGrid/internal/geometry/domain"
)

// GeometryService 在“单元格引用”和“三角形顶点”之间做双向换算。
//
// 网格布局：每个正方形单元格被对角线切成两个三角形，占两列。
// 奇数列是左下半（外侧顶点在左下角），偶数列是右上半（外侧顶点在右上角）。
// 所有方法都是纯函数，可并发调用。
type GeometryService struct{}

func NewGeometryService() *GeometryService {
	return &GeometryService{}
}

// ComputeTriangleVertices 计算引用所在三角形的顶点，顺序为 [左上, 外侧, 右下]。
func (s *GeometryService) ComputeTriangleVertices(grid domain.Grid, ref domain.CellReference) (domain.Shape, bool) {
	if !grid.Valid() {
		return nil, false
	}
	row, col := ref.NumericRow(), ref.Column()
	if row <= 0 || col <= 0 {
		return nil, false
	}

	size := grid.Size
	originX := floorDiv(col-1, 2) * size
	originY := (row - 1) * size

	topLeft := domain.NewCoordinate(originX, originY)
	bottomRight := domain.NewCoordinate(originX+size, originY+size)

	outer := domain.NewCoordinate(originX+size, originY)
	if col%2 == 1 {
		outer = domain.NewCoordinate(originX, originY+size)
	}
	return domain.Shape{topLeft, outer, bottomRight}, true
}

// InferCellReference 由三角形顶点反推单元格引用。
// 三角形必须先通过 IsValidTriangle，结果再经 NewCellReference 做行列范围校验。
func (s *GeometryService) InferCellReference(grid domain.Grid, t domain.Triangle) (domain.CellReference, bool) {
	if !grid.Valid() {
		return domain.CellReference{}, false
	}
	topLeft, outer := t.TopLeftVertex(), t.OuterVertex()
	if !IsValidTriangle(grid.Size, topLeft, outer, t.BottomRightVertex()) {
		return domain.CellReference{}, false
	}

	row := floorDiv(topLeft.Y, grid.Size) + 1
	column := floorDiv(topLeft.X, grid.Size)*2 + 1
	if outer.X > topLeft.X {
		column++
	}
	return domain.NewCellReference(row, column)
}

// IsValidTriangle 判断三点是否构成“两条边等于 gridSize、第三边非零且不等于 gridSize”的三角形。
//
// 边长用 math.Sqrt 计算并做精确 == 比较，不引入误差容忍：
// 轴对齐的整数边长开方后是精确值，改成平方比较或加 epsilon 都会改变现有判定结果。
func IsValidTriangle(gridSize int, a, b, c domain.Coordinate) bool {
	ab, bc, ca := distance(a, b), distance(b, c), distance(c, a)
	size := float64(gridSize)

	return legsWithHypotenuse(ab, bc, ca, size) ||
		legsWithHypotenuse(bc, ca, ab, size) ||
		legsWithHypotenuse(ca, ab, bc, size)
}

func legsWithHypotenuse(leg1, leg2, third, size float64) bool {
	return leg1 == size && leg2 == size && third != 0 && third != size
}

func distance(p, q domain.Coordinate) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// floorDiv 是向下取整的整数除法（Go 的 / 向零截断）。
// 有意不沿用旧实现的截断除法：负坐标落在其所在单元格，随后被行列范围校验拒绝，而不是被并入 A 行/第 1 列。
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
