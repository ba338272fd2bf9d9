package domain

// Shape 是有序顶点序列，顺序有语义（三角形：左上、外侧、右下）。
type Shape []Coordinate

// Triangle 是 Shape 的三顶点特化：
// 顶点 0 = 左上，顶点 1 = 外侧（直角顶点），顶点 2 = 右下。
type Triangle struct {
	vertices [3]Coordinate
}

func NewTriangle(topLeft, outer, bottomRight Coordinate) Triangle {
	return Triangle{vertices: [3]Coordinate{topLeft, outer, bottomRight}}
}

// TriangleFromShape 按给定顺序取 3 个顶点；顶点数不是 3 时返回 false。
func TriangleFromShape(s Shape) (Triangle, bool) {
	if len(s) != 3 {
		return Triangle{}, false
	}
	return NewTriangle(s[0], s[1], s[2]), true
}

func (t Triangle) TopLeftVertex() Coordinate     { return t.vertices[0] }
func (t Triangle) OuterVertex() Coordinate       { return t.vertices[1] }
func (t Triangle) BottomRightVertex() Coordinate { return t.vertices[2] }

// Shape 返回同一顺序的顶点副本。
func (t Triangle) Shape() Shape {
	return Shape{t.vertices[0], t.vertices[1], t.vertices[2]}
}
