package domain

// Coordinate 是网格坐标系中的整数点，值类型，按字段比较相等。
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Grid 只携带一个配置：正方形单元格的边长。
// Size <= 0 的 Grid 可以构造，但所有几何计算都会返回“无结果”。
type Grid struct {
	Size int `json:"size"`
}

func NewGrid(size int) Grid {
	return Grid{Size: size}
}

func (g Grid) Valid() bool {
	return g.Size > 0
}
