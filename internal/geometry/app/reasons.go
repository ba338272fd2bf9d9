package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 业务拒绝 reason，由接口层统一映射为客户端 code。
	ReasonUnsupportedKind      = NewReason("SHAPE_UNSUPPORTED_KIND", "只支持三角形")
	ReasonInvalidGrid          = NewReason("SHAPE_INVALID_GRID", "网格尺寸必须大于 0")
	ReasonInvalidCellReference = NewReason("SHAPE_INVALID_CELL_REFERENCE", "单元格引用不合法")
	ReasonMalformedShape       = NewReason("SHAPE_MALFORMED", "顶点数量不符合形状要求")
	ReasonInvalidTriangle      = NewReason("SHAPE_INVALID_TRIANGLE", "顶点无法构成网格内的三角形")
)

var reasonsByCode = map[string]Reason{
	ReasonUnsupportedKind.Code:      ReasonUnsupportedKind,
	ReasonInvalidGrid.Code:          ReasonInvalidGrid,
	ReasonInvalidCellReference.Code: ReasonInvalidCellReference,
	ReasonMalformedShape.Code:       ReasonMalformedShape,
	ReasonInvalidTriangle.Code:      ReasonInvalidTriangle,
}

// ReasonMessage 返回 reason code 对应的内部说明，只用于日志；未知 code 返回空串。
func ReasonMessage(code string) string {
	return reasonsByCode[code].Message
}
