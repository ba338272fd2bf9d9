package errx

// 这里定义“跨模块统一”的系统类错误码。
//
// 约束：
// - 系统码只用于技术类错误归一化（告警、观测、排障）
// - 业务域错误码（例如 SHAPE_REJECTED）由各业务包自行定义，不在 kit 里集中

const (
	// CodeInternal 表示服务内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用/服务不可用。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 表示请求超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeReqParamError 表示请求参数无法解析。
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
)

// 统一系统类哨兵错误（允许 WithData/WithCause 派生新对象）。
var (
	ErrInternal    = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout     = NewSys(CodeTimeout, "请求超时")
	ErrReqParamERR = NewSys(CodeReqParamError, "请求参数错误")
)
