package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 客户端协议码：0 成功；1~499 客户端可处理的拒绝；>=500 服务端错误（访问日志按此分级）。
const (
	OK               = 0
	InvalidParam     = 1
	UnsupportedShape = 100
	CalculateFailed  = 101
	SystemError      = 500
)
