package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是跨模块复用的最小日志接口。
//
// 约束：
// - 只承载结构化字段 + ctx 透传（trace/span）
// - 业务代码依赖该接口，不直接依赖 *zap.Logger
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
}

// Nop 返回一个丢弃所有输出的 Logger，测试与默认装配时使用。
func Nop() Logger {
	return NewZapLogger(nil)
}
