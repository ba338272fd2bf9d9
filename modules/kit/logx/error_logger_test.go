package logx

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"TriGrid/modules/kit/errx"
	"TriGrid/modules/kit/tracex"
)

func newObserved() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestReportAccess_按biz_code分级(t *testing.T) {
	cases := []struct {
		code int
		want zapcore.Level
	}{
		{0, zapcore.InfoLevel},
		{1001, zapcore.ErrorLevel},
		{400, zapcore.WarnLevel},
	}
	for _, c := range cases {
		l, logs := newObserved()
		ReportAccessWithLoggerContext(context.Background(), l, "POST /shape/coordinates", c.code)
		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("期望写入 1 条访问日志, got=%d", len(entries))
		}
		if entries[0].Level != c.want {
			t.Fatalf("biz_code=%d 期望级别 %v, got=%v", c.code, c.want, entries[0].Level)
		}
	}
}

func TestReportBiz_带reason与trace(t *testing.T) {
	l, logs := newObserved()
	ctx := tracex.WithTraceID(context.Background(), "t-1")
	ReportBizWithLoggerContext(ctx, l, NewBizLog("shape reject", "SHAPE_MALFORMED", "bad"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条日志, got=%d", len(entries))
	}
	if got := entries[0].Message; got != "shape reject, reason:SHAPE_MALFORMED, msg:bad" {
		t.Fatalf("消息拼接不符合预期: %q", got)
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != "t-1" || fields["err_type"] != "biz" {
		t.Fatalf("期望带 trace_id 与 err_type=biz, got=%v", fields)
	}
}

func TestReportSysError_nil错误不输出(t *testing.T) {
	l, logs := newObserved()
	ReportSysErrorWithLoggerContext(context.Background(), l, NewSysLog("x", nil))
	if logs.Len() != 0 {
		t.Fatalf("期望 nil 错误不输出日志, got=%d", logs.Len())
	}

	ReportSysErrorWithLoggerContext(context.Background(), l, NewSysLog("x", errx.ErrInternal))
	if logs.Len() != 1 || logs.All()[0].Level != zapcore.ErrorLevel {
		t.Fatalf("期望输出 1 条 ERROR 日志, got=%v", logs.All())
	}
}
