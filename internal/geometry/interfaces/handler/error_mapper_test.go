package handler

import (
	"TriGrid/internal/geometry/app"
	"TriGrid/internal/shared/transport"
	"TriGrid/modules/kit/errx"
	"TriGrid/modules/kit/logx"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleError_业务拒绝(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logx.NewZapLogger(zap.New(core))

	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{app.ErrUnsupportedShape, transport.UnsupportedShape, app.MsgUnsupportedShape},
		{app.ErrShapeRejected.WithMsg("m1").WithReason(app.ReasonInvalidGrid), transport.CalculateFailed, "m1"},
		{app.ErrShapeRejected.WithMsg("m2").WithReason(app.ReasonInvalidTriangle), transport.CalculateFailed, "m2"},
		{app.ErrShapeRejected.WithMsg("m3").WithReason(app.ReasonMalformedShape), transport.CalculateFailed, "m3"},
	}
	for _, tt := range tests {
		ctx := transport.NewContext("POST /shape/coordinates", "http")
		code, msg := HandleError(ctx, log, tt.err)
		if code != tt.code || msg != tt.msg {
			t.Fatalf("err=%v: got code=%d msg=%q", tt.err, code, msg)
		}
		if got := transport.FromContext(ctx).ErrorReason; got != app.GetErrorReasonCode(tt.err) {
			t.Fatalf("期望 access log 记录 reason, got=%q", got)
		}
	}

	if logs.FilterField(zap.String("err_type", "biz")).Len() != len(tests) {
		t.Fatalf("期望每个拒绝各记录一条 biz 日志, got=%d", logs.Len())
	}
	if logs.FilterField(zap.String("reason_detail", app.ReasonInvalidGrid.Message)).Len() != 1 {
		t.Fatalf("期望 biz 日志带上 reason 的内部说明, got=%v", logs.All())
	}
}

func TestHandleError_系统错误(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logx.NewZapLogger(zap.New(core))
	ctx := transport.NewContext("WS shape.coordinates", "ws")

	err := app.ErrInternalServer.WithCause(errors.New("boom"))
	code, msg := HandleError(ctx, log, err)
	if code != transport.SystemError || msg != MsgSystemBusy {
		t.Fatalf("unexpected code=%d msg=%q", code, msg)
	}
	entries := logs.FilterField(zap.String("err_type", "sys")).All()
	if len(entries) != 1 || entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("期望一条 ERROR 级 sys 日志, got=%v", logs.All())
	}
	if entries[0].ContextMap()["error_code"] != string(errx.CodeInternal) {
		t.Fatalf("unexpected error_code: %v", entries[0].ContextMap())
	}
}
