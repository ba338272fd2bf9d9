package errx

import (
	"errors"
	"fmt"
	"testing"
)

type testReason string

func (r testReason) ReasonCode() string { return string(r) }

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("SHAPE_REJECTED", "x").WithData("k", "v").WithCause(errors.New("cause1"))
	e2 := NewBiz("SHAPE_REJECTED", "x2").WithData("k2", "v2").WithCause(errors.New("cause2"))
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true（只按 code 判断语义），e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, ErrInternal) {
		t.Fatalf("期望不同 code 不匹配，e1=%v", e1)
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("bad token")
	err := NewBiz("SHAPE_REJECTED", "参数不合法").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
	if !err.IsBiz() {
		t.Fatalf("期望 IsBiz()==true")
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	cause := errors.New("io timeout")
	sys := ErrUnavailable.WithCause(cause)
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈（发生/转换处），got=%v", got)
	}

	// 再包一层系统错误：如果下层已有栈，上层不应重复捕获
	sys2 := ErrInternal.WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望上层系统错误不重复捕获栈（cause 链里已有栈），got=%v", got)
	}
}

func TestError_WithReason_写入data(t *testing.T) {
	err := NewBiz("SHAPE_REJECTED", "").WithReason(testReason("SHAPE_MALFORMED"))
	if got := err.Reason(); got != "SHAPE_MALFORMED" {
		t.Fatalf("期望 Reason()==SHAPE_MALFORMED, got=%q", got)
	}
	wrapped := fmt.Errorf("wrap: %w", err)
	var e *Error
	if !errors.As(wrapped, &e) || e.Reason() != "SHAPE_MALFORMED" {
		t.Fatalf("期望 errors.As 能取回 reason, err=%v", wrapped)
	}
}

func TestError_Data_防止外部map污染(t *testing.T) {
	m := map[string]any{"k": "v"}
	err := NewBiz("SHAPE_REJECTED", "").WithDataMap(m)
	m["k"] = "mutated"
	if got := err.Data()["k"]; got != "v" {
		t.Fatalf("期望构造时复制 data，避免外部后续修改影响错误上下文；got=%v", got)
	}
}
