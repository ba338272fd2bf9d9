package logx

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	maxCauseDepth  = 20
	maxStackFrames = 32
)

// ErrorLog 是 BuildErrorLog 的输出，字段都可能为空。
type ErrorLog struct {
	Error      string
	Code       string
	Msg        string
	Reason     string
	Data       map[string]any
	CauseChain []string
	Origin     string
	Stack      string
}

// BuildErrorLog 沿 Unwrap 链走一遍：语义字段取链上第一个提供者的值，同时收集 cause 链与发生处栈。
// 只认方法集（CodeText/Msg/Data/Reason/Stack），不依赖具体错误类型。
func BuildErrorLog(err error) ErrorLog {
	if err == nil {
		return ErrorLog{}
	}

	out := ErrorLog{Error: err.Error()}
	var stack []uintptr
	for cur, depth := err, 0; cur != nil && depth <= maxCauseDepth; cur, depth = errors.Unwrap(cur), depth+1 {
		if depth > 0 {
			out.CauseChain = append(out.CauseChain, fmt.Sprintf("%T: %v", cur, cur))
		}
		if p, ok := cur.(interface{ CodeText() string }); ok && out.Code == "" {
			out.Code = p.CodeText()
		}
		if p, ok := cur.(interface{ Msg() string }); ok && out.Msg == "" {
			out.Msg = p.Msg()
		}
		if p, ok := cur.(interface{ Data() map[string]any }); ok && out.Data == nil {
			out.Data = p.Data()
		}
		if p, ok := cur.(interface{ Reason() string }); ok && out.Reason == "" {
			out.Reason = p.Reason()
		}
		if p, ok := cur.(interface{ Stack() []uintptr }); ok && len(stack) == 0 {
			stack = p.Stack()
		}
	}

	frames := stackFrames(stack, maxStackFrames)
	if len(frames) != 0 {
		out.Origin = frames[0]
		out.Stack = strings.Join(frames, "\n")
	}
	return out
}

func stackFrames(pcs []uintptr, limit int) []string {
	if len(pcs) == 0 {
		return nil
	}
	iter := runtime.CallersFrames(pcs)
	out := make([]string, 0, min(len(pcs), limit))
	for len(out) < limit {
		f, more := iter.Next()
		if f.Function == "" && f.File == "" {
			break
		}
		out = append(out, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		if !more {
			break
		}
	}
	return out
}
