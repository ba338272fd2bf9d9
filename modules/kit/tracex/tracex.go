package tracex

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// 跨进程透传时使用的 header/metadata 键（grpc metadata 要求小写）。
const (
	HeaderTraceID = "x-trace-id"
	HeaderSpanID  = "x-span-id"
)

type ctxKey uint8

const (
	traceIDKey ctxKey = iota
	spanIDKey
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

func TraceIDFrom(ctx context.Context) (string, bool) {
	return lookup(ctx, traceIDKey)
}

func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, spanIDKey, spanID)
}

func SpanIDFrom(ctx context.Context) (string, bool) {
	return lookup(ctx, spanIDKey)
}

// lookup 空串视为不存在。
func lookup(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, _ := ctx.Value(key).(string)
	return s, s != ""
}

// NewTraceID 生成 16 字节随机 trace_id（hex）。
func NewTraceID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}

// EnsureTraceID 在 ctx 没有 trace_id 时生成一个新的；上游已透传则复用。
func EnsureTraceID(ctx context.Context) context.Context {
	if _, ok := TraceIDFrom(ctx); ok {
		return ctx
	}
	if traceID := NewTraceID(); traceID != "" {
		return WithTraceID(ctx, traceID)
	}
	return ctx
}

// Propagate 把 ctx 中已有的 trace/span 依次交给 set，用于写出站 header/metadata。
func Propagate(ctx context.Context, set func(key, value string)) {
	if traceID, ok := TraceIDFrom(ctx); ok {
		set(HeaderTraceID, traceID)
	}
	if spanID, ok := SpanIDFrom(ctx); ok {
		set(HeaderSpanID, spanID)
	}
}

// Extract 用 get 读取入站 header/metadata，把非空的 trace/span 写回 ctx。
func Extract(ctx context.Context, get func(key string) string) context.Context {
	if traceID := get(HeaderTraceID); traceID != "" {
		ctx = WithTraceID(ctx, traceID)
	}
	if spanID := get(HeaderSpanID); spanID != "" {
		ctx = WithSpanID(ctx, spanID)
	}
	return ctx
}
