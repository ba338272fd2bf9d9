package grpc

import (
	"TriGrid/modules/kit/tracex"
	"context"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryClientTraceInterceptor 把 ctx 中的 trace/span 写入出站 metadata。
func UnaryClientTraceInterceptor() gogrpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *gogrpc.ClientConn, invoker gogrpc.UnaryInvoker, opts ...gogrpc.CallOption) error {
		return invoker(injectTraceToOutgoing(ctx), method, req, reply, cc, opts...)
	}
}

// UnaryServerTraceInterceptor 从入站 metadata 恢复 trace/span；没有 trace_id 时生成一个，
// 并通过响应 header 回传给调用方用于对账。
func UnaryServerTraceInterceptor() gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		ctx = tracex.EnsureTraceID(extractTraceFromIncoming(ctx))
		if traceID, ok := tracex.TraceIDFrom(ctx); ok {
			_ = gogrpc.SetHeader(ctx, metadata.Pairs(tracex.HeaderTraceID, traceID))
		}
		return handler(ctx, req)
	}
}

func injectTraceToOutgoing(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	var kv []string
	tracex.Propagate(ctx, func(k, v string) { kv = append(kv, k, v) })
	if len(kv) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}

func extractTraceFromIncoming(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	return tracex.Extract(ctx, func(key string) string {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
		return ""
	})
}
