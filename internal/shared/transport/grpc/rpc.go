package grpc

import (
	"TriGrid/internal/shared/transport"
	"TriGrid/modules/kit/logx"
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Registrar 由业务模块实现，把自己的 grpc service 注册到 server 上。
type Registrar interface {
	GrpcRegister(s grpc.ServiceRegistrar)
}

// NewServer 创建带 trace 透传与访问日志的 grpc server。
func NewServer(log logx.Logger, opts ...grpc.ServerOption) *grpc.Server {
	base := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			UnaryServerTraceInterceptor(),
			UnaryServerAccessLogInterceptor(log),
		),
	}
	return grpc.NewServer(append(base, opts...)...)
}

// RegisterHealth 注册标准 grpc 健康检查服务，整体状态初始为 SERVING。
func RegisterHealth(s grpc.ServiceRegistrar) *health.Server {
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return hs
}

// Dial 建立不带 TLS 的 grpc 连接，客户端自动注入 trace/span。
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(UnaryClientTraceInterceptor()),
	}
	conn, err := grpc.NewClient(target, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s failed: %w", target, err)
	}
	return conn, nil
}

// UnaryServerAccessLogInterceptor 为每个 unary 调用写一条访问日志。
// handler 返回 nil 错误时记为成功；失败时沿用 handler 通过 transport.SetBizCode 设置的业务码。
func UnaryServerAccessLogInterceptor(log logx.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = logx.Nop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = transport.NewContextWithParent(ctx, "GRPC "+info.FullMethod, "grpc")
		defer transport.WriteAccessLog(ctx, log)

		resp, err := handler(ctx, req)
		if err == nil {
			transport.SetBizCode(ctx, transport.BizCode(transport.OK))
		}
		return resp, err
	}
}
