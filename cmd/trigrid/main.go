package main

import (
	"TriGrid/internal/geometry/app"
	"TriGrid/internal/geometry/interfaces"
	"TriGrid/internal/geometry/service"
	"TriGrid/internal/shared/logs"
	"TriGrid/internal/shared/serverconfig"
	transportgrpc "TriGrid/internal/shared/transport/grpc"
	transporthttp "TriGrid/internal/shared/transport/http"
	"TriGrid/internal/shared/transport/ws"
	"TriGrid/modules/kit/logx"
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

func main() {
	cfgName := pflag.StringP("config", "c", "", "配置文件路径，默认向上查找 configs/conf.yml")
	pflag.Parse()

	conf, err := serverconfig.Load(*cfgName)
	if err != nil {
		panic(err)
	}
	if err := logs.Init("trigrid", conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", conf))

	if !conf.Log.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	baseLogger := logx.NewZapLogger(logs.Logger())
	shapeService := app.NewShapeService(
		service.NewShapeDispatcher(service.NewGeometryService()),
		baseLogger,
		app.Options{MaxVertices: conf.Shape.MaxVertices},
	)
	shapeModule := interfaces.New(shapeService, baseLogger)

	engine := gin.New()
	engine.Use(gin.Recovery())
	httpServer := transporthttp.NewHttpServer(conf.HTTPServer.Addr(), engine, baseLogger, transporthttp.Options{
		AllowedOrigins: conf.HTTPServer.AllowedOrigins,
		ReadTimeout:    conf.HTTPServer.ReadTimeout,
		WriteTimeout:   conf.HTTPServer.WriteTimeout,
		MaxBodyBytes:   conf.Shape.MaxRequestBytes,
	})
	httpServer.Register(shapeModule)

	var wsServer *ws.Server
	if conf.HTTPServer.EnableWS {
		wsRouter := ws.NewRouter(baseLogger)
		wsRouter.Register(shapeModule)
		wsServer = ws.NewServer(wsRouter, baseLogger, ws.Options{
			AllowedOrigins: conf.HTTPServer.AllowedOrigins,
			ReadLimit:      conf.Shape.MaxRequestBytes,
		})
		httpServer.Engine().GET("/ws", gin.WrapH(wsServer))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		logs.Info("http server started", zap.String("addr", conf.HTTPServer.Addr()))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("http server start failed: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	var healthServer *health.Server
	if conf.GRPCServer.Enabled {
		server := transportgrpc.NewServer(baseLogger)
		shapeModule.GrpcRegister(server)
		healthServer = transportgrpc.RegisterHealth(server)

		lis, err := net.Listen("tcp", conf.GRPCServer.Addr())
		if err != nil {
			logs.Fatal("listen grpc failed", zap.Error(err))
		}
		go func() {
			logs.Info("grpc server started", zap.String("addr", conf.GRPCServer.Addr()))
			if err := server.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc serve failed: %w", err)
			}
		}()
		grpcServer = server
	}

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		logs.Error("服务异常退出", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logs.Error("http server shutdown failed", zap.Error(err))
	}
	if wsServer != nil {
		wsServer.Shutdown()
	}
	if grpcServer != nil {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}
}
