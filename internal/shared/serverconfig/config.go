package serverconfig

import (
	"fmt"
	"sync/atomic"
	"time"

	"TriGrid/internal/shared/config"
	"TriGrid/internal/shared/logs"

	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

// Load 读取配置并发布为当前配置；文件变更时重新发布并同步日志级别。
func Load(cfgName string) (Config, error) {
	c, err := config.Load(cfgName, func(next Config) {
		applyDefaults(&next)
		current.Store(&next)
		logs.SetLevel(next.Log.Level)
		logs.Info("配置文件变更", zap.String("log_level", next.Log.Level))
	})
	if err != nil {
		return Config{}, err
	}
	applyDefaults(&c)
	current.Store(&c)
	return c, nil
}

// Conf 返回当前生效的配置；未加载时返回默认值。
func Conf() Config {
	if c := current.Load(); c != nil {
		return *c
	}
	var c Config
	applyDefaults(&c)
	return c
}

func applyDefaults(c *Config) {
	if c.HTTPServer.Port == 0 {
		c.HTTPServer.Port = 8080
	}
	if c.HTTPServer.ShutdownTimeout <= 0 {
		c.HTTPServer.ShutdownTimeout = 10 * time.Second
	}
	if c.GRPCServer.Port == 0 {
		c.GRPCServer.Port = 9090
	}
	if c.Shape.MaxVertices <= 0 {
		c.Shape.MaxVertices = 16
	}
	if c.Shape.MaxRequestBytes <= 0 {
		c.Shape.MaxRequestBytes = requestBytesFor(c.Shape.MaxVertices)
	}
}

// requestBytesFor 给固定字段留 1KiB，每个顶点 {"x":..,"y":..} 按 128 字节估算。
func requestBytesFor(maxVertices int) int64 {
	return 1024 + 128*int64(maxVertices)
}

func hostOrDefault(host string) string {
	if host == "" {
		return "0.0.0.0"
	}
	return host
}

func (c HTTPServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", hostOrDefault(c.Host), c.Port)
}

func (c GRPCServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", hostOrDefault(c.Host), c.Port)
}
