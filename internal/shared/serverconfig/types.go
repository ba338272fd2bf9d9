package serverconfig

import (
	"time"

	"TriGrid/internal/shared/config"
)

type Config struct {
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	GRPCServer GRPCServerConfig `yaml:"grpcserver" mapstructure:"grpcserver"`
	Log        config.LogConfig `yaml:"log" mapstructure:"log"`
	Shape      ShapeConfig      `yaml:"shape" mapstructure:"shape"`
}

type HTTPServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	EnableWS        bool          `yaml:"enable_ws" mapstructure:"enable_ws"`
}

type GRPCServerConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Host    string `yaml:"host" mapstructure:"host"`
	Port    int    `yaml:"port" mapstructure:"port"`
}

type ShapeConfig struct {
	MaxVertices     int   `yaml:"max_vertices" mapstructure:"max_vertices"`
	// MaxRequestBytes 同时限制 HTTP 请求体与 ws 单帧；未配置时按 max_vertices 推算。
	MaxRequestBytes int64 `yaml:"max_request_bytes" mapstructure:"max_request_bytes"`
}
