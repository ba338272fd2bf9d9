package cmd

import (
	"testing"

	"TriGrid/internal/shared/logs"
	"TriGrid/internal/shared/serverconfig"

	"go.uber.org/zap"
)

func TestReadConfig(t *testing.T) {
	conf, err := serverconfig.Load("")
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if err := logs.Init("TestReadConfig", conf.Log); err != nil {
		t.Fatalf("logs.Init err=%v", err)
	}
	logs.Info("conf", zap.Any("conf", conf))

	if conf.HTTPServer.Port == 0 || conf.Shape.MaxVertices <= 0 {
		t.Fatalf("配置未生效: %+v", conf)
	}
}
