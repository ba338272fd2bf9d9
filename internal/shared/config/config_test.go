package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConf struct {
	Server struct {
		Port    int           `mapstructure:"port"`
		Timeout time.Duration `mapstructure:"timeout"`
		Origins []string      `mapstructure:"origins"`
	} `mapstructure:"server"`
	Log LogConfig `mapstructure:"log"`
}

func writeConf(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "configs", "conf.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir err=%v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write err=%v", err)
	}
	return path
}

const confBody = `
server:
  port: 8080
  timeout: 3s
  origins: "http://a.com,http://b.com"
log:
  level: debug
  max_size: 10
`

func TestLoad_解析duration与逗号列表(t *testing.T) {
	path := writeConf(t, t.TempDir(), confBody)

	c, err := Load[testConf](path, nil)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if c.Server.Port != 8080 || c.Server.Timeout != 3*time.Second {
		t.Fatalf("解析结果不符合预期: %+v", c.Server)
	}
	if len(c.Server.Origins) != 2 || c.Server.Origins[1] != "http://b.com" {
		t.Fatalf("期望逗号分隔解析为 2 个 origin, got=%v", c.Server.Origins)
	}
	if c.Log.Level != "debug" || c.Log.MaxSize != 10 {
		t.Fatalf("日志配置不符合预期: %+v", c.Log)
	}
}

func TestLoad_环境变量覆盖(t *testing.T) {
	path := writeConf(t, t.TempDir(), confBody)
	t.Setenv("TRIGRID_SERVER_PORT", "9090")

	c, err := Load[testConf](path, nil)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if c.Server.Port != 9090 {
		t.Fatalf("期望环境变量覆盖端口为 9090, got=%d", c.Server.Port)
	}
}

func TestLoad_向上查找默认路径(t *testing.T) {
	root := t.TempDir()
	writeConf(t, root, confBody)
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir err=%v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd err=%v", err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir err=%v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load[testConf]("", nil)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if c.Server.Port != 8080 {
		t.Fatalf("期望从上级目录找到配置, got=%+v", c.Server)
	}
}

func TestLoad_文件不存在(t *testing.T) {
	_, err := Load[testConf](filepath.Join(t.TempDir(), "missing.yml"), nil)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("期望 NotFoundError, got=%v", err)
	}
}
