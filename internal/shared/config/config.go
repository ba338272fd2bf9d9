package config

import (
	"os"
	"path/filepath"
)

const (
	defaultConfigRelPath = "configs/conf.yml"
	envPrefix            = "TRIGRID"
)

// Load 读取配置文件并解码为 T；onChange 非空时监听文件变更，每次变更解码出新的 T 回调。
//
// 路径约定：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
//
// 环境变量 TRIGRID_<SECTION>_<KEY> 覆盖文件中的同名配置，例如 TRIGRID_HTTPSERVER_PORT。
func Load[T any](cfgName string, onChange func(T)) (T, error) {
	path, err := resolvePath(cfgName)
	if err != nil {
		var zero T
		return zero, err
	}
	return load(path, onChange)
}

func resolvePath(cfgName string) (string, error) {
	if cfgName != "" {
		if filepath.IsAbs(cfgName) {
			return cfgName, nil
		}
		curDir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(curDir, cfgName), nil
	}

	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigUpward(curDir)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &NotFoundError{Path: defaultConfigRelPath, From: startDir}
		}
		dir = parent
	}
}

// NotFoundError 表示配置文件不存在。
type NotFoundError struct {
	Path string
	From string
}

func (e *NotFoundError) Error() string {
	if e.From == "" {
		return "config file not exist, configPath=" + e.Path
	}
	return "config file not exist, searched " + e.Path + " from: " + e.From
}
