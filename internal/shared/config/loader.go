package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

func load[T any](configPath string, onChange func(T)) (T, error) {
	var out T
	if !fileExist(configPath) {
		return out, &NotFoundError{Path: configPath}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return out, fmt.Errorf("read config %s: %w", configPath, err)
	}
	if err := decode(v, &out); err != nil {
		return out, fmt.Errorf("decode config %s: %w", configPath, err)
	}

	if onChange != nil {
		// 每次变更解码出一个新的值交给回调，不原地修改已发布的配置。
		v.OnConfigChange(func(e fsnotify.Event) {
			var next T
			if err := decode(v, &next); err != nil {
				fmt.Fprintf(os.Stderr, "config reload %s: %v\n", e.Name, err)
				return
			}
			onChange(next)
		})
		v.WatchConfig()
	}
	return out, nil
}

// decode 使用 mapstructure 钩子把 "10s" 解析为 time.Duration、"a,b" 解析为 []string。
func decode(v *viper.Viper, out any) error {
	return v.Unmarshal(out, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
