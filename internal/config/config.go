// Package config 提供 loccount 的配置管理。
// 配置来源优先级：命令行参数 > 环境变量(LOCCOUNT_*) > 默认值，不读取配置文件。
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix 是环境变量前缀，例如 LOCCOUNT_WORKERS、LOCCOUNT_LOG_LEVEL。
const EnvPrefix = "LOCCOUNT"

// Config 应用配置结构
type Config struct {
	Scan ScanConfig `mapstructure:"scan"`
	Log  LogConfig  `mapstructure:"log"`
	App  AppConfig  `mapstructure:"app"`
}

// ScanConfig 扫描配置
type ScanConfig struct {
	Workers int `mapstructure:"workers"` // 并发 worker 数量，<=0 时使用 CPU 核数
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`       // trace, debug, info, warn, error
	JSON       bool   `mapstructure:"json"`        // 控制台是否输出 JSON
	Mode       string `mapstructure:"mode"`        // console, file, both
	FilePath   string `mapstructure:"file_path"`   // mode 为 file 或 both 时使用
	MaxSize    int    `mapstructure:"max_size"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `mapstructure:"max_backups"` // 保留的备份文件数量
	MaxAge     int    `mapstructure:"max_age"`     // 文件保留天数
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"` // 安静模式，禁止所有日志输出
}

// flagKeys 记录命令行参数名与配置键的对应关系。
var flagKeys = map[string]string{
	"workers":   "scan.workers",
	"log-level": "log.level",
	"verbose":   "app.verbose",
	"quiet":     "app.quiet",
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("scan.workers", runtime.NumCPU())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
	v.SetDefault("log.mode", "console")
	v.SetDefault("log.file_path", ".loccount/loccount.log")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("app.name", "loccount")
	v.SetDefault("app.verbose", false)
	v.SetDefault("app.quiet", false)
}

// Load 组合默认值、环境变量与命令行参数得到最终配置。
// flags 可以为 nil；只有被显式设置的参数才会覆盖环境变量。
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.App.Quiet && cfg.App.Verbose {
		return nil, fmt.Errorf("quiet and verbose cannot be enabled together")
	}
	if cfg.Scan.Workers <= 0 {
		cfg.Scan.Workers = max(runtime.NumCPU(), 1)
	}

	return &cfg, nil
}
