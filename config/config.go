// Package config 读取工具的默认配置：展平容差、递归深度、配色与目录监听
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/onepoint10/dxf-inspector/measure"
)

const (
	// DefaultConfigFile 默认配置文件名（不含扩展名）
	DefaultConfigFile = ".dxf-inspector"
	// DefaultConfigType 默认配置文件格式
	DefaultConfigType = "yaml"
)

// Config 工具的全部可配置项
type Config struct {
	Tolerance float64     `mapstructure:"tolerance"` // 曲线展平最大偏差(mm)
	MaxDepth  int         `mapstructure:"max_depth"` // 展平递归深度上限
	NoColor   bool        `mapstructure:"no_color"`  // 关闭彩色输出
	Watch     WatchConfig `mapstructure:"watch"`
}

// WatchConfig 目录监听配置
type WatchConfig struct {
	Extensions []string `mapstructure:"extensions"` // 监听的文件扩展名
}

// Load 按「默认值 < 配置文件 < 环境变量」的优先级加载配置
// 配置文件不存在不算错误
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("tolerance", measure.DefaultTolerance)
	v.SetDefault("max_depth", measure.DefaultMaxDepth)
	v.SetDefault("no_color", false)
	v.SetDefault("watch.extensions", []string{".dxf"})

	v.SetConfigName(DefaultConfigFile)
	v.SetConfigType(DefaultConfigType)
	v.AddConfigPath(".")

	v.SetEnvPrefix("DXF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置: %w", err)
	}

	return &cfg, nil
}

// Validate 校验配置的合法性
func (c *Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance 必须为正数, 当前 %v", c.Tolerance)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth 至少为 1, 当前 %d", c.MaxDepth)
	}

	return nil
}
