package clog

import (
	"fmt"
	"strings"
)

const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config 日志配置结构
//
// 示例（YAML）：
//
//	log:
//	  level: debug
//	  format: json
//	  output: stderr
type Config struct {
	Level     string `json:"level" yaml:"level" mapstructure:"level"`    // debug|info|warn|error
	Format    string `json:"format" yaml:"format" mapstructure:"format"` // json|console
	Output    string `json:"output" yaml:"output" mapstructure:"output"` // stdout|stderr|<file path>
	AddSource bool   `json:"addSource" yaml:"addSource" mapstructure:"add_source"`
}

// NewDevDefaultConfig 开发环境默认配置：debug 级别，console 格式，输出到 stdout
func NewDevDefaultConfig() *Config {
	return &Config{
		Level:     "debug",
		Format:    "console",
		Output:    "stdout",
		AddSource: true,
	}
}

// validate 为空值设置默认值并校验
func (c *Config) validate() error {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}

	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	format := strings.ToLower(c.Format)
	if format != "json" && format != "console" {
		return fmt.Errorf("invalid format: %s, must be json or console", c.Format)
	}
	return nil
}
