// Package config 为 scopedmutex 的集成方提供运行时配置加载。
// 基于 Viper 实现，用于加载 backend.Config、clog.Config 与 metrics.Config。
//
// 特性：
//   - 多源配置加载：YAML/JSON 文件、环境变量、.env 文件
//   - 配置优先级：环境变量 > .env > 环境特定配置 > 基础配置
//   - 热更新通知：监听配置文件变化并推送到订阅者
//
// 构建期选项（展开保护、调试格式化、最小运行时）由构建标签决定，不在此加载。
//
// 基本使用：
//
//	loader := config.MustLoad(
//		config.WithConfigName("scopedmutex"),
//		config.WithConfigPaths("./config"),
//	)
//
//	var cfg backend.Config
//	if err := loader.UnmarshalKey("mutex", &cfg); err != nil {
//		panic(err)
//	}
//
//	// 监听配置变化
//	ch, _ := loader.Watch(context.Background(), "mutex.instrument")
//	for event := range ch {
//		fmt.Printf("配置变化: %s = %v\n", event.Key, event.Value)
//	}
package config

import (
	"context"
	"time"
)

// Loader 定义配置加载器的核心行为
type Loader interface {
	// Load 加载配置并开始监听文件变化
	Load(ctx context.Context) error

	// Get 获取原始配置值
	Get(key string) any

	// Unmarshal 将整个配置反序列化到结构体
	Unmarshal(v any) error

	// UnmarshalKey 将指定 Key 的配置反序列化到结构体
	UnmarshalKey(key string, v any) error

	// Watch 监听配置变化，ctx 取消后通道关闭
	Watch(ctx context.Context, key string) (<-chan Event, error)

	// Validate 验证当前配置的有效性
	Validate() error
}

// Event 配置变更事件
type Event struct {
	Key       string
	Value     any
	OldValue  any
	Source    string // "file"
	Timestamp time.Time
}
