package backend

import "github.com/ceyewan/scopedmutex/xerrors"

// Kind 定义支持的后端类型
type Kind string

const (
	KindCriticalSection Kind = "critical-section"
	KindLocal           Kind = "local"
	KindSingleCore      Kind = "single-core"
	KindLockAPI         Kind = "lock-api"
)

// Config 后端选择配置
//
// 典型配置示例（YAML）：
//
//	mutex:
//	  kind: critical-section
//	  name: sensor-buffer
//	  instrument: true
type Config struct {
	// Kind 选择使用的后端，默认 critical-section
	Kind Kind `json:"kind" yaml:"kind" mapstructure:"kind"`

	// Name 锁名称，用于日志与指标标签，默认 "default"
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// AssumeSingleCore 集成方确认程序只在单核上运行
	// Kind 为 single-core 时必须为 true，该前提不会在运行时检查
	AssumeSingleCore bool `json:"assume_single_core" yaml:"assume_single_core" mapstructure:"assume_single_core"`

	// Instrument 为 true 时用 instrument.Wrap 包装后端
	Instrument bool `json:"instrument" yaml:"instrument" mapstructure:"instrument"`
}

func (c *Config) setDefaults() {
	if c == nil {
		return
	}
	if c.Kind == "" {
		c.Kind = KindCriticalSection
	}
	if c.Name == "" {
		c.Name = "default"
	}
}

func (c *Config) validate() error {
	if c == nil {
		return ErrConfigNil
	}
	switch c.Kind {
	case KindCriticalSection, KindLocal, KindLockAPI:
		return nil
	case KindSingleCore:
		if !c.AssumeSingleCore {
			return ErrSingleCoreNotAssumed
		}
		return nil
	default:
		return xerrors.Wrapf(ErrUnsupportedKind, "kind: %s", c.Kind)
	}
}
