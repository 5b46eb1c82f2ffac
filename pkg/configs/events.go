package configs

import "github.com/spf13/viper"

// EventsConfig 控制目录变更事件发布的开关（全局与分领域）。
type EventsConfig struct {
	Enabled     bool                 `mapstructure:"enabled"` // 总开关
	Materials   ContentEventsConfig  `mapstructure:"materials"`
	Sourcecasts ContentEventsConfig  `mapstructure:"sourcecasts"`
	Categories  CategoryEventsConfig `mapstructure:"categories"`
	Groups      GroupEventsConfig    `mapstructure:"groups"`
}

// ContentEventsConfig 针对上传内容（material/sourcecast）的事件开关。
type ContentEventsConfig struct {
	Stored  bool `mapstructure:"stored"`
	Deleted bool `mapstructure:"deleted"`
}

// CategoryEventsConfig 针对目录树的事件开关。
type CategoryEventsConfig struct {
	Created bool `mapstructure:"created"`
	Deleted bool `mapstructure:"deleted"`
}

// GroupEventsConfig 针对讨论组的事件开关。
type GroupEventsConfig struct {
	Upserted bool `mapstructure:"upserted"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统（MQ 未启用时发布自动降级为 no-op）
	v.SetDefault("events.enabled", true)

	v.SetDefault("events.materials.stored", true)
	v.SetDefault("events.materials.deleted", true)
	v.SetDefault("events.sourcecasts.stored", true)
	v.SetDefault("events.sourcecasts.deleted", true)
	v.SetDefault("events.categories.created", true)
	v.SetDefault("events.categories.deleted", true)

	// 组的 upsert 相对高频且幂等，默认关闭，按需开启
	v.SetDefault("events.groups.upserted", false)
}
