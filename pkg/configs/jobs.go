package configs

import "github.com/spf13/viper"

const (
	// DefaultOrphanSweepCron 默认每天 03:20 扫描一次孤儿对象.
	DefaultOrphanSweepCron = "20 3 * * *"
)

// JobsConfig 定时任务配置.
type JobsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// OrphanSweepCron 孤儿对象扫描的 cron 表达式。级联删除目录不会清理
	// 后代文件在对象存储中的字节，该任务负责统计并上报这部分泄漏。
	OrphanSweepCron string `mapstructure:"orphan_sweep_cron"`
}

func (c *JobsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("jobs.enabled", false)
	v.SetDefault("jobs.orphan_sweep_cron", DefaultOrphanSweepCron)
}
