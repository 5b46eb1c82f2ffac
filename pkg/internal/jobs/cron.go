// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"

	ctxPkg "github.com/chrisgzf/cadet/pkg/context"
	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/service"
	"github.com/chrisgzf/cadet/pkg/internal/storage"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/metrics"
	"github.com/chrisgzf/cadet/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 孤儿对象扫描：级联删除文件夹只清理目录行，后代文件在内容存储中的
//     字节会残留。该任务统计残留对象并上报 catalog_orphan_objects 指标。
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager, cronExpr string) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于任务使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobOrphanSweep, cronExpr, func(ctx context.Context) {
		runOrphanSweep(ctx, mgr)
	}, baseCtx)
}

// runOrphanSweep 对比内容存储与目录行，统计无目录行引用的残留对象。
// 只上报不删除：残留对象可能来自尚未提交的上传，删除需人工确认。
func runOrphanSweep(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobOrphanSweep).Logger()

	if mgr.GetDBClient() == nil || mgr.GetS3Client() == nil {
		l.Error().Msg("storage not initialized")
		return
	}

	dbx := mgr.GetDBClient().GetDB().WithContext(ctx)
	store := mgr.GetS3Client()

	total := 0

	for _, scope := range []struct {
		prefix string
		model  any
		column string
	}{
		{service.MaterialKeyPrefix, &model.Material{}, "file"},
		{service.SourcecastKeyPrefix, &model.Sourcecast{}, "audio"},
	} {
		keys, err := store.ListKeys(ctx, scope.prefix)
		if err != nil {
			l.Error().Err(err).Str("prefix", scope.prefix).Msg("list content store failed")
			return
		}

		var referenced []string
		if err := dbx.Model(scope.model).Pluck(scope.column, &referenced).Error; err != nil {
			l.Error().Err(err).Str("prefix", scope.prefix).Msg("list catalog rows failed")
			return
		}

		refSet := make(map[string]struct{}, len(referenced))
		for _, k := range referenced {
			refSet[k] = struct{}{}
		}

		orphans := 0

		for _, k := range keys {
			if _, ok := refSet[k]; !ok {
				orphans++

				l.Debug().Str("key", k).Msg("orphan object")
			}
		}

		if orphans > 0 {
			l.Warn().Str("prefix", scope.prefix).Int("orphans", orphans).Msg("content store has unreferenced objects")
		}

		total += orphans
	}

	metrics.OrphanObjects.Set(float64(total))
	l.Info().Int("orphans", total).Msg("orphan sweep done")
}
