package service

import (
	"context"

	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/queue"
)

// publish 尽力而为地发布目录变更事件. MQ 未启用或发布失败只记日志，
// 不影响主流程的结果：事件是通知下游，不是写入的一部分.
func (s *CatalogService) publish(ctx context.Context, topic string, payload any) {
	if s.mqClient == nil {
		return
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(eventProducer))
	if err != nil {
		log.Logger().Warn().Err(err).Str("topic", topic).Msg("encode catalog event failed")
		return
	}

	if err := s.mqClient.Publish(ctx, topic, msg); err != nil {
		log.Logger().Warn().Err(err).Str("topic", topic).Msg("publish catalog event failed")
	}
}
