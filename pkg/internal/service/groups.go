package service

import (
	"context"

	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/queue"
	"github.com/chrisgzf/cadet/pkg/rule"
)

// GetOrCreateGroup 按名字查找讨论组，不存在则创建. 幂等：同名重复调用
// 永远收敛到同一条记录，且该名字下最多存在一条.
func (s *CatalogService) GetOrCreateGroup(ctx context.Context, actor model.Actor, req *types.GetOrCreateGroupRequest) (*model.Group, error) {
	if err := s.guard(actor, OpUpsertGroup); err != nil {
		return nil, err
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErr(err)
	}

	var g model.Group

	res := s.db.WithContext(ctx).Where(model.Group{Name: req.Name}).FirstOrCreate(&g)
	if res.Error != nil {
		return nil, storeErr("get or create group", res.Error)
	}

	// RowsAffected == 1 表示本次新建了行，命中已有行时不产生写入
	if res.RowsAffected > 0 && s.events.Enabled && s.events.Groups.Upserted {
		s.publish(ctx, queue.TopicGroupUpserted, queue.GroupUpsertedPayload{
			GroupID: g.ID,
			Name:    g.Name,
			Created: true,
		})
	}

	return &g, nil
}

// UpsertGroup 按名字更新或创建讨论组. 与 GetOrCreateGroup 的区别在于
// 命中已有行时会覆盖属性而不是原样返回.
func (s *CatalogService) UpsertGroup(ctx context.Context, actor model.Actor, req *types.UpsertGroupRequest) (*model.Group, error) {
	if err := s.guard(actor, OpUpsertGroup); err != nil {
		return nil, err
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErr(err)
	}

	dbx := s.db.WithContext(ctx)

	var existing int64
	if err := dbx.Model(&model.Group{}).Where("name = ?", req.Name).Count(&existing).Error; err != nil {
		return nil, storeErr("lookup group", err)
	}

	var g model.Group

	// Assign 用 map 而不是结构体：结构体赋值会跳过零值字段，
	// 导致空字符串无法清掉已有值
	err := dbx.Where(model.Group{Name: req.Name}).
		Assign(map[string]any{"leader_name": req.LeaderName, "mentor_name": req.MentorName}).
		FirstOrCreate(&g).Error
	if err != nil {
		return nil, storeErr("upsert group", err)
	}

	if s.events.Enabled && s.events.Groups.Upserted {
		s.publish(ctx, queue.TopicGroupUpserted, queue.GroupUpsertedPayload{
			GroupID:    g.ID,
			Name:       g.Name,
			LeaderName: g.LeaderName,
			MentorName: g.MentorName,
			Created:    existing == 0,
		})
	}

	return &g, nil
}

// ListGroups 列出全部讨论组，按名字排序（读操作，不设防）.
func (s *CatalogService) ListGroups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := s.db.WithContext(ctx).Order("name asc").Find(&groups).Error; err != nil {
		return nil, storeErr("list groups", err)
	}

	return groups, nil
}
