// Package types 定义 HTTP 层的请求与响应结构体.
package types

import "github.com/chrisgzf/cadet/pkg/internal/model"

// GetOrCreateGroupRequest 按名字幂等获取/创建讨论组.
type GetOrCreateGroupRequest struct {
	Name string `json:"name" form:"name" rule:"required,max=255"`
}

// UpsertGroupRequest 按名字更新或创建讨论组，命中时覆盖属性.
type UpsertGroupRequest struct {
	Name       string `json:"name"        form:"name"        rule:"required,max=255"`
	LeaderName string `json:"leader_name" form:"leader_name" rule:"omitempty,max=255"`
	MentorName string `json:"mentor_name" form:"mentor_name" rule:"omitempty,max=255"`
}

// ListGroupsResponse 讨论组列表.
type ListGroupsResponse struct {
	Groups []model.Group `json:"groups"`
}
