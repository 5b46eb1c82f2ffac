package service

import (
	"github.com/chrisgzf/cadet/pkg/internal/model"
)

// Operation 目录写操作的封闭枚举，授权表以此为键.
type Operation string

const (
	OpUploadMaterial   Operation = "upload material"
	OpUploadSourcecast Operation = "upload sourcecast"
	OpCreateFolder     Operation = "create folder"
	OpDeleteMaterial   Operation = "delete material"
	OpDeleteSourcecast Operation = "delete sourcecast"
	OpDeleteFolder     Operation = "delete folder"
	OpUpsertGroup      Operation = "upsert group"
)

// privilegedSet 从配置的角色名构造特权集合，未知角色名被忽略.
func privilegedSet(names []string) map[model.Role]struct{} {
	set := make(map[model.Role]struct{}, len(names))

	for _, n := range names {
		switch r := model.ParseRole(n); r {
		case model.RoleAdmin, model.RoleStaff:
			set[r] = struct{}{}
		case model.RoleStudent:
			// ParseRole 对未知值降级为 student，只有显式写 student 才放行
			if n == "student" {
				set[r] = struct{}{}
			}
		}
	}

	return set
}

// Allowed 判定角色是否可以执行目录写操作. 读操作不经过该判定.
func (s *CatalogService) Allowed(role model.Role, _ Operation) bool {
	_, ok := s.privileged[role]
	return ok
}

// guard 对写操作做授权前置检查，拒绝时返回 Forbidden 且不触碰存储.
func (s *CatalogService) guard(actor model.Actor, op Operation) error {
	if !s.Allowed(actor.Role, op) {
		return forbiddenErr(actor.Role.String(), string(op))
	}

	return nil
}
