// Package model 定义目录领域的持久化模型与角色枚举.
package model

import "strings"

// Role 表示请求方的角色（封闭枚举，iota 实现）。
type Role int

const (
	RoleStudent Role = iota + 1
	RoleStaff
	RoleAdmin
)

// String 返回角色的字符串表示。
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStaff:
		return "staff"
	case RoleStudent:
		fallthrough
	default:
		return "student"
	}
}

// ParseRole 从字符串解析角色，未知值降级为 student。
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "staff":
		return RoleStaff
	case "student":
		fallthrough
	default:
		return RoleStudent
	}
}

// Actor 是执行操作的已解析身份，由认证层注入，目录核心只消费不管理。
type Actor struct {
	Username string
	Role     Role
}
