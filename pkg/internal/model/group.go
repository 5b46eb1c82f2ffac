package model

import (
	"time"
)

// Group 讨论组，name 为自然键，同名最多存在一条记录.
type Group struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 自然键，按名字幂等创建/更新
	Name       string `gorm:"size:255;uniqueIndex" json:"name"`
	LeaderName string `gorm:"size:255"             json:"leader_name"`
	MentorName string `gorm:"size:255"             json:"mentor_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
