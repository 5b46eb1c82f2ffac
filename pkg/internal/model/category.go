package model

import (
	"time"
)

// Category 资料目录树的文件夹节点，category_id 为空表示根层级.
// 自引用外键声明 ON DELETE CASCADE，删除目录时由存储层级联清除子树.
type Category struct {
	ID          uint   `gorm:"primaryKey"            json:"id"`
	Title       string `gorm:"size:255;index"        json:"title"`
	Description string `gorm:"type:text"             json:"description"`
	// 父目录，NULL 表示根层级
	ParentID *uint       `gorm:"column:category_id;index" json:"category_id"`
	Children []*Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	// 创建者标识（外部身份系统解析出的用户名）
	Uploader string `gorm:"size:255;index" json:"uploader"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
