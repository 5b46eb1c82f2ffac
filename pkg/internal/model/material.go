package model

import (
	"time"
)

// Material 目录中的资料文件记录，file 指向内容存储中的对象键.
// category_id 为空表示未入目录（根层级），外键级联随目录删除.
type Material struct {
	ID          uint   `gorm:"primaryKey"     json:"id"`
	Title       string `gorm:"size:255;index" json:"title"`
	Description string `gorm:"type:text"      json:"description"`
	// 内容存储中的对象键
	File        string `gorm:"size:1024"      json:"file"`
	SizeBytes   int64  `gorm:"index"          json:"size_bytes"`
	ContentType string `gorm:"size:255"       json:"content_type"`
	// 所属目录，NULL 表示根层级
	CategoryID *uint     `gorm:"column:category_id;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	// 上传者标识
	Uploader string `gorm:"size:255;index" json:"uploader"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
