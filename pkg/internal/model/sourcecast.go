package model

import (
	"time"
)

// Sourcecast 录播媒体记录，与 Material 类似但不入目录树.
// audio 指向内容存储中的对象键，playbackdata 为前端回放所需的 JSON 文本.
type Sourcecast struct {
	ID          uint   `gorm:"primaryKey"     json:"id"`
	Title       string `gorm:"size:255;index" json:"title"`
	Description string `gorm:"type:text"      json:"description"`
	// 内容存储中的音频对象键
	Audio        string `gorm:"size:1024" json:"audio"`
	Playbackdata string `gorm:"type:text" json:"playbackdata"`
	SizeBytes    int64  `gorm:"index"     json:"size_bytes"`
	// 上传者标识
	Uploader string `gorm:"size:255;index" json:"uploader"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
