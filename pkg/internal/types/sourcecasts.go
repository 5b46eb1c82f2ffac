package types

import "github.com/chrisgzf/cadet/pkg/internal/model"

// UploadSourcecastRequest 上传录播的表单字段，音频本体走 multipart 的 audio 域.
type UploadSourcecastRequest struct {
	Title        string `json:"title"        form:"title"        rule:"required,max=255"`
	Description  string `json:"description"  form:"description"  rule:"omitempty,max=10000"`
	Playbackdata string `json:"playbackdata" form:"playbackdata" rule:"omitempty"`
}

// ListSourcecastsResponse 录播列表.
type ListSourcecastsResponse struct {
	Sourcecasts []model.Sourcecast `json:"sourcecasts"`
}
