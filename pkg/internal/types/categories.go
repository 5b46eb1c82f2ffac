package types

import "github.com/chrisgzf/cadet/pkg/internal/model"

// CreateCategoryRequest 创建目录（文件夹），parent 为空表示根层级.
type CreateCategoryRequest struct {
	Title       string `json:"title"       form:"title"       rule:"required,max=255"`
	Description string `json:"description" form:"description" rule:"omitempty,max=10000"`
	ParentID    *uint  `json:"category_id" form:"category_id"`
}

// FolderEntry 目录列表中的一项：资料或子目录，两者互斥.
type FolderEntry struct {
	Kind     string          `json:"kind"` // material | folder
	Material *model.Material `json:"material,omitempty"`
	Folder   *model.Category `json:"folder,omitempty"`
}

// ListFolderResponse 目录的直接子项，资料在前、子目录在后.
type ListFolderResponse struct {
	Entries []FolderEntry `json:"entries"`
}

// AncestorChainResponse 从最外层祖先到自身的有序目录链.
type AncestorChainResponse struct {
	Path []model.Category `json:"path"`
}
