package types

// UploadMaterialRequest 上传资料的表单字段，文件本体走 multipart 的 file 域.
type UploadMaterialRequest struct {
	Title       string `json:"title"       form:"title"       rule:"required,max=255"`
	Description string `json:"description" form:"description" rule:"omitempty,max=10000"`
	CategoryID  *uint  `json:"category_id" form:"category_id"`
}
