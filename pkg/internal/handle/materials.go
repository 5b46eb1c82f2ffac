package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/service"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

// UploadMaterial 处理资料上传：文件本体写入对象存储，元数据落库.
//
//	@Summary		上传资料
//	@Description	multipart 上传课程资料，file 域为文件本体，表单字段为元数据
//	@Tags			资料
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string			true	"标题"
//	@Param			description	formData	string			false	"描述"
//	@Param			category_id	formData	integer			false	"所属目录，空为根层级"
//	@Param			file		formData	file			true	"文件本体"
//	@Success		201			{object}	model.Material	"资料"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Failure		403			{object}	map[string]string	"角色无权操作"
//	@Failure		404			{object}	map[string]string	"所属目录不存在"
//	@Failure		500			{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/materials [post]
func UploadMaterial(c *gin.Context) {
	l := log.Logger()

	var req types.UploadMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid upload material request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("missing material file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})

		return
	}

	src, err := fh.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})

		return
	}
	defer src.Close()

	svc := service.NewCatalogService(c.Request.Context())

	material, err := svc.UploadMaterial(c.Request.Context(), middleware.GetActor(c), &req,
		src, fh.Filename, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, "upload_material", err)
		return
	}

	recordOK("upload_material")
	c.JSON(http.StatusCreated, material)
}

// DeleteMaterial 删除资料：内容对象与元数据行都移除.
//
//	@Summary		删除资料
//	@Description	删除指定资料，文件本体与数据库行一并移除
//	@Tags			资料
//	@Produce		json
//	@Param			id	path		integer				true	"资料ID"
//	@Success		200	{object}	map[string]string	"删除结果"
//	@Failure		400	{object}	map[string]string	"请求参数错误"
//	@Failure		403	{object}	map[string]string	"角色无权操作"
//	@Failure		404	{object}	map[string]string	"资料不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/materials/{id} [delete]
func DeleteMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	if err := svc.DeleteMaterial(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, "delete_material", err)
		return
	}

	recordOK("delete_material")
	c.JSON(http.StatusOK, gin.H{"message": "material deleted"})
}
