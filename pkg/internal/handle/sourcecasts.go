package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/service"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

// UploadSourcecast 处理录播上传：音频写入对象存储，元数据落库.
//
//	@Summary		上传录播
//	@Description	multipart 上传课堂录播，audio 域为音频本体，playbackdata 为回放轨迹
//	@Tags			录播
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title			formData	string				true	"标题"
//	@Param			description		formData	string				false	"描述"
//	@Param			playbackdata	formData	string				false	"回放轨迹"
//	@Param			audio			formData	file				true	"音频本体"
//	@Success		201				{object}	model.Sourcecast	"录播"
//	@Failure		400				{object}	map[string]string	"请求参数错误"
//	@Failure		403				{object}	map[string]string	"角色无权操作"
//	@Failure		500				{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/sourcecasts [post]
func UploadSourcecast(c *gin.Context) {
	l := log.Logger()

	var req types.UploadSourcecastRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid upload sourcecast request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		l.Warn().Err(err).Msg("missing sourcecast audio")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing audio"})

		return
	}

	src, err := fh.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded audio")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded audio"})

		return
	}
	defer src.Close()

	svc := service.NewCatalogService(c.Request.Context())

	sc, err := svc.UploadSourcecast(c.Request.Context(), middleware.GetActor(c), &req,
		src, fh.Filename, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, "upload_sourcecast", err)
		return
	}

	recordOK("upload_sourcecast")
	c.JSON(http.StatusCreated, sc)
}

// DeleteSourcecast 删除录播：音频对象与元数据行都移除.
//
//	@Summary		删除录播
//	@Description	删除指定录播，音频本体与数据库行一并移除
//	@Tags			录播
//	@Produce		json
//	@Param			id	path		integer				true	"录播ID"
//	@Success		200	{object}	map[string]string	"删除结果"
//	@Failure		400	{object}	map[string]string	"请求参数错误"
//	@Failure		403	{object}	map[string]string	"角色无权操作"
//	@Failure		404	{object}	map[string]string	"录播不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/sourcecasts/{id} [delete]
func DeleteSourcecast(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	if err := svc.DeleteSourcecast(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, "delete_sourcecast", err)
		return
	}

	recordOK("delete_sourcecast")
	c.JSON(http.StatusOK, gin.H{"message": "sourcecast deleted"})
}

// ListSourcecasts 返回全部录播.
//
//	@Summary		录播列表
//	@Description	按创建时间排序返回全部录播
//	@Tags			录播
//	@Produce		json
//	@Success		200	{object}	types.ListSourcecastsResponse	"录播列表"
//	@Failure		500	{object}	map[string]string				"服务器内部错误"
//	@Router			/api/v1/sourcecasts [get]
func ListSourcecasts(c *gin.Context) {
	svc := service.NewCatalogService(c.Request.Context())

	casts, err := svc.ListSourcecasts(c.Request.Context())
	if err != nil {
		respondError(c, "list_sourcecasts", err)
		return
	}

	c.JSON(http.StatusOK, types.ListSourcecastsResponse{Sourcecasts: casts})
}
