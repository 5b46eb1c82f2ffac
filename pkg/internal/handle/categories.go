package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/service"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

// CreateFolder 处理创建目录请求.
//
//	@Summary		创建目录
//	@Description	创建新目录，category_id 为空表示挂在根层级
//	@Tags			目录
//	@Accept			json
//	@Produce		json
//	@Param			folder	body		types.CreateCategoryRequest	true	"创建目录请求"
//	@Success		201		{object}	model.Category				"目录"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Failure		403		{object}	map[string]string			"角色无权操作"
//	@Failure		404		{object}	map[string]string			"父目录不存在"
//	@Failure		500		{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/categories [post]
func CreateFolder(c *gin.Context) {
	var req types.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid create folder request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	folder, err := svc.CreateFolder(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		respondError(c, "create_folder", err)
		return
	}

	recordOK("create_folder")
	c.JSON(http.StatusCreated, folder)
}

// DeleteFolder 处理删除目录请求，子树与其中的资料行级联移除.
//
//	@Summary		删除目录
//	@Description	删除指定目录，其子目录与资料行由外键级联移除
//	@Tags			目录
//	@Produce		json
//	@Param			id	path		integer				true	"目录ID"
//	@Success		200	{object}	map[string]string	"删除结果"
//	@Failure		400	{object}	map[string]string	"请求参数错误"
//	@Failure		403	{object}	map[string]string	"角色无权操作"
//	@Failure		404	{object}	map[string]string	"目录不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/categories/{id} [delete]
func DeleteFolder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	if err := svc.DeleteFolder(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, "delete_folder", err)
		return
	}

	recordOK("delete_folder")
	c.JSON(http.StatusOK, gin.H{"message": "folder deleted"})
}

// ListFolder 返回目录的直接子项，资料在前、子目录在后.
//
//	@Summary		目录内容列表
//	@Description	返回指定目录的直接子项，资料在前、子目录在后
//	@Tags			目录
//	@Produce		json
//	@Param			id	path		integer					true	"目录ID"
//	@Success		200	{object}	types.ListFolderResponse	"目录内容"
//	@Failure		400	{object}	map[string]string		"请求参数错误"
//	@Failure		404	{object}	map[string]string		"目录不存在"
//	@Failure		500	{object}	map[string]string		"服务器内部错误"
//	@Router			/api/v1/categories/{id} [get]
func ListFolder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	resp, err := svc.ListFolder(c.Request.Context(), &id)
	if err != nil {
		respondError(c, "list_folder", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListRootFolder 返回根层级内容，即不属于任何目录的资料与顶层目录.
//
//	@Summary		根层级内容列表
//	@Description	返回不属于任何目录的资料与顶层目录
//	@Tags			目录
//	@Produce		json
//	@Success		200	{object}	types.ListFolderResponse	"根层级内容"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/categories/root [get]
func ListRootFolder(c *gin.Context) {
	svc := service.NewCatalogService(c.Request.Context())

	resp, err := svc.ListFolder(c.Request.Context(), nil)
	if err != nil {
		respondError(c, "list_folder", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AncestorChain 返回从最外层祖先到目标目录的有序目录链.
//
//	@Summary		目录祖先链
//	@Description	返回从最外层祖先到目标目录的有序链，父链成环时报错
//	@Tags			目录
//	@Produce		json
//	@Param			id	path		integer						true	"目录ID"
//	@Success		200	{object}	types.AncestorChainResponse	"目录链"
//	@Failure		400	{object}	map[string]string			"请求参数错误"
//	@Failure		404	{object}	map[string]string			"目录不存在"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/categories/{id}/path [get]
func AncestorChain(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	chain, err := svc.AncestorChain(c.Request.Context(), id)
	if err != nil {
		respondError(c, "ancestor_chain", err)
		return
	}

	c.JSON(http.StatusOK, types.AncestorChainResponse{Path: chain})
}
