package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/service"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

// GetOrCreateGroup 按名字幂等获取或创建讨论组.
//
//	@Summary		获取或创建讨论组
//	@Description	按唯一名字查找讨论组，不存在则创建，重复调用幂等
//	@Tags			讨论组
//	@Accept			json
//	@Produce		json
//	@Param			group	body		types.GetOrCreateGroupRequest	true	"讨论组名字"
//	@Success		200		{object}	model.Group						"讨论组"
//	@Failure		400		{object}	map[string]string				"请求参数错误"
//	@Failure		403		{object}	map[string]string				"角色无权操作"
//	@Failure		500		{object}	map[string]string				"服务器内部错误"
//	@Router			/api/v1/groups [post]
func GetOrCreateGroup(c *gin.Context) {
	var req types.GetOrCreateGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid get-or-create group request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	group, err := svc.GetOrCreateGroup(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		respondError(c, "get_or_create_group", err)
		return
	}

	recordOK("get_or_create_group")
	c.JSON(http.StatusOK, group)
}

// UpsertGroup 按名字更新或创建讨论组.
//
//	@Summary		更新或创建讨论组
//	@Description	按唯一名字命中则覆盖组长/导师属性，否则新建
//	@Tags			讨论组
//	@Accept			json
//	@Produce		json
//	@Param			group	body		types.UpsertGroupRequest	true	"讨论组属性"
//	@Success		200		{object}	model.Group					"讨论组"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Failure		403		{object}	map[string]string			"角色无权操作"
//	@Failure		500		{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/groups [put]
func UpsertGroup(c *gin.Context) {
	var req types.UpsertGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid upsert group request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewCatalogService(c.Request.Context())

	group, err := svc.UpsertGroup(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		respondError(c, "upsert_group", err)
		return
	}

	recordOK("upsert_group")
	c.JSON(http.StatusOK, group)
}

// ListGroups 返回全部讨论组.
//
//	@Summary		讨论组列表
//	@Description	按名字排序返回全部讨论组
//	@Tags			讨论组
//	@Produce		json
//	@Success		200	{object}	types.ListGroupsResponse	"讨论组列表"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/groups [get]
func ListGroups(c *gin.Context) {
	svc := service.NewCatalogService(c.Request.Context())

	groups, err := svc.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, "list_groups", err)
		return
	}

	c.JSON(http.StatusOK, types.ListGroupsResponse{Groups: groups})
}
