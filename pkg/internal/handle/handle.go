// Package handle 提供HTTP请求处理器，将目录服务的结果映射为HTTP响应.
package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/service"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/metrics"
)

// outcomeLabel 将服务层错误类别映射为指标的 outcome 标签.
func outcomeLabel(k service.Kind) string {
	switch k {
	case service.KindForbidden:
		return "forbidden"
	case service.KindNotFound:
		return "not_found"
	case service.KindValidation:
		return "invalid"
	case service.KindCycle:
		return "cycle"
	case service.KindStore:
		fallthrough
	default:
		return "error"
	}
}

// respondError 按错误类别写出HTTP响应并记录操作指标.
//
//	Forbidden  -> 403，预期结果不打错误日志
//	NotFound   -> 404
//	Validation -> 400，附按字段的明细
//	Cycle      -> 500，目录父链损坏需要人工介入
//	Store      -> 500，底层存储失败
func respondError(c *gin.Context, op string, err error) {
	l := log.Logger()
	kind := service.KindOf(err)

	metrics.CatalogOperations.WithLabelValues(op, outcomeLabel(kind)).Inc()

	switch kind {
	case service.KindForbidden:
		l.Warn().Err(err).Str("op", op).Msg("operation forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.KindValidation:
		resp := gin.H{"error": err.Error()}
		if fields := service.FieldsOf(err); len(fields) > 0 {
			resp["fields"] = fields
		}

		c.JSON(http.StatusBadRequest, resp)
	case service.KindCycle:
		l.Error().Err(err).Str("op", op).Msg("category parent chain corrupted")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case service.KindStore:
		fallthrough
	default:
		l.Error().Err(err).Str("op", op).Msg("catalog operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// recordOK 记录一次成功操作.
func recordOK(op string) {
	metrics.CatalogOperations.WithLabelValues(op, "ok").Inc()
}

// pathID 解析路径参数中的数字 id，非法时写出 400 并返回 false.
func pathID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return 0, false
	}

	return uint(id), true
}
