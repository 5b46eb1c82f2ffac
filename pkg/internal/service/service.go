// Package service 实现目录核心：分组注册、内容上传与目录树管理.
// 所有写操作先经过授权判定（auth.go），再落到行存储与内容存储；
// 读操作不设防. 错误以带 Kind 的显式值返回（errors.go）.
package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/chrisgzf/cadet/pkg/configs"
	ctxPkg "github.com/chrisgzf/cadet/pkg/context"
	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/storage/mq"
	"github.com/chrisgzf/cadet/pkg/internal/storage/s3"
)

// 内容存储中按实体划分的对象键前缀.
const (
	MaterialKeyPrefix   = "materials/"
	SourcecastKeyPrefix = "sourcecasts/"
)

// eventProducer 事件头里的生产者标识.
const eventProducer = "cadet"

// CatalogService 聚合目录子系统的全部操作.
// 字段直填即可构造（测试注入 sqlite 与假对象存储）；生产路径用 NewCatalogService.
type CatalogService struct {
	db         *gorm.DB
	store      s3.ObjectStore
	mqClient   *mq.Client
	privileged map[model.Role]struct{}
	events     configs.EventsConfig
}

// NewCatalogService 从请求上下文取存储管理器并按全局配置装配服务.
func NewCatalogService(c context.Context) *CatalogService {
	cfg := configs.GetConfig()

	svc := &CatalogService{
		mqClient:   ctxPkg.GetMQClient(c),
		privileged: privilegedSet(cfg.Auth.PrivilegedRoles),
		events:     cfg.Events,
	}

	if dbc := ctxPkg.GetDBClient(c); dbc != nil {
		svc.db = dbc.GetDB()
	}

	if s3c := ctxPkg.GetS3Client(c); s3c != nil {
		svc.store = s3c
	}

	return svc
}
