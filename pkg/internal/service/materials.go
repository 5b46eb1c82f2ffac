package service

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/queue"
	"github.com/chrisgzf/cadet/pkg/rule"
)

// materialObjectKey 生成资料文件在内容存储中的对象键.
func materialObjectKey(filename string) string {
	return MaterialKeyPrefix + uuid.NewString() + "/" + path.Base(filename)
}

// UploadMaterial 上传资料文件：先写内容存储，再插入目录行.
// 两步不是原子的：行插入失败时对象已写入，错误会如实返回并记录残留的键，
// 由孤儿扫描任务统计（不自动清理）.
func (s *CatalogService) UploadMaterial(ctx context.Context, actor model.Actor, req *types.UploadMaterialRequest, file io.Reader, filename string, size int64, contentType string) (*model.Material, error) {
	if err := s.guard(actor, OpUploadMaterial); err != nil {
		return nil, err
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErr(err)
	}

	if file == nil || filename == "" {
		return nil, fieldErr("file", "a file is required")
	}

	dbx := s.db.WithContext(ctx)

	// 父目录必须已存在，悬空引用直接拒绝而不是留给外键报错
	if req.CategoryID != nil {
		var parent model.Category
		if err := dbx.First(&parent, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("category", *req.CategoryID)
			}

			return nil, storeErr("lookup parent category", err)
		}
	}

	key := materialObjectKey(filename)
	if err := s.store.Store(ctx, key, file, size, contentType); err != nil {
		return nil, storeErr("store material content", err)
	}

	m := model.Material{
		Title:       req.Title,
		Description: req.Description,
		File:        key,
		SizeBytes:   size,
		ContentType: contentType,
		CategoryID:  req.CategoryID,
		Uploader:    actor.Username,
	}

	if err := dbx.Create(&m).Error; err != nil {
		log.Logger().Warn().Str("key", key).Msg("material row insert failed after content store write, object left behind")
		return nil, storeErr("insert material row", err)
	}

	if s.events.Enabled && s.events.Materials.Stored {
		s.publish(ctx, queue.TopicMaterialStored, queue.MaterialStoredPayload{
			MaterialID: m.ID,
			CategoryID: m.CategoryID,
			Title:      m.Title,
			Uploader:   m.Uploader,
			Object:     queue.ObjectRef{ObjectKey: m.File, Size: m.SizeBytes, ContentType: m.ContentType},
		})
	}

	return &m, nil
}

// DeleteMaterial 删除资料文件：先删内容存储的字节（对已不存在的键幂等成功），
// 再删目录行. 字节删除成功而行删除失败时错误如实返回，整个操作可安全重试.
func (s *CatalogService) DeleteMaterial(ctx context.Context, actor model.Actor, id uint) error {
	if err := s.guard(actor, OpDeleteMaterial); err != nil {
		return err
	}

	dbx := s.db.WithContext(ctx)

	var m model.Material
	if err := dbx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("material", id)
		}

		return storeErr("lookup material", err)
	}

	if err := s.store.Remove(ctx, m.File); err != nil {
		return storeErr("remove material content", err)
	}

	if err := dbx.Delete(&model.Material{}, id).Error; err != nil {
		return storeErr("delete material row", err)
	}

	if s.events.Enabled && s.events.Materials.Deleted {
		s.publish(ctx, queue.TopicMaterialDeleted, queue.MaterialDeletedPayload{
			MaterialID:     id,
			Object:         queue.ObjectRef{ObjectKey: m.File},
			ContentRemoved: true,
		})
	}

	return nil
}
