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

// sourcecastObjectKey 生成录播音频在内容存储中的对象键.
func sourcecastObjectKey(filename string) string {
	return SourcecastKeyPrefix + uuid.NewString() + "/" + path.Base(filename)
}

// UploadSourcecast 上传录播：与 UploadMaterial 对称，但录播不入目录树.
func (s *CatalogService) UploadSourcecast(ctx context.Context, actor model.Actor, req *types.UploadSourcecastRequest, audio io.Reader, filename string, size int64, contentType string) (*model.Sourcecast, error) {
	if err := s.guard(actor, OpUploadSourcecast); err != nil {
		return nil, err
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErr(err)
	}

	if audio == nil || filename == "" {
		return nil, fieldErr("audio", "an audio file is required")
	}

	key := sourcecastObjectKey(filename)
	if err := s.store.Store(ctx, key, audio, size, contentType); err != nil {
		return nil, storeErr("store sourcecast content", err)
	}

	sc := model.Sourcecast{
		Title:        req.Title,
		Description:  req.Description,
		Audio:        key,
		Playbackdata: req.Playbackdata,
		SizeBytes:    size,
		Uploader:     actor.Username,
	}

	if err := s.db.WithContext(ctx).Create(&sc).Error; err != nil {
		log.Logger().Warn().Str("key", key).Msg("sourcecast row insert failed after content store write, object left behind")
		return nil, storeErr("insert sourcecast row", err)
	}

	if s.events.Enabled && s.events.Sourcecasts.Stored {
		s.publish(ctx, queue.TopicSourcecastStored, queue.SourcecastStoredPayload{
			SourcecastID: sc.ID,
			Title:        sc.Title,
			Uploader:     sc.Uploader,
			Object:       queue.ObjectRef{ObjectKey: sc.Audio, Size: sc.SizeBytes, ContentType: contentType},
		})
	}

	return &sc, nil
}

// DeleteSourcecast 删除录播：缺失的 id 显式返回 NotFound 而不是触发存储层故障.
func (s *CatalogService) DeleteSourcecast(ctx context.Context, actor model.Actor, id uint) error {
	if err := s.guard(actor, OpDeleteSourcecast); err != nil {
		return err
	}

	dbx := s.db.WithContext(ctx)

	var sc model.Sourcecast
	if err := dbx.First(&sc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("sourcecast", id)
		}

		return storeErr("lookup sourcecast", err)
	}

	if err := s.store.Remove(ctx, sc.Audio); err != nil {
		return storeErr("remove sourcecast content", err)
	}

	if err := dbx.Delete(&model.Sourcecast{}, id).Error; err != nil {
		return storeErr("delete sourcecast row", err)
	}

	if s.events.Enabled && s.events.Sourcecasts.Deleted {
		s.publish(ctx, queue.TopicSourcecastDeleted, queue.SourcecastDeletedPayload{
			SourcecastID:   id,
			Object:         queue.ObjectRef{ObjectKey: sc.Audio},
			ContentRemoved: true,
		})
	}

	return nil
}

// ListSourcecasts 列出全部录播，创建时间升序、id 兜底的稳定顺序.
func (s *CatalogService) ListSourcecasts(ctx context.Context) ([]model.Sourcecast, error) {
	var casts []model.Sourcecast
	if err := s.db.WithContext(ctx).Order("created_at asc, id asc").Find(&casts).Error; err != nil {
		return nil, storeErr("list sourcecasts", err)
	}

	return casts, nil
}
