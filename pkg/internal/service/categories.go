package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
	"github.com/chrisgzf/cadet/pkg/queue"
	"github.com/chrisgzf/cadet/pkg/rule"
)

// maxAncestorDepth 祖先回溯的深度上限. 数据模型不阻止父链成环，
// 达到上限与检测到重复 id 同样按 CycleDetected 处理.
const maxAncestorDepth = 512

// CreateFolder 创建目录节点，parent 为空表示根层级.
func (s *CatalogService) CreateFolder(ctx context.Context, actor model.Actor, req *types.CreateCategoryRequest) (*model.Category, error) {
	if err := s.guard(actor, OpCreateFolder); err != nil {
		return nil, err
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErr(err)
	}

	dbx := s.db.WithContext(ctx)

	if req.ParentID != nil {
		var parent model.Category
		if err := dbx.First(&parent, *req.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("category", *req.ParentID)
			}

			return nil, storeErr("lookup parent category", err)
		}
	}

	c := model.Category{
		Title:       req.Title,
		Description: req.Description,
		ParentID:    req.ParentID,
		Uploader:    actor.Username,
	}

	if err := dbx.Create(&c).Error; err != nil {
		return nil, storeErr("insert category row", err)
	}

	if s.events.Enabled && s.events.Categories.Created {
		s.publish(ctx, queue.TopicCategoryCreated, queue.CategoryCreatedPayload{
			CategoryID: c.ID,
			ParentID:   c.ParentID,
			Title:      c.Title,
			Uploader:   c.Uploader,
		})
	}

	return &c, nil
}

// DeleteFolder 删除目录节点. 子树（后代目录与其中的资料行）由行存储按
// 外键级联删除；后代资料在内容存储中的字节不在此清理，由孤儿扫描任务
// 统计上报（已知且有意保留的行为）.
func (s *CatalogService) DeleteFolder(ctx context.Context, actor model.Actor, id uint) error {
	if err := s.guard(actor, OpDeleteFolder); err != nil {
		return err
	}

	dbx := s.db.WithContext(ctx)

	var c model.Category
	if err := dbx.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("category", id)
		}

		return storeErr("lookup category", err)
	}

	if err := dbx.Delete(&model.Category{}, id).Error; err != nil {
		return storeErr("delete category row", err)
	}

	if s.events.Enabled && s.events.Categories.Deleted {
		s.publish(ctx, queue.TopicCategoryDeleted, queue.CategoryDeletedPayload{CategoryID: id})
	}

	return nil
}

// ListFolder 返回目录的直接子项：资料在前、子目录在后，组内按
// created_at、id 的稳定顺序排列. id 为空表示列出根层级
// （category_id IS NULL 的显式分支，而不是依赖存储对空值比较的巧合）.
func (s *CatalogService) ListFolder(ctx context.Context, id *uint) (*types.ListFolderResponse, error) {
	dbx := s.db.WithContext(ctx)

	if id != nil {
		var c model.Category
		if err := dbx.First(&c, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("category", *id)
			}

			return nil, storeErr("lookup category", err)
		}
	}

	scoped := func(tx *gorm.DB) *gorm.DB {
		if id == nil {
			return tx.Where("category_id IS NULL")
		}

		return tx.Where("category_id = ?", *id)
	}

	var materials []model.Material
	if err := scoped(dbx.Model(&model.Material{})).Order("created_at asc, id asc").Find(&materials).Error; err != nil {
		return nil, storeErr("list folder materials", err)
	}

	var folders []model.Category
	if err := scoped(dbx.Model(&model.Category{})).Order("created_at asc, id asc").Find(&folders).Error; err != nil {
		return nil, storeErr("list folder categories", err)
	}

	entries := make([]types.FolderEntry, 0, len(materials)+len(folders))

	for i := range materials {
		entries = append(entries, types.FolderEntry{Kind: "material", Material: &materials[i]})
	}

	for i := range folders {
		entries = append(entries, types.FolderEntry{Kind: "folder", Folder: &folders[i]})
	}

	return &types.ListFolderResponse{Entries: entries}, nil
}

// AncestorChain 重建从最外层祖先到目标目录（含）的有序链，根到叶方向.
// 显式循环替代递归，携带已访问集合与深度上限，父链成环返回 CycleDetected.
func (s *CatalogService) AncestorChain(ctx context.Context, id uint) ([]model.Category, error) {
	dbx := s.db.WithContext(ctx)

	visited := make(map[uint]struct{})
	chain := make([]model.Category, 0, 8)

	cur := id

	for {
		if _, seen := visited[cur]; seen {
			return nil, cycleErr(id)
		}

		if len(visited) >= maxAncestorDepth {
			return nil, cycleErr(id)
		}

		visited[cur] = struct{}{}

		var c model.Category
		if err := dbx.First(&c, cur).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("category", cur)
			}

			return nil, storeErr("lookup category", err)
		}

		chain = append(chain, c)

		if c.ParentID == nil {
			break
		}

		cur = *c.ParentID
	}

	// 回溯得到叶到根，反转为根到叶
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}
