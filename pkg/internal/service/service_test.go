package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chrisgzf/cadet/pkg/configs"
	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
)

// fakeStore 测试用的内存内容存储，实现 s3.ObjectStore.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data

	return nil
}

// Remove 与生产实现保持一致：删除不存在的键也返回成功.
func (f *fakeStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)

	return nil
}

func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]

	return ok, nil
}

func (f *fakeStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var keys []string

	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	return keys, nil
}

func (f *fakeStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.objects)
}

// newTestService 构造隔离的目录服务：内存 sqlite（开外键以验证级联）、
// 假内容存储、事件关闭、默认特权集合 {admin, staff}.
func newTestService(t *testing.T) (*CatalogService, *fakeStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// 单连接保证 :memory: 库在整个测试内共享
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(&model.Group{}, &model.Category{}, &model.Material{}, &model.Sourcecast{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := newFakeStore()

	svc := &CatalogService{
		db:         db,
		store:      store,
		privileged: privilegedSet([]string{"admin", "staff"}),
		events:     configs.EventsConfig{},
	}

	return svc, store
}

var (
	staffActor   = model.Actor{Username: "staff@example.com", Role: model.RoleStaff}
	adminActor   = model.Actor{Username: "admin@example.com", Role: model.RoleAdmin}
	studentActor = model.Actor{Username: "student@example.com", Role: model.RoleStudent}
)

func ptr(v uint) *uint { return &v }

// mustUploadMaterial 帮助函数：以 staff 身份上传一份带内容的资料.
func mustUploadMaterial(t *testing.T, svc *CatalogService, title string, categoryID *uint) *model.Material {
	t.Helper()

	req := &types.UploadMaterialRequest{Title: title, CategoryID: categoryID}

	m, err := svc.UploadMaterial(context.Background(), staffActor, req,
		bytes.NewReader([]byte("content of "+title)), title+".pdf", 16, "application/pdf")
	if err != nil {
		t.Fatalf("upload material %s: %v", title, err)
	}

	return m
}

// mustCreateFolder 帮助函数：以 admin 身份创建目录.
func mustCreateFolder(t *testing.T, svc *CatalogService, title string, parent *uint) *model.Category {
	t.Helper()

	c, err := svc.CreateFolder(context.Background(), adminActor, &types.CreateCategoryRequest{Title: title, ParentID: parent})
	if err != nil {
		t.Fatalf("create folder %s: %v", title, err)
	}

	return c
}

// countRows 统计指定模型的行数.
func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}

	return n
}

// assertKind 断言错误携带期望的 Kind.
func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error of kind %d, got nil", want)
	}

	if got := KindOf(err); got != want {
		t.Fatalf("expected error kind %d, got %d (%v)", want, got, err)
	}
}
