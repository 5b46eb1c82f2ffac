package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
)

// TestUploadMaterial 上传后行与内容对象都存在，uploader 为操作者.
func TestUploadMaterial(t *testing.T) {
	svc, store := newTestService(t)

	m := mustUploadMaterial(t, svc, "lecture01", nil)

	if m.Uploader != staffActor.Username {
		t.Errorf("expected uploader %s, got %s", staffActor.Username, m.Uploader)
	}

	if !strings.HasPrefix(m.File, MaterialKeyPrefix) {
		t.Errorf("expected object key under %s, got %s", MaterialKeyPrefix, m.File)
	}

	ok, _ := store.Exists(context.Background(), m.File)
	if !ok {
		t.Error("expected content object to exist after upload")
	}

	if n := countRows(t, svc.db, &model.Material{}); n != 1 {
		t.Errorf("expected one material row, got %d", n)
	}
}

// TestUploadMaterialMissingFile 缺少文件本体返回字段级校验错误.
func TestUploadMaterialMissingFile(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.UploadMaterial(context.Background(), staffActor,
		&types.UploadMaterialRequest{Title: "nofile"}, nil, "", 0, "")
	assertKind(t, err, KindValidation)

	if fields := FieldsOf(err); fields["file"] == "" {
		t.Error("expected field detail for file")
	}

	if store.len() != 0 {
		t.Error("expected no objects stored on validation failure")
	}
}

// TestUploadMaterialDanglingParent 指向不存在目录的上传返回 NotFound 且不写入.
func TestUploadMaterialDanglingParent(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.UploadMaterial(context.Background(), staffActor,
		&types.UploadMaterialRequest{Title: "orphan", CategoryID: ptr(9999)},
		bytes.NewReader([]byte("x")), "orphan.pdf", 1, "application/pdf")
	assertKind(t, err, KindNotFound)

	if store.len() != 0 {
		t.Error("expected no objects stored when parent category is missing")
	}

	if n := countRows(t, svc.db, &model.Material{}); n != 0 {
		t.Errorf("expected no material rows, got %d", n)
	}
}

// TestDeleteMaterialThenRead 删除成功后行查不到，内容对象也不存在.
func TestDeleteMaterialThenRead(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	m := mustUploadMaterial(t, svc, "todelete", nil)

	if err := svc.DeleteMaterial(ctx, adminActor, m.ID); err != nil {
		t.Fatalf("delete material: %v", err)
	}

	assertKind(t, svc.DeleteMaterial(ctx, adminActor, m.ID), KindNotFound)

	ok, _ := store.Exists(ctx, m.File)
	if ok {
		t.Error("expected content object removed after delete")
	}
}

// TestDeleteMaterialNotFound 缺失的 id 显式返回 NotFound 而不是崩溃.
func TestDeleteMaterialNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	assertKind(t, svc.DeleteMaterial(context.Background(), adminActor, 4242), KindNotFound)
}

// TestUploadAndDeleteSourcecast 录播上传/删除与资料对称，但不入目录树.
func TestUploadAndDeleteSourcecast(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	sc, err := svc.UploadSourcecast(ctx, staffActor,
		&types.UploadSourcecastRequest{Title: "mission01", Playbackdata: `{"init":{}}`},
		bytes.NewReader([]byte("audio-bytes")), "mission01.wav", 11, "audio/wav")
	if err != nil {
		t.Fatalf("upload sourcecast: %v", err)
	}

	if !strings.HasPrefix(sc.Audio, SourcecastKeyPrefix) {
		t.Errorf("expected audio key under %s, got %s", SourcecastKeyPrefix, sc.Audio)
	}

	if ok, _ := store.Exists(ctx, sc.Audio); !ok {
		t.Error("expected audio object to exist after upload")
	}

	if err := svc.DeleteSourcecast(ctx, adminActor, sc.ID); err != nil {
		t.Fatalf("delete sourcecast: %v", err)
	}

	assertKind(t, svc.DeleteSourcecast(ctx, adminActor, sc.ID), KindNotFound)

	if ok, _ := store.Exists(ctx, sc.Audio); ok {
		t.Error("expected audio object removed after delete")
	}
}

// TestListSourcecasts 列表按创建时间与 id 的稳定顺序返回.
func TestListSourcecasts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		if _, err := svc.UploadSourcecast(ctx, staffActor,
			&types.UploadSourcecastRequest{Title: title},
			bytes.NewReader([]byte(title)), title+".wav", int64(len(title)), "audio/wav"); err != nil {
			t.Fatalf("upload %s: %v", title, err)
		}
	}

	casts, err := svc.ListSourcecasts(ctx)
	if err != nil {
		t.Fatalf("list sourcecasts: %v", err)
	}

	if len(casts) != 3 {
		t.Fatalf("expected 3 sourcecasts, got %d", len(casts))
	}

	for i, title := range titles {
		if casts[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, casts[i].Title)
		}
	}
}
