package service

import (
	"context"
	"testing"

	"github.com/chrisgzf/cadet/pkg/internal/model"
)

// TestAncestorChain C3 → C2 → C1 → 根，链为 [C1, C2, C3].
func TestAncestorChain(t *testing.T) {
	svc, _ := newTestService(t)

	c1 := mustCreateFolder(t, svc, "year1", nil)
	c2 := mustCreateFolder(t, svc, "sem1", ptr(c1.ID))
	c3 := mustCreateFolder(t, svc, "week1", ptr(c2.ID))

	chain, err := svc.AncestorChain(context.Background(), c3.ID)
	if err != nil {
		t.Fatalf("ancestor chain: %v", err)
	}

	want := []uint{c1.ID, c2.ID, c3.ID}
	if len(chain) != len(want) {
		t.Fatalf("expected chain length %d, got %d", len(want), len(chain))
	}

	for i, id := range want {
		if chain[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, chain[i].ID)
		}
	}
}

// TestAncestorChainRootNode 根层级目录的链只含自身.
func TestAncestorChainRootNode(t *testing.T) {
	svc, _ := newTestService(t)

	c := mustCreateFolder(t, svc, "standalone", nil)

	chain, err := svc.AncestorChain(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("ancestor chain: %v", err)
	}

	if len(chain) != 1 || chain[0].ID != c.ID {
		t.Errorf("expected chain [%d], got %v", c.ID, chain)
	}
}

// TestAncestorChainNotFound 不存在的 id 返回 NotFound.
func TestAncestorChainNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AncestorChain(context.Background(), 777)
	assertKind(t, err, KindNotFound)
}

// TestAncestorChainCycle 人为构造父链环，回溯返回 CycleDetected 而非死循环.
func TestAncestorChainCycle(t *testing.T) {
	svc, _ := newTestService(t)

	a := mustCreateFolder(t, svc, "a", nil)
	b := mustCreateFolder(t, svc, "b", ptr(a.ID))

	// 绕过服务层校验直接把 a 的父指向 b，形成 a <-> b 环
	if err := svc.db.Model(&model.Category{}).Where("id = ?", a.ID).Update("category_id", b.ID).Error; err != nil {
		t.Fatalf("forge cycle: %v", err)
	}

	_, err := svc.AncestorChain(context.Background(), b.ID)
	assertKind(t, err, KindCycle)
}

// TestListFolderComposition 资料在前、子目录在后，逐项带 uploader.
func TestListFolderComposition(t *testing.T) {
	svc, _ := newTestService(t)

	f := mustCreateFolder(t, svc, "week02", nil)
	m1 := mustUploadMaterial(t, svc, "slides", ptr(f.ID))
	m2 := mustUploadMaterial(t, svc, "notes", ptr(f.ID))
	sub := mustCreateFolder(t, svc, "solutions", ptr(f.ID))

	resp, err := svc.ListFolder(context.Background(), ptr(f.ID))
	if err != nil {
		t.Fatalf("list folder: %v", err)
	}

	if len(resp.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Entries))
	}

	if resp.Entries[0].Kind != "material" || resp.Entries[0].Material.ID != m1.ID {
		t.Errorf("entry 0: expected material %d, got %+v", m1.ID, resp.Entries[0])
	}

	if resp.Entries[1].Kind != "material" || resp.Entries[1].Material.ID != m2.ID {
		t.Errorf("entry 1: expected material %d, got %+v", m2.ID, resp.Entries[1])
	}

	if resp.Entries[2].Kind != "folder" || resp.Entries[2].Folder.ID != sub.ID {
		t.Errorf("entry 2: expected folder %d, got %+v", sub.ID, resp.Entries[2])
	}

	for i, e := range resp.Entries {
		switch e.Kind {
		case "material":
			if e.Material.Uploader == "" {
				t.Errorf("entry %d: material missing uploader", i)
			}
		case "folder":
			if e.Folder.Uploader == "" {
				t.Errorf("entry %d: folder missing uploader", i)
			}
		}
	}
}

// TestListFolderRoot id 为空走显式的 category_id IS NULL 分支，只列根层级.
func TestListFolderRoot(t *testing.T) {
	svc, _ := newTestService(t)

	rootFolder := mustCreateFolder(t, svc, "toplevel", nil)
	rootMaterial := mustUploadMaterial(t, svc, "syllabus", nil)
	mustUploadMaterial(t, svc, "nested", ptr(rootFolder.ID))

	resp, err := svc.ListFolder(context.Background(), nil)
	if err != nil {
		t.Fatalf("list root: %v", err)
	}

	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 root entries, got %d", len(resp.Entries))
	}

	if resp.Entries[0].Kind != "material" || resp.Entries[0].Material.ID != rootMaterial.ID {
		t.Errorf("entry 0: expected root material %d, got %+v", rootMaterial.ID, resp.Entries[0])
	}

	if resp.Entries[1].Kind != "folder" || resp.Entries[1].Folder.ID != rootFolder.ID {
		t.Errorf("entry 1: expected root folder %d, got %+v", rootFolder.ID, resp.Entries[1])
	}
}

// TestListFolderNotFound 列出不存在的目录返回 NotFound.
func TestListFolderNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListFolder(context.Background(), ptr(31337))
	assertKind(t, err, KindNotFound)
}

// TestDeleteFolderCascades 删除目录后，后代目录与其中的资料行都不可再取得.
func TestDeleteFolderCascades(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	parent := mustCreateFolder(t, svc, "parent", nil)
	child := mustCreateFolder(t, svc, "child", ptr(parent.ID))
	m := mustUploadMaterial(t, svc, "deep", ptr(child.ID))

	if err := svc.DeleteFolder(ctx, adminActor, parent.ID); err != nil {
		t.Fatalf("delete folder: %v", err)
	}

	if n := countRows(t, svc.db, &model.Category{}); n != 0 {
		t.Errorf("expected all category rows cascaded away, got %d", n)
	}

	if n := countRows(t, svc.db, &model.Material{}); n != 0 {
		t.Errorf("expected descendant material row cascaded away, got %d", n)
	}

	// 级联只清理行存储：后代资料的内容对象按既定行为残留，
	// 由孤儿扫描任务统计上报而不是在此静默清理.
	if ok, _ := store.Exists(ctx, m.File); !ok {
		t.Error("expected descendant content object to remain after cascade delete")
	}
}

// TestDeleteFolderNotFound 删除不存在的目录返回 NotFound.
func TestDeleteFolderNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	assertKind(t, svc.DeleteFolder(context.Background(), adminActor, 555), KindNotFound)
}
