package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
)

// TestAllowedTable 授权判定对封闭角色枚举逐一成立.
func TestAllowedTable(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		role model.Role
		want bool
	}{
		{model.RoleAdmin, true},
		{model.RoleStaff, true},
		{model.RoleStudent, false},
	}

	ops := []Operation{
		OpUploadMaterial, OpUploadSourcecast, OpCreateFolder,
		OpDeleteMaterial, OpDeleteSourcecast, OpDeleteFolder, OpUpsertGroup,
	}

	for _, c := range cases {
		for _, op := range ops {
			if got := svc.Allowed(c.role, op); got != c.want {
				t.Errorf("Allowed(%s, %s) = %v, want %v", c.role, op, got, c.want)
			}
		}
	}
}

// TestPrivilegedSetFromConfig 配置可以覆盖特权集合，未知角色名被忽略.
func TestPrivilegedSetFromConfig(t *testing.T) {
	set := privilegedSet([]string{"admin", "superuser"})

	if _, ok := set[model.RoleAdmin]; !ok {
		t.Error("expected admin in privileged set")
	}

	if _, ok := set[model.RoleStaff]; ok {
		t.Error("staff should not be privileged under this config")
	}

	if _, ok := set[model.RoleStudent]; ok {
		t.Error("unknown role name must not grant student privilege")
	}
}

// TestForbiddenLeavesStoreUntouched 被拒绝的写操作不得产生任何行或对象.
func TestForbiddenLeavesStoreUntouched(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	folder := mustCreateFolder(t, svc, "week01", nil)
	material := mustUploadMaterial(t, svc, "notes", ptr(folder.ID))

	rowsBefore := countRows(t, svc.db, &model.Material{}) + countRows(t, svc.db, &model.Category{})
	objectsBefore := store.len()

	_, err := svc.UploadMaterial(ctx, studentActor, &types.UploadMaterialRequest{Title: "sneaky"},
		bytes.NewReader([]byte("x")), "sneaky.pdf", 1, "application/pdf")
	assertKind(t, err, KindForbidden)

	assertKind(t, svc.DeleteMaterial(ctx, studentActor, material.ID), KindForbidden)
	assertKind(t, svc.DeleteFolder(ctx, studentActor, folder.ID), KindForbidden)

	_, err = svc.CreateFolder(ctx, studentActor, &types.CreateCategoryRequest{Title: "week02"})
	assertKind(t, err, KindForbidden)

	rowsAfter := countRows(t, svc.db, &model.Material{}) + countRows(t, svc.db, &model.Category{})
	if rowsAfter != rowsBefore {
		t.Errorf("row count changed on denied mutations: %d -> %d", rowsBefore, rowsAfter)
	}

	if store.len() != objectsBefore {
		t.Errorf("object count changed on denied mutations: %d -> %d", objectsBefore, store.len())
	}
}
