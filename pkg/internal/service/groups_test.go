package service

import (
	"context"
	"testing"

	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/internal/types"
)

// TestGetOrCreateGroupIdempotent 同名重复调用收敛到同一条记录且不产生重复行.
func TestGetOrCreateGroupIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.GetOrCreateGroup(ctx, staffActor, &types.GetOrCreateGroupRequest{Name: "studio-1A"})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	second, err := svc.GetOrCreateGroup(ctx, staffActor, &types.GetOrCreateGroupRequest{Name: "studio-1A"})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected same group identity, got %d and %d", first.ID, second.ID)
	}

	if n := countRows(t, svc.db, &model.Group{}); n != 1 {
		t.Errorf("expected exactly one group row, got %d", n)
	}
}

// TestUpsertGroupOverwrite 命中已有名字时覆盖属性，且不产生第二条记录.
func TestUpsertGroupOverwrite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpsertGroup(ctx, adminActor, &types.UpsertGroupRequest{Name: "studio-2B", LeaderName: "alice"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	g, err := svc.UpsertGroup(ctx, adminActor, &types.UpsertGroupRequest{Name: "studio-2B", LeaderName: "bob"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if g.LeaderName != "bob" {
		t.Errorf("expected leader overwritten to bob, got %q", g.LeaderName)
	}

	if n := countRows(t, svc.db, &model.Group{}); n != 1 {
		t.Errorf("expected exactly one group row, got %d", n)
	}

	var stored model.Group
	if err := svc.db.Where("name = ?", "studio-2B").Take(&stored).Error; err != nil {
		t.Fatalf("reload group: %v", err)
	}

	if stored.LeaderName != "bob" {
		t.Errorf("expected persisted leader bob, got %q", stored.LeaderName)
	}
}

// TestUpsertGroupClearsField 以空值覆盖时清掉已有属性，而不是保留旧值.
func TestUpsertGroupClearsField(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpsertGroup(ctx, adminActor, &types.UpsertGroupRequest{Name: "studio-4D", LeaderName: "alice", MentorName: "carol"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	g, err := svc.UpsertGroup(ctx, adminActor, &types.UpsertGroupRequest{Name: "studio-4D", MentorName: "carol"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if g.LeaderName != "" {
		t.Errorf("expected leader cleared, got %q", g.LeaderName)
	}

	var stored model.Group
	if err := svc.db.Where("name = ?", "studio-4D").Take(&stored).Error; err != nil {
		t.Fatalf("reload group: %v", err)
	}

	if stored.LeaderName != "" {
		t.Errorf("expected persisted leader cleared, got %q", stored.LeaderName)
	}

	if stored.MentorName != "carol" {
		t.Errorf("expected mentor kept as carol, got %q", stored.MentorName)
	}
}

// TestGroupValidation 空名字返回校验错误并携带字段明细.
func TestGroupValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetOrCreateGroup(context.Background(), staffActor, &types.GetOrCreateGroupRequest{Name: ""})
	assertKind(t, err, KindValidation)

	if fields := FieldsOf(err); len(fields) == 0 {
		t.Error("expected field-level validation detail")
	}

	if n := countRows(t, svc.db, &model.Group{}); n != 0 {
		t.Errorf("expected no group rows after validation failure, got %d", n)
	}
}

// TestGroupForbidden 非特权角色的组写入被拒绝且不触碰存储.
func TestGroupForbidden(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpsertGroup(context.Background(), studentActor, &types.UpsertGroupRequest{Name: "studio-3C"})
	assertKind(t, err, KindForbidden)

	if n := countRows(t, svc.db, &model.Group{}); n != 0 {
		t.Errorf("expected no group rows after denial, got %d", n)
	}
}

// TestListGroups 列表按名字排序返回全部组.
func TestListGroups(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		if _, err := svc.GetOrCreateGroup(ctx, staffActor, &types.GetOrCreateGroupRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	groups, err := svc.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	want := []string{"alpha", "mike", "zulu"}
	for i, g := range groups {
		if g.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], g.Name)
		}
	}
}
