package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chrisgzf/cadet/pkg/internal/storage/kv"
)

type folderSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Files int    `json:"files"`
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	return NewCache(store)
}

// TestSetGet 验证基本的写入和读取.
func TestSetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	want := folderSummary{ID: 7, Name: "Week 1", Files: 3}
	if err := Set(ctx, c, "folder:7", want, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := Get[folderSummary](ctx, c, "folder:7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

// TestGetMiss 验证未命中返回错误且不会 panic.
func TestGetMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if _, err := Get[folderSummary](ctx, c, "folder:404"); err == nil {
		t.Error("expected error on cache miss")
	}
}

// TestGetOrSet 验证未命中时调用 getter 并回填.
func TestGetOrSet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	calls := 0
	getter := func() (folderSummary, error) {
		calls++
		return folderSummary{ID: 1, Name: "Root", Files: 0}, nil
	}

	first, err := GetOrSet(ctx, c, "folder:1", getter, time.Minute)
	if err != nil {
		t.Fatalf("first get-or-set: %v", err)
	}

	second, err := GetOrSet(ctx, c, "folder:1", getter, time.Minute)
	if err != nil {
		t.Fatalf("second get-or-set: %v", err)
	}

	if calls != 1 {
		t.Errorf("getter called %d times, want 1", calls)
	}

	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

// TestGetOrSetError 验证 getter 失败时错误透传且不回填.
func TestGetOrSetError(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	wantErr := errors.New("db down")
	if _, err := GetOrSet(ctx, c, "folder:2", func() (folderSummary, error) {
		return folderSummary{}, wantErr
	}, time.Minute); !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}

	exists, err := c.Exists(ctx, "folder:2")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}

	if exists {
		t.Error("failed getter must not populate the cache")
	}
}

// TestGetOrSetSingleflight 验证并发未命中只执行一次 getter.
func TestGetOrSetSingleflight(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	var calls atomic.Int32

	release := make(chan struct{})
	getter := func() (folderSummary, error) {
		calls.Add(1)
		<-release
		return folderSummary{ID: 9, Name: "Shared", Files: 2}, nil
	}

	const workers = 8

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := GetOrSet(ctx, c, "folder:9", getter, time.Minute); err != nil {
				t.Errorf("get-or-set: %v", err)
			}
		}()
	}

	// 给所有 goroutine 时间进入合并窗口
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("getter called %d times, want 1", got)
	}
}

// TestDeleteAndClear 验证删除与清空.
func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := Set(ctx, c, "a", 1, time.Minute); err != nil {
		t.Fatalf("set a: %v", err)
	}

	if err := Set(ctx, c, "b", 2, time.Minute); err != nil {
		t.Fatalf("set b: %v", err)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if exists, _ := c.Exists(ctx, "a"); exists {
		t.Error("key a should be gone after delete")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if exists, _ := c.Exists(ctx, "b"); exists {
		t.Error("key b should be gone after clear")
	}
}

// TestTTLExpiry 验证过期键按未命中处理.
func TestTTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := Set(ctx, c, "short", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := Get[string](ctx, c, "short"); err == nil {
		t.Error("expected miss after TTL expiry")
	}
}
