package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appcache "github.com/chrisgzf/cadet/pkg/cache"
	"github.com/chrisgzf/cadet/pkg/internal/storage/kv"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

func newCacheTestRouter(t *testing.T, hits *atomic.Int32) *gin.Engine {
	t.Helper()

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create kv store: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/:id", middleware.CacheMiddleware(middleware.DefaultCacheConfig(appcache.NewCache(store))), func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	return r
}

func doCacheRequest(r *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)

	for k, v := range header {
		req.Header.Set(k, v)
	}

	r.ServeHTTP(w, req)

	return w
}

// TestCacheMissHeaderOnFirstResponse 首次（未命中）响应就要带上 X-Cache: MISS，
// 而不是只有缓存回放才有标记.
func TestCacheMissHeaderOnFirstResponse(t *testing.T) {
	var hits atomic.Int32

	r := newCacheTestRouter(t, &hits)

	w := doCacheRequest(r, "/items/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	// Result() 取的是写出响应时的 header 快照，事后补设的 header 不算数
	if got := w.Result().Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("first response X-Cache = %q, want MISS", got)
	}
}

// TestCacheHitServesStoredResponse 第二次请求命中缓存：X-Cache: HIT、带 ETag、
// body 一致且 handler 不再执行；If-None-Match 命中返回 304.
func TestCacheHitServesStoredResponse(t *testing.T) {
	var hits atomic.Int32

	r := newCacheTestRouter(t, &hits)

	first := doCacheRequest(r, "/items/7", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}

	// 写入是异步的，轮询直到命中
	var hit *httptest.ResponseRecorder

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := doCacheRequest(r, "/items/7", nil)
		if w.Header().Get("X-Cache") == "HIT" {
			hit = w
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	if hit == nil {
		t.Fatal("never observed a cache hit")
	}

	if hit.Body.String() != first.Body.String() {
		t.Errorf("cached body %q differs from original %q", hit.Body.String(), first.Body.String())
	}

	etag := hit.Header().Get("ETag")
	if etag == "" {
		t.Fatal("cached response must carry an ETag")
	}

	// 轮询期间可能穿透若干次，但命中之后 handler 不应再执行
	n := hits.Load()

	again := doCacheRequest(r, "/items/7", nil)
	if again.Header().Get("X-Cache") != "HIT" {
		t.Error("expected repeated hit")
	}

	if got := hits.Load(); got != n {
		t.Errorf("handler ran during cache hit: %d -> %d", n, got)
	}

	w := doCacheRequest(r, "/items/7", map[string]string{"If-None-Match": etag})
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional request status = %d, want 304", w.Code)
	}
}

// TestCacheBypassHeader 携带绕过头的请求不命中也不写缓存.
func TestCacheBypassHeader(t *testing.T) {
	var hits atomic.Int32

	r := newCacheTestRouter(t, &hits)

	for i := 0; i < 3; i++ {
		w := doCacheRequest(r, "/items/9", map[string]string{"X-Cache-Bypass": "1"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		if got := w.Header().Get("X-Cache"); got != "" {
			t.Errorf("bypassed response X-Cache = %q, want empty", got)
		}
	}

	if n := hits.Load(); n != 3 {
		t.Errorf("handler ran %d times, want 3", n)
	}
}
