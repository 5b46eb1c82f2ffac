package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"

	appcache "github.com/chrisgzf/cadet/pkg/cache"
)

const (
	DefaultMaxBodyBytes = 1 << 20 // 1MB
	defaultCacheTTL     = 30 * time.Second
)

// CacheConfig 响应缓存中间件配置.
type CacheConfig struct {
	Cache *appcache.Cache // 必须: 业务注入的 Cache 实例
	TTL   time.Duration   // 缓存 TTL，默认 30s

	Methods     []string // 允许缓存的 HTTP 方法 (默认 GET,HEAD)
	StatusCodes []int    // 允许缓存的响应状态码 (默认 200)

	KeyFunc     func(*gin.Context) string // 生成缓存键，默认方法+路径+排序query
	Skipper     func(*gin.Context) bool   // 返回 true 跳过缓存
	VaryHeaders []string                  // 参与 Key 的 Header 列表

	BypassHeader string // 请求携带该 header(任意值) 时绕过缓存，默认 X-Cache-Bypass
	MaxBodyBytes int    // 缓存响应体最大字节 (0=不限制)
}

// DefaultCacheConfig 返回一份默认配置.
func DefaultCacheConfig(c *appcache.Cache) CacheConfig {
	return CacheConfig{
		Cache:        c,
		TTL:          defaultCacheTTL,
		Methods:      []string{http.MethodGet, http.MethodHead},
		StatusCodes:  []int{http.StatusOK},
		BypassHeader: "X-Cache-Bypass",
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// cachedResponse 序列化存储结构.
type cachedResponse struct {
	Status   int               `json:"s"`
	Header   map[string]string `json:"h,omitempty"`
	Body     []byte            `json:"b,omitempty"`
	ETag     string            `json:"e,omitempty"`
	StoredAt int64             `json:"t"` // unix nano, 用于 Age
}

// CacheMiddleware 构造响应缓存中间件。命中返回 X-Cache: HIT 并支持
// If-None-Match 304；写入失败不影响主流程。含 no-store/private 的响应
// 不会被缓存。
//
// 使用示例:
//
//	c := cache.NewCache(kvStore)
//	r.GET("/categories/:id", middleware.CacheMiddleware(middleware.DefaultCacheConfig(c)), handle.GetFolder)
func CacheMiddleware(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Cache == nil {
		panic("CacheMiddleware: Cache cannot be nil")
	}

	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{http.MethodGet, http.MethodHead}
	}

	if len(cfg.StatusCodes) == 0 {
		cfg.StatusCodes = []int{http.StatusOK}
	}

	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}

	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return buildCacheKey(c, cfg.VaryHeaders) }
	}

	if cfg.BypassHeader == "" {
		cfg.BypassHeader = "X-Cache-Bypass"
	}

	methodSet := make(map[string]struct{}, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methodSet[strings.ToUpper(m)] = struct{}{}
	}

	statusSet := make(map[int]struct{}, len(cfg.StatusCodes))
	for _, s := range cfg.StatusCodes {
		statusSet[s] = struct{}{}
	}

	return func(c *gin.Context) {
		if cacheBypassed(c, cfg, methodSet) {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)
		if serveCached(c, cfg, key) {
			return
		}

		bw := &bodyCaptureWriter{ResponseWriter: c.Writer, max: cfg.MaxBodyBytes}
		c.Writer = bw

		// 未命中标记要在 handler 写响应之前设置，之后再改 header 已经发不出去
		c.Writer.Header().Set("X-Cache", "MISS")
		c.Next()
		storeResponse(c, cfg, key, bw, statusSet)
	}
}

// buildCacheKey 生成缓存键：方法 + 路由 + 排序 query + 排序 vary headers，
// 再做 xxhash 压缩成短键。query 和 headers 均排序以保证一致性。
func buildCacheKey(c *gin.Context, vary []string) string {
	var b strings.Builder

	b.WriteString(c.Request.Method)
	b.WriteByte(':')

	full := c.FullPath()
	if full == "" { // 未匹配路由时使用原始路径
		full = c.Request.URL.Path
	}

	b.WriteString(full)

	// 路由参数（如 :id）参与 key，否则不同目录会共享缓存条目
	for _, p := range c.Params {
		b.WriteByte('/')
		b.WriteString(p.Value)
	}

	if q := c.Request.URL.Query(); len(q) > 0 {
		keys := make([]string, 0, len(q))
		for k := range q {
			keys = append(keys, k)
		}

		sort.Strings(keys)
		b.WriteByte('?')

		for i, k := range keys {
			if i > 0 {
				b.WriteByte('&')
			}

			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(strings.Join(q[k], ","))
		}
	}

	if len(vary) > 0 {
		sort.Strings(vary)
		b.WriteString("|hv=")

		for i, h := range vary {
			if i > 0 {
				b.WriteByte('&')
			}

			b.WriteString(h)
			b.WriteByte('=')
			b.WriteString(c.GetHeader(h))
		}
	}

	return fmt.Sprintf("rc:%x", xxhash.Sum64String(b.String()))
}

// bodyCaptureWriter 包装响应写入用于捕获 body.
type bodyCaptureWriter struct {
	gin.ResponseWriter

	buf       bytes.Buffer
	max       int
	truncated bool
}

// Write 捕获响应体，超过 max 后停止捕获（该响应不会被缓存）.
func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	if w.max == 0 {
		w.buf.Write(b)
		return w.ResponseWriter.Write(b)
	}

	if !w.truncated {
		remain := w.max - w.buf.Len()

		switch {
		case remain <= 0:
			w.truncated = true
		case len(b) > remain:
			w.buf.Write(b[:remain])
			w.truncated = true
		default:
			w.buf.Write(b)
		}
	}

	return w.ResponseWriter.Write(b)
}

func cacheBypassed(c *gin.Context, cfg CacheConfig, methodSet map[string]struct{}) bool {
	if cfg.Skipper != nil && cfg.Skipper(c) {
		return true
	}

	if _, ok := methodSet[c.Request.Method]; !ok {
		return true
	}

	return c.GetHeader(cfg.BypassHeader) != ""
}

// serveCached 尝试从缓存提供响应，成功返回 true.
func serveCached(c *gin.Context, cfg CacheConfig, key string) bool {
	entry, err := appcache.Get[cachedResponse](c.Request.Context(), cfg.Cache, key)
	if err != nil {
		return false
	}

	h := c.Writer.Header()
	for k, v := range entry.Header {
		h.Set(k, v)
	}

	if entry.ETag != "" {
		h.Set("ETag", entry.ETag)
	}

	age := time.Since(time.Unix(0, entry.StoredAt)).Seconds()
	h.Set("Age", fmt.Sprintf("%.0f", age))
	h.Set("X-Cache", "HIT")

	if entry.ETag != "" && c.GetHeader("If-None-Match") == entry.ETag {
		c.Status(http.StatusNotModified)
		c.Abort()

		return true
	}

	c.Status(entry.Status)

	if c.Request.Method != http.MethodHead {
		_, _ = c.Writer.Write(entry.Body)
	}

	c.Abort()

	return true
}

// storeResponse 将符合条件的响应异步写入缓存.
func storeResponse(c *gin.Context, cfg CacheConfig, key string, bw *bodyCaptureWriter, statusSet map[int]struct{}) {
	status := c.Writer.Status()
	if _, ok := statusSet[status]; !ok {
		return
	}

	if bw.truncated {
		return
	}

	cc := strings.ToLower(c.Writer.Header().Get("Cache-Control"))
	if strings.Contains(cc, "no-store") || strings.Contains(cc, "private") {
		return
	}

	body := bw.buf.Bytes()

	hdr := make(map[string]string)

	for k, v := range c.Writer.Header() {
		// 捕获的是压缩前的 body，传输层头不能进缓存条目；
		// X-Cache 由命中路径自行设置
		switch k {
		case "Content-Encoding", "Content-Length", "Vary", "X-Cache":
			continue
		}

		if len(v) > 0 {
			hdr[k] = v[0]
		}
	}

	// 首次响应不带 ETag：此时 header 早已随响应体发出，只能给缓存命中用
	etag := c.Writer.Header().Get("ETag")
	if etag == "" {
		etag = fmt.Sprintf("%q", fmt.Sprintf("%x", xxhash.Sum64(body)))
		hdr["ETag"] = etag
	}

	entry := cachedResponse{Status: status, Header: hdr, Body: body, ETag: etag, StoredAt: time.Now().UnixNano()}
	go func(ctx context.Context, k string, e cachedResponse, ttl time.Duration) {
		_ = appcache.Set(ctx, cfg.Cache, k, e, ttl)
	}(context.WithoutCancel(c.Request.Context()), key, entry, cfg.TTL)
}
