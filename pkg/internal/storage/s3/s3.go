// Package s3 处理内容存储（MinIO）操作.
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/chrisgzf/cadet/pkg/configs"
)

// ObjectStore 内容存储的最小接口，按键存取字节流.
type ObjectStore interface {
	// Store 按键写入对象，返回存储错误.
	Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Remove 按键删除对象，键不存在时也返回成功.
	Remove(ctx context.Context, key string) error
	// Exists 检查对象是否存在.
	Exists(ctx context.Context, key string) (bool, error)
	// ListKeys 列出给定前缀下的所有键.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// Client 包装 MinIO 客户端，实现 ObjectStore.
type Client struct {
	*minio.Client
	bucket string
}

// New 初始化 MinIO 客户端，若 bucket 不存在则尝试创建.
func New(ctx context.Context) (*Client, error) {
	cfg := configs.GetConfig().S3
	endpoint := cfg.Endpoint
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			cfg.UseSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("cadet", configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
	}

	return &Client{Client: cli, bucket: cfg.BucketName}, nil
}

// Store 按键写入对象.
func (c *Client) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := c.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	return nil
}

// Remove 按键删除对象. MinIO 对不存在的键静默成功，天然幂等.
func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}

	return nil
}

// Exists 检查对象是否存在.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}

		return false, fmt.Errorf("stat object %s: %w", key, err)
	}

	return true, nil
}

// ListKeys 列出给定前缀下的所有键.
func (c *Client) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	for obj := range c.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects %s: %w", prefix, obj.Err)
		}

		keys = append(keys, obj.Key)
	}

	return keys, nil
}

// HealthCheck 简单的健康检查，通过检查桶是否存在来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.BucketExists(ctx, c.bucket)
	return err
}

// Bucket 返回当前使用的桶名.
func (c *Client) Bucket() string {
	return c.bucket
}

// Close 关闭连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}
