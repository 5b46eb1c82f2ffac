package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 内容对象领域 --------------------------

// ObjectRef 标识内容存储中的对象.
type ObjectRef struct {
	Bucket      string `json:"bucket"`
	ObjectKey   string `json:"object_key"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// MaterialStoredPayload 文件上传完成（目录行与内容对象均已写入）.
type MaterialStoredPayload struct {
	MaterialID uint      `json:"material_id"`
	CategoryID *uint     `json:"category_id,omitempty"`
	Title      string    `json:"title"`
	Uploader   string    `json:"uploader"`
	Object     ObjectRef `json:"object"`
}

// MaterialDeletedPayload 文件删除完成.
type MaterialDeletedPayload struct {
	MaterialID uint      `json:"material_id"`
	Object     ObjectRef `json:"object"`
	// ContentRemoved 为 false 表示内容存储删除失败，对象可能残留.
	ContentRemoved bool `json:"content_removed"`
}

// SourcecastStoredPayload 录播上传完成.
type SourcecastStoredPayload struct {
	SourcecastID uint      `json:"sourcecast_id"`
	Title        string    `json:"title"`
	Uploader     string    `json:"uploader"`
	Object       ObjectRef `json:"object"`
}

// SourcecastDeletedPayload 录播删除完成.
type SourcecastDeletedPayload struct {
	SourcecastID   uint      `json:"sourcecast_id"`
	Object         ObjectRef `json:"object"`
	ContentRemoved bool      `json:"content_removed"`
}

// -------------------------- 目录结构领域 --------------------------

// CategoryCreatedPayload 文件夹创建完成.
type CategoryCreatedPayload struct {
	CategoryID uint   `json:"category_id"`
	ParentID   *uint  `json:"parent_id,omitempty"`
	Title      string `json:"title"`
	Uploader   string `json:"uploader"`
}

// CategoryDeletedPayload 文件夹删除完成，子树内的行已被级联删除.
type CategoryDeletedPayload struct {
	CategoryID uint `json:"category_id"`
}

// GroupUpsertedPayload 分组按名称写入或更新.
type GroupUpsertedPayload struct {
	GroupID    uint   `json:"group_id"`
	Name       string `json:"name"`
	LeaderName string `json:"leader_name,omitempty"`
	MentorName string `json:"mentor_name,omitempty"`
	// Created 为 true 表示本次写入新建了行，false 表示命中已有行.
	Created bool `json:"created"`
}
