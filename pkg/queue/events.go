package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishMaterialStored 发布 cadet.material.stored 事件。
// 在文件内容写入内容存储且目录行落库后调用，通知下游流程（索引、通知等）。
func PublishMaterialStored(pub message.Publisher, payload MaterialStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicMaterialStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicMaterialStored, msg)
}

// ParseMaterialStored 将 Watermill 消息解析为强类型 Envelope（MaterialStoredPayload）。
func ParseMaterialStored(msg *message.Message) (Message[MaterialStoredPayload], error) {
	return ParseWatermillMessage[MaterialStoredPayload](msg)
}

// PublishMaterialDeleted 发布 cadet.material.deleted 事件。
func PublishMaterialDeleted(pub message.Publisher, payload MaterialDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicMaterialDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicMaterialDeleted, msg)
}

// PublishSourcecastStored 发布 cadet.sourcecast.stored 事件。
func PublishSourcecastStored(pub message.Publisher, payload SourcecastStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicSourcecastStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicSourcecastStored, msg)
}

// PublishSourcecastDeleted 发布 cadet.sourcecast.deleted 事件。
func PublishSourcecastDeleted(pub message.Publisher, payload SourcecastDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicSourcecastDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicSourcecastDeleted, msg)
}

// PublishCategoryCreated 发布 cadet.category.created 事件。
func PublishCategoryCreated(pub message.Publisher, payload CategoryCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicCategoryCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicCategoryCreated, msg)
}

// PublishCategoryDeleted 发布 cadet.category.deleted 事件。
func PublishCategoryDeleted(pub message.Publisher, payload CategoryDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicCategoryDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicCategoryDeleted, msg)
}

// PublishGroupUpserted 发布 cadet.group.upserted 事件。
func PublishGroupUpserted(pub message.Publisher, payload GroupUpsertedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicGroupUpserted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicGroupUpserted, msg)
}
