// Package queue 定义消息主题常量与负载封装，供发布/订阅使用.
package queue

// 主题命名规范：cadet.<域>.<动作>，尽量稳定且向后兼容.
// 域：material(目录文件)、sourcecast(录播)、category(目录文件夹)、group(分组)
// 动作：stored/deleted/created/upserted

const (
	// 目录文件领域.
	TopicMaterialStored  = "cadet.material.stored"  // 文件内容已写入内容存储且目录行已落库
	TopicMaterialDeleted = "cadet.material.deleted" // 文件目录行已删除（内容删除可能异步失败）

	// 录播领域.
	TopicSourcecastStored  = "cadet.sourcecast.stored"  // 录播音频已写入内容存储且目录行已落库
	TopicSourcecastDeleted = "cadet.sourcecast.deleted" // 录播目录行已删除

	// 文件夹领域.
	TopicCategoryCreated = "cadet.category.created" // 文件夹创建完成
	TopicCategoryDeleted = "cadet.category.deleted" // 文件夹删除完成（级联删除其子树）

	// 分组领域.
	TopicGroupUpserted = "cadet.group.upserted" // 分组按名称写入或更新
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 内容对象相关主题集合.
	ContentTopics = []string{
		TopicMaterialStored, TopicMaterialDeleted,
		TopicSourcecastStored, TopicSourcecastDeleted,
	}

	// 目录结构相关主题集合.
	CatalogTopics = []string{
		TopicCategoryCreated, TopicCategoryDeleted,
		TopicGroupUpserted,
	}
)
