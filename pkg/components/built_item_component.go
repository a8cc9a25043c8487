package components

import "github.com/gonewx/pupik/pkg/types"

// BuiltItemComponent 标记实体为已放置的结构元素
// 会在导出时按位置和名称写入文件
type BuiltItemComponent struct {
	Template types.TemplateID

	// Name 导出名称，由模板决定（未知模板为空字符串）
	Name string

	// Depth 创建时分配的深度，之后不再修改
	// 与配对擦除标记的 Depth 相同，用于"最上层优先"的擦除判定
	Depth float64
}
