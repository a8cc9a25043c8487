package components

import "github.com/gonewx/pupik/pkg/types"

// EditorToolComponent 标记实体为工具光标（跟随指针移动的放置准星）
//
// 工具光标在场景启动时创建一次，每帧由输入更新位置，会话期间不会销毁。
// 与 PositionComponent 和 SpriteComponent 配合使用。
type EditorToolComponent struct {
	// Template 光标当前显示的模板（擦除模式下仍保留最后选择的模板）
	Template types.TemplateID

	// Erasing 光标是否显示为橡皮擦图标
	Erasing bool

	// Armed 本次按下是否已经消费过（已生成过元素）
	// 只有在指针松开时才会变回 false；按住期间保持 true，不再生成新元素
	Armed bool
}
