package components

import (
	"github.com/gonewx/pupik/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// ToolButtonKind 定义工具栏按钮的功能
type ToolButtonKind int

const (
	// ToolButtonTemplate 调色板按钮，选择一个模板并进入建造模式
	ToolButtonTemplate ToolButtonKind = iota
	// ToolButtonErase 橡皮擦按钮，进入擦除模式
	ToolButtonErase
	// ToolButtonExport 导出按钮
	ToolButtonExport
)

// ToolButtonComponent 工具栏按钮组件
//
// 纯数据组件：位置取自 PositionComponent（按钮中心，世界坐标），
// 状态由 ToolbarSystem 每帧更新，由 ToolbarRenderSystem 绘制。
type ToolButtonComponent struct {
	Kind     ToolButtonKind
	Template types.TemplateID // 仅 ToolButtonTemplate 使用

	Width  float64
	Height float64

	// Icon 按钮图标（可为 nil）
	Icon *ebiten.Image

	State    UIState
	Selected bool

	// PressedInside 记录按下是否发生在按钮内，松开前不会重复触发
	PressedInside bool
}
