package entities

import (
	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/gonewx/pupik/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport 逻辑屏幕尺寸，用于屏幕坐标到世界坐标的转换
type Viewport struct {
	Width, Height float64
}

// NewUIObstacle 为一个屏幕区域创建 UI 遮挡实体（存储为世界坐标中心 + 半尺寸）
func NewUIObstacle(em *ecs.EntityManager, vp Viewport, rect config.Rect) ecs.EntityID {
	cx, cy := rect.Center()
	wx, wy := utils.ScreenToWorld(cx, cy, vp.Width, vp.Height)

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: wx, Y: wy, Z: config.UIDepth})
	em.AddComponent(entityID, &components.UIObstacleComponent{
		HalfWidth:  rect.Width / 2,
		HalfHeight: rect.Height / 2,
	})
	return entityID
}

// NewToolButton 创建工具栏按钮（调色板、橡皮擦、导出）
func NewToolButton(em *ecs.EntityManager, vp Viewport, kind components.ToolButtonKind, template types.TemplateID, rect config.Rect, icon *ebiten.Image) ecs.EntityID {
	cx, cy := rect.Center()
	wx, wy := utils.ScreenToWorld(cx, cy, vp.Width, vp.Height)

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: wx, Y: wy, Z: config.UIDepth})
	em.AddComponent(entityID, &components.ToolButtonComponent{
		Kind:     kind,
		Template: template,
		Width:    rect.Width,
		Height:   rect.Height,
		Icon:     icon,
	})
	return entityID
}

// NewTextInput 创建导出面板中的输入框
func NewTextInput(em *ecs.EntityManager, kind components.TextFieldKind, label, initial string, rect config.Rect) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TextInputComponent{
		Kind:      kind,
		Label:     label,
		Text:      initial,
		X:         rect.X,
		Y:         rect.Y,
		Width:     rect.Width,
		Height:    rect.Height,
		MaxLength: 32,
	})
	return entityID
}
