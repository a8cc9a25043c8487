package systems

import (
	"log"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/utils"
)

// ToolbarSystem 工具栏交互系统
// 负责调色板、橡皮擦和导出按钮的悬停、按下状态，以及模式切换
//
// 职责：
//   - 检测指针悬停（UIHovered）和按住（UIClicked）
//   - 指针在按钮内刚按下时触发：调色板按钮选择模板，橡皮擦按钮进入擦除模式，导出按钮调用 onExport
//   - 每帧根据 EditorState 同步按钮的 Selected 标志
type ToolbarSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EditorState
	width, height float64

	// onExport 导出按钮按下时调用（可为 nil）
	onExport func()
}

// NewToolbarSystem 创建工具栏交互系统
func NewToolbarSystem(em *ecs.EntityManager, state *game.EditorState, width, height float64, onExport func()) *ToolbarSystem {
	return &ToolbarSystem{
		entityManager: em,
		state:         state,
		width:         width,
		height:        height,
		onExport:      onExport,
	}
}

// Update 更新按钮状态并处理按下
func (s *ToolbarSystem) Update(ptr utils.PointerState) {
	x, y := pointerWorld(ptr, s.width, s.height)

	buttons := ecs.GetEntitiesWith2[*components.ToolButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range buttons {
		button, _ := ecs.GetComponent[*components.ToolButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !ptr.Held {
			button.PressedInside = false
		}

		box := utils.AABB{
			CenterX:    pos.X,
			CenterY:    pos.Y,
			HalfWidth:  button.Width / 2,
			HalfHeight: button.Height / 2,
		}
		inside := ptr.Available && box.ContainsPoint(x, y)

		switch {
		case !inside:
			button.State = components.UINormal
		case ptr.Held:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}

		if inside && ptr.JustPressed && !button.PressedInside {
			button.PressedInside = true
			s.activate(button)
		}
	}

	s.syncSelection(buttons)
}

// activate 触发按钮功能
func (s *ToolbarSystem) activate(button *components.ToolButtonComponent) {
	switch button.Kind {
	case components.ToolButtonTemplate:
		s.state.SelectTemplate(button.Template)
	case components.ToolButtonErase:
		s.state.SelectErase()
	case components.ToolButtonExport:
		log.Printf("[ToolbarSystem] Export button pressed")
		if s.onExport != nil {
			s.onExport()
		}
	}
}

// syncSelection 选中状态只取决于编辑状态：
// 建造模式下当前模板的调色板按钮被选中，擦除模式下橡皮擦按钮被选中
func (s *ToolbarSystem) syncSelection(buttons []ecs.EntityID) {
	mode := s.state.CurrentMode()
	template := s.state.CurrentTemplate()

	for _, entityID := range buttons {
		button, _ := ecs.GetComponent[*components.ToolButtonComponent](s.entityManager, entityID)
		switch button.Kind {
		case components.ToolButtonTemplate:
			button.Selected = mode == game.ModeBuilding && button.Template == template
		case components.ToolButtonErase:
			button.Selected = mode == game.ModeErasing
		default:
			button.Selected = false
		}
	}
}
