package systems

import (
	"log"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/gonewx/pupik/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorSprites 工具光标可显示的图像
type CursorSprites interface {
	Sprite(id types.TemplateID) *ebiten.Image
	Eraser() *ebiten.Image
}

// ToolCursorSystem 工具光标系统
// 每帧把工具光标移动到指针位置，并在模式或模板变化时切换光标图像
type ToolCursorSystem struct {
	entityManager *ecs.EntityManager
	sprites       CursorSprites
	width, height float64
}

// NewToolCursorSystem 创建工具光标系统，并订阅编辑状态变化
func NewToolCursorSystem(em *ecs.EntityManager, state *game.EditorState, sprites CursorSprites, width, height float64) *ToolCursorSystem {
	s := &ToolCursorSystem{
		entityManager: em,
		sprites:       sprites,
		width:         width,
		height:        height,
	}
	state.AddChangeListener(s.onStateChange)
	return s
}

// Update 移动所有工具光标到指针位置
// 指针不可用时光标停在原处
func (s *ToolCursorSystem) Update(ptr utils.PointerState) {
	if !ptr.Available {
		return
	}

	x, y := pointerWorld(ptr, s.width, s.height)
	for _, entityID := range ecs.GetEntitiesWith2[*components.EditorToolComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		pos.X = x
		pos.Y = y
	}
}

// onStateChange 擦除模式显示橡皮擦，建造模式显示当前模板
func (s *ToolCursorSystem) onStateChange(mode game.Mode, template types.TemplateID) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.EditorToolComponent](s.entityManager) {
		tool, _ := ecs.GetComponent[*components.EditorToolComponent](s.entityManager, entityID)
		tool.Template = template
		tool.Erasing = mode == game.ModeErasing

		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)
		if !ok || s.sprites == nil {
			continue
		}
		if tool.Erasing {
			sprite.Image = s.sprites.Eraser()
		} else {
			sprite.Image = s.sprites.Sprite(template)
		}
	}
	log.Printf("[ToolCursorSystem] Cursor switched to %v (template=%v)", mode, template)
}
