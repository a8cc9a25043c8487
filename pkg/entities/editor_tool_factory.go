package entities

import (
	"log"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewEditorToolEntity 创建工具光标实体
// 光标在场景启动时创建一次，之后每帧跟随指针移动
// sprite 可为 nil（测试或无渲染环境）
func NewEditorToolEntity(em *ecs.EntityManager, template types.TemplateID, sprite *ebiten.Image, x, y, depth float64) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: x,
		Y: y,
		Z: depth,
	})

	em.AddComponent(entityID, &components.SpriteComponent{
		Image: sprite,
	})

	em.AddComponent(entityID, &components.EditorToolComponent{
		Template: template,
	})

	log.Printf("[EditorToolFactory] Created editor tool (ID: %d, Template: %v) at (%.1f, %.1f, z=%.1f)",
		entityID, template, x, y, depth)

	return entityID
}
