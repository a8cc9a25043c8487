package systems

import (
	"log"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/entities"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/utils"
)

// MarkerHit 被指针命中的擦除标记
type MarkerHit struct {
	Marker ecs.EntityID
	Item   ecs.EntityID
	Depth  float64
}

// ResolveTopmost 从本帧命中的标记中选出最上层的一个
// Depth 最大者胜出；深度相同时保留先出现的（调用方按实体ID升序传入）
func ResolveTopmost(pressed []MarkerHit) (MarkerHit, bool) {
	if len(pressed) == 0 {
		return MarkerHit{}, false
	}

	best := pressed[0]
	for _, hit := range pressed[1:] {
		if hit.Depth > best.Depth {
			best = hit
		}
	}
	return best, true
}

// ErasureSystem 擦除模式下的元素移除系统
//
// 每帧最多移除一个元素：在指针刚按下的那一帧收集所有命中的标记，
// 选出最上层的一个，与其元素一起标记删除（帧末由 RemoveMarkedEntities 提交）。
type ErasureSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EditorState
	width, height float64

	// hovered 当前悬停（将被擦除）的元素，用于高亮显示
	hovered ecs.EntityID
}

// NewErasureSystem 创建擦除系统
// width/height 为逻辑屏幕尺寸，用于把指针转换为世界坐标
func NewErasureSystem(em *ecs.EntityManager, state *game.EditorState, width, height float64) *ErasureSystem {
	return &ErasureSystem{
		entityManager: em,
		state:         state,
		width:         width,
		height:        height,
	}
}

// Update 执行一帧擦除
// 返回被移除的元素ID；本帧没有移除时返回 false
func (s *ErasureSystem) Update(ptr utils.PointerState) (ecs.EntityID, bool) {
	s.hovered = 0

	if !ptr.Available || s.state.CurrentMode() != game.ModeErasing {
		return 0, false
	}

	x, y := pointerWorld(ptr, s.width, s.height)

	// 指针在 UI 上时不擦除（例如点击橡皮擦按钮本身）
	for _, obstacle := range CollectObstacles(s.entityManager) {
		if obstacle.ContainsPoint(x, y) {
			return 0, false
		}
	}

	top, ok := ResolveTopmost(s.markersAt(x, y))
	if !ok {
		return 0, false
	}
	s.hovered = top.Item

	if !ptr.JustPressed {
		return 0, false
	}

	itemID, ok := entities.DestroyBuiltItem(s.entityManager, top.Marker)
	if !ok {
		return 0, false
	}
	s.hovered = 0
	log.Printf("[ErasureSystem] Erased item %d at depth %.2f", itemID, top.Depth)
	return itemID, true
}

// Hovered 返回当前悬停的元素ID
func (s *ErasureSystem) Hovered() (ecs.EntityID, bool) {
	return s.hovered, s.hovered != 0
}

// markersAt 收集包含点 (x, y) 的所有擦除标记，按实体ID升序
func (s *ErasureSystem) markersAt(x, y float64) []MarkerHit {
	var hits []MarkerHit
	ids := ecs.GetEntitiesWith2[*components.EraseMarkerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		// 本帧已被标记删除的不再参与
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		marker, _ := ecs.GetComponent[*components.EraseMarkerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		box := utils.AABB{
			CenterX:    pos.X,
			CenterY:    pos.Y,
			HalfWidth:  marker.HalfWidth,
			HalfHeight: marker.HalfHeight,
		}
		if box.ContainsPoint(x, y) {
			hits = append(hits, MarkerHit{Marker: id, Item: marker.Item, Depth: marker.Depth})
		}
	}
	return hits
}
