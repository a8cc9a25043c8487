package entities

import (
	"log"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// BuiltItemSpec 描述一个待创建的已放置元素
type BuiltItemSpec struct {
	Template types.TemplateID
	X, Y     float64
	Depth    float64

	// Sprite 元素精灵（可为 nil），Width/Height 决定擦除命中区域
	Sprite        *ebiten.Image
	Width, Height float64
}

// NewBuiltItem 创建已放置元素及其配对的擦除标记
//
// 返回：
//   - itemID: 元素实体ID
//   - markerID: 擦除标记实体ID（其 Item 字段指向 itemID）
func NewBuiltItem(em *ecs.EntityManager, spec BuiltItemSpec) (itemID, markerID ecs.EntityID) {
	itemID = em.CreateEntity()
	em.AddComponent(itemID, &components.PositionComponent{
		X: spec.X,
		Y: spec.Y,
		Z: spec.Depth,
	})
	em.AddComponent(itemID, &components.SpriteComponent{
		Image: spec.Sprite,
	})
	em.AddComponent(itemID, &components.BuiltItemComponent{
		Template: spec.Template,
		Name:     spec.Template.ExportName(),
		Depth:    spec.Depth,
	})

	markerID = em.CreateEntity()
	em.AddComponent(markerID, &components.PositionComponent{
		X: spec.X,
		Y: spec.Y,
		Z: spec.Depth,
	})
	em.AddComponent(markerID, &components.EraseMarkerComponent{
		Item:       itemID,
		Depth:      spec.Depth,
		HalfWidth:  spec.Width / 2,
		HalfHeight: spec.Height / 2,
	})

	log.Printf("[BuiltItemFactory] Placed %v (item=%d, marker=%d) at (%.1f, %.1f, z=%.2f)",
		spec.Template, itemID, markerID, spec.X, spec.Y, spec.Depth)

	return itemID, markerID
}

// DestroyBuiltItem 同时销毁擦除标记及其配对元素
//
// 两者在同一次调用中标记删除，由 RemoveMarkedEntities 在帧末一起提交，
// 不会出现只剩标记或只剩元素的情况。
//
// 返回被移除的元素ID；markerID 不是擦除标记时返回 false 且不做任何修改。
func DestroyBuiltItem(em *ecs.EntityManager, markerID ecs.EntityID) (ecs.EntityID, bool) {
	marker, ok := ecs.GetComponent[*components.EraseMarkerComponent](em, markerID)
	if !ok {
		return 0, false
	}

	em.DestroyEntity(marker.Item)
	em.DestroyEntity(markerID)

	log.Printf("[BuiltItemFactory] Erased item %d (marker %d)", marker.Item, markerID)
	return marker.Item, true
}

// FindMarker 查找元素对应的擦除标记
func FindMarker(em *ecs.EntityManager, itemID ecs.EntityID) (ecs.EntityID, bool) {
	for _, markerID := range ecs.GetEntitiesWith1[*components.EraseMarkerComponent](em) {
		marker, ok := ecs.GetComponent[*components.EraseMarkerComponent](em, markerID)
		if ok && marker.Item == itemID {
			return markerID, true
		}
	}
	return 0, false
}
