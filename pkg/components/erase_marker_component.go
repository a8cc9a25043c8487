package components

import "github.com/gonewx/pupik/pkg/ecs"

// EraseMarkerComponent 擦除命中区域，与一个已放置元素一一配对
//
// Item 以实体 ID 引用配对元素（而不是指针），元素被移除后不会留下悬空引用。
// 标记与元素必须在同一次调用中一起销毁，见 entities.DestroyBuiltItem。
type EraseMarkerComponent struct {
	Item  ecs.EntityID
	Depth float64

	// 命中区域的半宽和半高（以标记位置为中心）
	HalfWidth  float64
	HalfHeight float64
}
