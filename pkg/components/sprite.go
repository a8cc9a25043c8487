package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以实体位置为中心绘制
type SpriteComponent struct {
	Image *ebiten.Image
	Scale float64 // 0 视为 1
}
