package components

// UIObstacleComponent 屏幕上被 UI 占据的轴对齐矩形
// 中心取自 PositionComponent，指针位于其中时不允许放置元素
type UIObstacleComponent struct {
	HalfWidth  float64
	HalfHeight float64
}
