package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标原点位于窗口中心，Y 轴向上（与导出文件中的坐标一致）
// Z 仅用于绘制和交互排序，值越大越靠前
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}
