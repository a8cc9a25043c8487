// Package utils 提供编辑器中常用的工具函数
//
// coordinates.go 提供坐标转换和碰撞检测工具。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点位于窗口中心，X 向右，Y 向上；实体位置与导出文件都使用它
//   - **屏幕坐标**：原点位于窗口左上角，Y 向下；指针输入和 UI 布局使用它
//
// # 核心转换公式
//
//	worldX = screenX - width/2
//	worldY = height/2 - screenY
package utils

// ScreenToWorld 将屏幕坐标转换为世界坐标
func ScreenToWorld(screenX, screenY, width, height float64) (float64, float64) {
	return screenX - width/2, height/2 - screenY
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(worldX, worldY, width, height float64) (float64, float64) {
	return worldX + width/2, height/2 - worldY
}

// AABB 以中心和半尺寸描述的轴对齐矩形
type AABB struct {
	CenterX, CenterY     float64
	HalfWidth, HalfHeight float64
}

// Overlaps 检查两个轴对齐矩形是否相交（边界接触视为相交）
func (a AABB) Overlaps(b AABB) bool {
	return abs(a.CenterX-b.CenterX) <= a.HalfWidth+b.HalfWidth &&
		abs(a.CenterY-b.CenterY) <= a.HalfHeight+b.HalfHeight
}

// ContainsPoint 检查点是否位于矩形内（含边界）
func (a AABB) ContainsPoint(x, y float64) bool {
	return abs(x-a.CenterX) <= a.HalfWidth && abs(y-a.CenterY) <= a.HalfHeight
}

// PointFootprint 返回以 (x, y) 为中心的 1×1 矩形，用于工具光标与 UI 的重叠判定
func PointFootprint(x, y float64) AABB {
	return AABB{CenterX: x, CenterY: y, HalfWidth: 0.5, HalfHeight: 0.5}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
