package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// defaultFace 编辑器 UI 使用的位图字体（无需加载字体文件）
var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// DefaultFace 返回 UI 默认字体
func DefaultFace() text.Face {
	return defaultFace
}

// MeasureText 返回文本在默认字体下的宽度（像素）
func MeasureText(s string) float64 {
	return text.Advance(s, defaultFace)
}

// DrawText 在屏幕坐标 (x, y) 处绘制文本（左上角对齐）
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, defaultFace, op)
}

// DrawTextCentered 以 (cx, cy) 为中心绘制文本
func DrawTextCentered(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, defaultFace, op)
}
