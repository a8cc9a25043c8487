package config

// 布局配置常量
// 本文件定义默认窗口参数，以及由 EditorConfig 推导出的 UI 布局（屏幕坐标）

const (
	DefaultWindowTitle  = "pupik"
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultBackground   = "#bfb3ff" // rgb(0.75, 0.70, 1.0)

	// DefaultCursorDepth 工具光标的深度，新元素在其基础上随机后退
	DefaultCursorDepth = 900.0

	// DefaultDepthJitter 新元素深度的随机扰动范围
	DefaultDepthJitter = 100.0

	DefaultPaletteBarRatio = 0.15
	DefaultButtonSize      = 80.0

	DefaultExportDir  = "structures"
	DefaultExportName = "export"

	// UIDepth UI 元素的绘制深度，总在已放置元素之上
	UIDepth = 1000.0
)

// Rect 屏幕坐标矩形（左上角 + 尺寸）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains 检查点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Layout 由配置推导出的 UI 区域（屏幕坐标）
type Layout struct {
	PaletteBar     Rect
	PaletteButtons []Rect // 与 EditorConfig.Palette.Items 一一对应
	EraseButton    Rect
	ExportButton   Rect
	ExportPanel    Rect
}

// CalculateLayout 计算编辑器的 UI 布局
//
// 调色板占据窗口底部整行，按条目数等分；
// 橡皮擦和导出按钮靠右排列，导出面板位于导出按钮下方。
func CalculateLayout(cfg *EditorConfig) Layout {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	barHeight := h * cfg.Palette.BarHeightRatio
	layout := Layout{
		PaletteBar: Rect{X: 0, Y: h - barHeight, Width: w, Height: barHeight},
	}

	n := len(cfg.Palette.Items)
	if n > 0 {
		cellWidth := w / float64(n)
		for i := 0; i < n; i++ {
			layout.PaletteButtons = append(layout.PaletteButtons, Rect{
				X:      float64(i) * cellWidth,
				Y:      h - barHeight,
				Width:  cellWidth,
				Height: barHeight,
			})
		}
	}

	size := cfg.Buttons.Size
	right := w - w*cfg.Buttons.RightRatio
	layout.EraseButton = Rect{X: right - size, Y: h * cfg.Buttons.EraseTopRatio, Width: size, Height: size}
	layout.ExportButton = Rect{X: right - size, Y: h * cfg.Buttons.ExportTopRatio, Width: size, Height: size}

	layout.ExportPanel = Rect{
		X:      right - cfg.ExportPanel.Width,
		Y:      h * cfg.ExportPanel.TopRatio,
		Width:  cfg.ExportPanel.Width,
		Height: cfg.ExportPanel.Height,
	}

	return layout
}

// Obstacles 返回所有会阻挡放置的 UI 区域
func (l Layout) Obstacles() []Rect {
	rects := []Rect{l.PaletteBar, l.EraseButton, l.ExportButton}
	if l.ExportPanel.Width > 0 && l.ExportPanel.Height > 0 {
		rects = append(rects, l.ExportPanel)
	}
	return rects
}
