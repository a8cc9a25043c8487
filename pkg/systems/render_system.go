package systems

import (
	"image/color"
	"sort"
	"strings"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	paletteBarColor  = color.NRGBA{A: 51}
	buttonBorder     = color.NRGBA{A: 153}
	panelBackground  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	fieldBackground  = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	fieldFocusBorder = color.NRGBA{R: 90, G: 70, B: 200, A: 255}
	labelColor       = color.NRGBA{A: 255}
	errorColor       = color.NRGBA{R: 220, A: 255}
	hoverOutline     = color.NRGBA{R: 220, G: 40, B: 40, A: 200}
)

// ButtonFill 按钮背景色
// 未选中按钮为半透明黑色，选中按钮为粉色，按下时最深
func ButtonFill(state components.UIState, selected bool) color.NRGBA {
	if selected {
		pink := color.NRGBA{R: 255, G: 204, B: 230}
		switch state {
		case components.UIClicked:
			pink.A = 153
		case components.UIHovered:
			pink.A = 128
		default:
			pink.A = 102
		}
		return pink
	}

	switch state {
	case components.UIClicked:
		return color.NRGBA{A: 153}
	case components.UIHovered:
		return color.NRGBA{A: 102}
	}
	return color.NRGBA{}
}

// RenderSystem 渲染系统
// 绘制顺序：已放置元素和工具光标（按 Z 升序），调色板与按钮，导出面板
type RenderSystem struct {
	entityManager *ecs.EntityManager
	width, height float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, width, height float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		width:         width,
		height:        height,
	}
}

// SortedSprites 返回所有可绘制的世界实体，按绘制顺序排列
// Z 升序；Z 相同时ID较小的后绘制，与擦除时"先出现者优先"一致
func (s *RenderSystem) SortedSprites() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	z := make(map[ecs.EntityID]float64, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		z[id] = pos.Z
	}
	sort.Slice(ids, func(i, j int) bool {
		if z[ids[i]] != z[ids[j]] {
			return z[ids[i]] < z[ids[j]]
		}
		return ids[i] > ids[j]
	})
	return ids
}

// DrawWorld 绘制已放置元素和工具光标
// highlight 为擦除模式下悬停的元素（0 表示无）
func (s *RenderSystem) DrawWorld(screen *ebiten.Image, highlight ecs.EntityID) {
	for _, id := range s.SortedSprites() {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}

		scale := sprite.Scale
		if scale == 0 {
			scale = 1
		}
		bounds := sprite.Image.Bounds()
		w := float64(bounds.Dx()) * scale
		h := float64(bounds.Dy()) * scale
		sx, sy := utils.WorldToScreen(pos.X, pos.Y, s.width, s.height)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx-w/2, sy-h/2)
		screen.DrawImage(sprite.Image, op)

		if id == highlight {
			vector.StrokeRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), 2, hoverOutline, true)
		}
	}
}

// DrawToolbar 绘制调色板背景和所有工具按钮
func (s *RenderSystem) DrawToolbar(screen *ebiten.Image, paletteBar config.Rect) {
	vector.DrawFilledRect(screen, float32(paletteBar.X), float32(paletteBar.Y), float32(paletteBar.Width), float32(paletteBar.Height), paletteBarColor, false)

	buttons := ecs.GetEntitiesWith2[*components.ToolButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range buttons {
		button, _ := ecs.GetComponent[*components.ToolButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		cx, cy := utils.WorldToScreen(pos.X, pos.Y, s.width, s.height)
		x := cx - button.Width/2
		y := cy - button.Height/2

		fill := ButtonFill(button.State, button.Selected)
		if fill.A > 0 {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), fill, false)
		}
		if button.Kind != components.ToolButtonTemplate {
			vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 1, buttonBorder, false)
		}

		if button.Icon != nil {
			drawFitted(screen, button.Icon, cx, cy, button.Width*0.8, button.Height*0.8)
		}
	}
}

// drawFitted 等比缩放图像使其放入 maxW×maxH，并以 (cx, cy) 为中心绘制
func drawFitted(screen, img *ebiten.Image, cx, cy, maxW, maxH float64) {
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}
	scale := maxW / w
	if maxH/h < scale {
		scale = maxH / h
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, cy-h*scale/2)
	screen.DrawImage(img, op)
}

// DrawExportPanel 绘制导出面板：背景、两个输入框、校验提示、示例重量和导出状态
func (s *RenderSystem) DrawExportPanel(screen *ebiten.Image, rect config.Rect, panel *ExportPanelSystem) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), panelBackground, false)

	var bottom float64
	for _, id := range []ecs.EntityID{panel.fileField, panel.weightField} {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.drawTextField(screen, input)
		if b := input.Y + input.Height; b > bottom {
			bottom = b
		}
	}

	lineY := bottom + 6
	if panel.ValidationMessage != "" {
		utils.DrawText(screen, panel.ValidationMessage, rect.X+10, lineY, errorColor)
		lineY += 16
	}

	for _, line := range strings.Split(WeightHint, "\n") {
		utils.DrawText(screen, line, rect.X+10, lineY, labelColor)
		lineY += 14
	}

	if panel.Status != "" {
		clr := labelColor
		if panel.StatusIsError {
			clr = errorColor
		}
		utils.DrawText(screen, panel.Status, rect.X+10, rect.Y+rect.Height+4, clr)
	}
}

// drawTextField 绘制标签、输入框和闪烁光标
func (s *RenderSystem) drawTextField(screen *ebiten.Image, input *components.TextInputComponent) {
	labelWidth := utils.MeasureText(input.Label)
	utils.DrawText(screen, input.Label, input.X-labelWidth-6, input.Y+3, labelColor)

	vector.DrawFilledRect(screen, float32(input.X), float32(input.Y), float32(input.Width), float32(input.Height), fieldBackground, false)
	if input.IsFocused {
		vector.StrokeRect(screen, float32(input.X), float32(input.Y), float32(input.Width), float32(input.Height), 1, fieldFocusBorder, false)
	}

	textX := input.X + 4
	utils.DrawText(screen, input.Text, textX, input.Y+3, labelColor)

	if input.IsFocused && input.CursorVisible {
		cursorX := textX + utils.MeasureText(input.Text) + 1
		vector.StrokeLine(screen, float32(cursorX), float32(input.Y+3), float32(cursorX), float32(input.Y+input.Height-3), 1, labelColor, false)
	}
}
