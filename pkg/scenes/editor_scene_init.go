package scenes

import (
	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/entities"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// 导出面板内部布局（相对面板左上角）
const (
	panelFieldOffsetX = 128.0
	panelFieldOffsetY = 12.0
	panelFieldSpacing = 26.0
	panelFieldHeight  = 18.0
	panelFieldPadding = 10.0
)

// initEntities 创建场景启动时的全部实体
// 返回导出面板两个输入框的实体ID
func (s *EditorScene) initEntities(initial types.TemplateID) (fileField, weightField ecs.EntityID) {
	em := s.entityManager
	vp := entities.Viewport{Width: float64(s.cfg.Window.Width), Height: float64(s.cfg.Window.Height)}

	// UI 遮挡区域
	for _, rect := range s.layout.Obstacles() {
		entities.NewUIObstacle(em, vp, rect)
	}

	// 调色板按钮
	for i, item := range s.cfg.Palette.Items {
		entities.NewToolButton(em, vp, components.ToolButtonTemplate, item.TemplateID, s.layout.PaletteButtons[i], s.sprite(item.TemplateID))
	}

	var eraser, exportGlyph *ebiten.Image
	if s.deps.Sprites != nil {
		eraser = s.deps.Sprites.Eraser()
		exportGlyph = s.deps.Sprites.ExportGlyph()
	}
	entities.NewToolButton(em, vp, components.ToolButtonErase, types.TemplateUnknown, s.layout.EraseButton, eraser)
	entities.NewToolButton(em, vp, components.ToolButtonExport, types.TemplateUnknown, s.layout.ExportButton, exportGlyph)

	// 工具光标
	entities.NewEditorToolEntity(em, initial, s.sprite(initial), s.cfg.Cursor.StartX, s.cfg.Cursor.StartY, s.cfg.Cursor.Depth)

	// 导出面板输入框，初始内容取自上次会话
	var lastName, lastWeight string
	if s.deps.Settings != nil {
		settings := s.deps.Settings.GetSettings()
		lastName, lastWeight = settings.LastFileName, settings.LastWeight
	}

	panel := s.layout.ExportPanel
	fieldWidth := panel.Width - panelFieldOffsetX - panelFieldPadding
	fileField = entities.NewTextInput(em, components.TextFieldFileName, "File name:", lastName, config.Rect{
		X:      panel.X + panelFieldOffsetX,
		Y:      panel.Y + panelFieldOffsetY,
		Width:  fieldWidth,
		Height: panelFieldHeight,
	})
	weightField = entities.NewTextInput(em, components.TextFieldWeight, "Relative weight:", lastWeight, config.Rect{
		X:      panel.X + panelFieldOffsetX,
		Y:      panel.Y + panelFieldOffsetY + panelFieldSpacing,
		Width:  fieldWidth,
		Height: panelFieldHeight,
	})

	return fileField, weightField
}

func (s *EditorScene) sprite(id types.TemplateID) *ebiten.Image {
	if s.deps.Sprites == nil {
		return nil
	}
	return s.deps.Sprites.Sprite(id)
}
