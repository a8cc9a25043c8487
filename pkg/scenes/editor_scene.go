package scenes

import (
	"log"

	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSource 场景需要的全部图像，由 game.SpriteAtlas 实现
type SpriteSource interface {
	systems.SpriteProvider
	Eraser() *ebiten.Image
	ExportGlyph() *ebiten.Image
}

// EditorDeps 编辑器场景的外部依赖
type EditorDeps struct {
	Pointer  systems.PointerSource
	Keyboard systems.KeyboardSource
	Sprites  SpriteSource
	Exporter *game.Exporter
	// Settings 可为 nil（不记录上次输入）
	Settings *game.SettingsManager
	// Random 返回 [0, 1) 的随机数，用于新元素的深度扰动
	Random func() float64
}

// EditorScene 结构编辑器场景
//
// 每帧的更新顺序：
//  1. 读取指针快照
//  2. 工具栏（调色板、橡皮擦、导出按钮）
//  3. 工具光标跟随指针
//  4. 放置（建造模式）或擦除（擦除模式）
//  5. 导出面板（文本输入、导出请求）
//  6. 提交本帧的实体删除
type EditorScene struct {
	cfg           *config.EditorConfig
	layout        config.Layout
	entityManager *ecs.EntityManager
	state         *game.EditorState
	deps          EditorDeps

	toolbarSystem    *systems.ToolbarSystem
	toolCursorSystem *systems.ToolCursorSystem
	placementSystem  *systems.PlacementSystem
	erasureSystem    *systems.ErasureSystem
	exportPanel      *systems.ExportPanelSystem
	renderSystem     *systems.RenderSystem

	// exportRequested 导出按钮在本帧被按下，由导出面板阶段处理
	exportRequested bool
}

// NewEditorScene 创建编辑器场景
func NewEditorScene(cfg *config.EditorConfig, deps EditorDeps) *EditorScene {
	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)

	em := ecs.NewEntityManager()
	initial := cfg.Palette.Items[0].TemplateID
	state := game.NewEditorState(initial)

	s := &EditorScene{
		cfg:           cfg,
		layout:        config.CalculateLayout(cfg),
		entityManager: em,
		state:         state,
		deps:          deps,
	}

	s.toolbarSystem = systems.NewToolbarSystem(em, state, width, height, func() { s.exportRequested = true })
	s.toolCursorSystem = systems.NewToolCursorSystem(em, state, deps.Sprites, width, height)
	s.placementSystem = systems.NewPlacementSystem(em, state, deps.Sprites, &systems.Placer{
		DepthJitter: cfg.Placement.DepthJitter,
		Random:      deps.Random,
	})
	s.erasureSystem = systems.NewErasureSystem(em, state, width, height)
	s.renderSystem = systems.NewRenderSystem(em, width, height)

	fileField, weightField := s.initEntities(initial)
	s.exportPanel = systems.NewExportPanelSystem(em, deps.Keyboard, deps.Exporter, deps.Settings, fileField, weightField)

	log.Printf("[EditorScene] Editor ready: %d palette items, start template %v, export dir %s",
		len(cfg.Palette.Items), initial, deps.Exporter.Dir())
	return s
}

// Update 按固定顺序执行一帧
func (s *EditorScene) Update(deltaTime float64) {
	ptr := s.deps.Pointer.Poll()

	s.toolbarSystem.Update(ptr)
	s.toolCursorSystem.Update(ptr)

	switch s.state.CurrentMode() {
	case game.ModeBuilding:
		s.placementSystem.Update(ptr)
	case game.ModeErasing:
		s.erasureSystem.Update(ptr)
	}

	s.exportPanel.Update(ptr, deltaTime)
	if s.exportRequested {
		s.exportRequested = false
		// 失败只反映在面板状态行，不中断会话
		if _, err := s.exportPanel.RequestExport(); err != nil {
			log.Printf("[EditorScene] Export not written: %v", err)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *EditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.BackgroundColor())

	var highlight ecs.EntityID
	if s.state.CurrentMode() == game.ModeErasing {
		highlight, _ = s.erasureSystem.Hovered()
	}
	s.renderSystem.DrawWorld(screen, highlight)
	s.renderSystem.DrawToolbar(screen, s.layout.PaletteBar)
	s.renderSystem.DrawExportPanel(screen, s.layout.ExportPanel, s.exportPanel)
}

// SaveOnExit 退出时记住导出面板的输入
func (s *EditorScene) SaveOnExit() bool {
	if s.deps.Settings == nil {
		return true
	}

	fileName, weight := s.exportPanel.Fields()
	s.deps.Settings.RememberExport(fileName, weight)
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[EditorScene] Warning: failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// EntityManager 返回场景的实体管理器
func (s *EditorScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// State 返回编辑会话状态
func (s *EditorScene) State() *game.EditorState {
	return s.state
}

// ExportPanel 返回导出面板系统
func (s *EditorScene) ExportPanel() *systems.ExportPanelSystem {
	return s.exportPanel
}
