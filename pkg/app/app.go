// Package app 提供编辑器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"

	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/embedded"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/scenes"
	"github.com/gonewx/pupik/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "pupik"

// EmbeddedConfigPath 嵌入的默认编辑器配置
const EmbeddedConfigPath = "data/editor.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 编辑器配置文件路径，为空则使用嵌入的 data/editor.yaml
	ConfigPath string
	// ExportDir 覆盖配置中的导出目录（为空则使用配置值）
	ExportDir string
}

// App 是编辑器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	editorConfig             *config.EditorConfig
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化编辑器应用
//
// 未指定 ConfigPath 时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	editorConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.ExportDir != "" {
		editorConfig.Export.Dir = cfg.ExportDir
	}
	log.Printf("[Config] 窗口 %dx%d, 调色板 %d 项, 导出目录 %s",
		editorConfig.Window.Width, editorConfig.Window.Height, len(editorConfig.Palette.Items), editorConfig.Export.Dir)

	// 设置存储不可用时降级为仅内存
	settingsManager := game.NewSettingsManager(game.OpenStorage(AppName))

	atlas := game.NewSpriteAtlas(editorConfig)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewEditorScene(editorConfig, scenes.EditorDeps{
		Pointer:  utils.NewEbitenPointer(editorConfig.Window.Width, editorConfig.Window.Height),
		Keyboard: utils.EbitenKeyboard{},
		Sprites:  atlas,
		Exporter: game.NewExporter(editorConfig.Export.Dir, editorConfig.Export.DefaultName),
		Settings: settingsManager,
		Random:   rand.Float64,
	}))
	log.Printf("[App] Editor scene started")

	return &App{
		editorConfig: editorConfig,
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 加载编辑器配置
// path 为空时读取嵌入的默认配置
func LoadConfig(path string) (*config.EditorConfig, error) {
	if path != "" {
		// 拼错的键会被 YAML 解码静默忽略，这里只提示不拒绝
		if err := config.ValidateEditorSchemaFile(path); err != nil {
			log.Printf("[Config] Warning: %v", err)
		}
		editorConfig, err := config.LoadEditorConfig(path)
		if err != nil {
			return nil, fmt.Errorf("编辑器配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载编辑器配置: %s", path)
		return editorConfig, nil
	}

	data, err := embedded.ReadFile(EmbeddedConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
	}
	editorConfig, err := config.ParseEditorConfig(data)
	if err != nil {
		return nil, fmt.Errorf("编辑器配置加载失败: %w", err)
	}
	log.Printf("[Config] 使用嵌入的编辑器配置: %s", EmbeddedConfigPath)
	return editorConfig, nil
}

// Update 更新编辑器逻辑
// 每个 tick 调用一次（通常每秒 60 次）
// 窗口关闭时保存场景状态并返回 ebiten.Termination
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] Warning: scene state not saved on exit")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.editorConfig.Window.Width, a.editorConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制编辑器画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色填充 letterbox 区域
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.editorConfig.Window.Width, a.editorConfig.Window.Height
}

// EditorConfig 返回生效的编辑器配置（用于设置窗口标题和尺寸）
func (a *App) EditorConfig() *config.EditorConfig {
	return a.editorConfig
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
