package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/gonewx/pupik/pkg/types"
	"gopkg.in/yaml.v3"
)

// EditorConfig 编辑器配置（data/editor.yaml）
type EditorConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Cursor      CursorConfig      `yaml:"cursor"`
	Placement   PlacementConfig   `yaml:"placement"`
	Palette     PaletteConfig     `yaml:"palette"`
	Buttons     ButtonsConfig     `yaml:"buttons"`
	ExportPanel ExportPanelConfig `yaml:"exportPanel"`
	Export      ExportConfig      `yaml:"export"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // 十六进制颜色 #rrggbb
}

// CursorConfig 工具光标初始状态
type CursorConfig struct {
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`
	Depth  float64 `yaml:"depth"`
}

// PlacementConfig 放置规则参数
type PlacementConfig struct {
	DepthJitter float64 `yaml:"depthJitter"` // 新元素深度的随机扰动范围 [0, DepthJitter)
}

// PaletteConfig 底部调色板
type PaletteConfig struct {
	BarHeightRatio float64             `yaml:"barHeightRatio"` // 调色板高度占窗口高度的比例
	Items          []PaletteItemConfig `yaml:"items"`
}

// PaletteItemConfig 单个模板的调色板条目
type PaletteItemConfig struct {
	Template string  `yaml:"template"`
	Label    string  `yaml:"label"`
	Width    float64 `yaml:"width"`  // 精灵宽度（像素）
	Height   float64 `yaml:"height"` // 精灵高度（像素）
	Color    string  `yaml:"color"`

	// 以下字段由 validate 解析填充
	TemplateID types.TemplateID `yaml:"-"`
	RGBA       color.RGBA       `yaml:"-"`
}

// ButtonsConfig 右侧功能按钮（橡皮擦、导出）
type ButtonsConfig struct {
	Size           float64 `yaml:"size"`
	RightRatio     float64 `yaml:"rightRatio"`
	EraseTopRatio  float64 `yaml:"eraseTopRatio"`
	ExportTopRatio float64 `yaml:"exportTopRatio"`
}

// ExportPanelConfig 文件名/重量输入面板
type ExportPanelConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TopRatio float64 `yaml:"topRatio"`
}

// ExportConfig 导出文件配置
type ExportConfig struct {
	Dir         string `yaml:"dir"`
	DefaultName string `yaml:"defaultName"`
}

// LoadEditorConfig 从 YAML 文件加载编辑器配置
func LoadEditorConfig(filePath string) (*EditorConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read editor config file: %w", err)
	}
	return ParseEditorConfig(data)
}

// ParseEditorConfig 解析 YAML 数据（用于嵌入的默认配置）
func ParseEditorConfig(data []byte) (*EditorConfig, error) {
	var cfg EditorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse editor config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateEditorConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid editor config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults 为可选字段填充默认值
func applyDefaults(cfg *EditorConfig) {
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Window.Background == "" {
		cfg.Window.Background = DefaultBackground
	}
	if cfg.Cursor.Depth == 0 {
		cfg.Cursor.Depth = DefaultCursorDepth
	}
	if cfg.Placement.DepthJitter == 0 {
		cfg.Placement.DepthJitter = DefaultDepthJitter
	}
	if cfg.Palette.BarHeightRatio == 0 {
		cfg.Palette.BarHeightRatio = DefaultPaletteBarRatio
	}
	if cfg.Buttons.Size == 0 {
		cfg.Buttons.Size = DefaultButtonSize
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = DefaultExportDir
	}
	if cfg.Export.DefaultName == "" {
		cfg.Export.DefaultName = DefaultExportName
	}
}

// validateEditorConfig 验证配置的有效性，并解析模板和颜色
func validateEditorConfig(cfg *EditorConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if _, err := ParseHexColor(cfg.Window.Background); err != nil {
		return fmt.Errorf("window.background: %w", err)
	}

	if cfg.Placement.DepthJitter < 0 {
		return fmt.Errorf("placement.depthJitter must be >= 0, got %.2f", cfg.Placement.DepthJitter)
	}

	if cfg.Palette.BarHeightRatio <= 0 || cfg.Palette.BarHeightRatio >= 1 {
		return fmt.Errorf("palette.barHeightRatio must be in (0, 1), got %.2f", cfg.Palette.BarHeightRatio)
	}
	if len(cfg.Palette.Items) == 0 {
		return fmt.Errorf("palette.items cannot be empty")
	}

	seen := make(map[types.TemplateID]bool)
	for i := range cfg.Palette.Items {
		item := &cfg.Palette.Items[i]

		id, ok := types.ParseTemplate(item.Template)
		if !ok {
			return fmt.Errorf("palette.items[%d]: unknown template %q", i, item.Template)
		}
		if seen[id] {
			return fmt.Errorf("palette.items[%d]: duplicate template %q", i, item.Template)
		}
		seen[id] = true

		if item.Width <= 0 || item.Height <= 0 {
			return fmt.Errorf("palette.items[%d]: sprite size must be positive, got %.1fx%.1f", i, item.Width, item.Height)
		}

		rgba, err := ParseHexColor(item.Color)
		if err != nil {
			return fmt.Errorf("palette.items[%d].color: %w", i, err)
		}

		item.TemplateID = id
		item.RGBA = rgba
		if item.Label == "" {
			item.Label = id.String()
		}
	}

	if strings.ContainsAny(cfg.Export.DefaultName, `./\`) {
		return fmt.Errorf("export.defaultName must be a bare file name, got %q", cfg.Export.DefaultName)
	}

	return nil
}

// PaletteItem 根据模板查找调色板条目
func (c *EditorConfig) PaletteItem(id types.TemplateID) (PaletteItemConfig, bool) {
	for _, item := range c.Palette.Items {
		if item.TemplateID == id {
			return item, true
		}
	}
	return PaletteItemConfig{}, false
}

// BackgroundColor 返回解析后的背景色（配置已通过校验，解析不会失败）
func (c *EditorConfig) BackgroundColor() color.RGBA {
	rgba, _ := ParseHexColor(c.Window.Background)
	return rgba
}

// ParseHexColor 解析 #rrggbb 或 #rrggbbaa 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
