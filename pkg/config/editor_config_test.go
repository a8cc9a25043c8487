package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/pupik/pkg/types"
)

const testEditorYAML = `
window:
  width: 800
  height: 600
palette:
  items:
    - template: planet
      width: 100
      height: 100
      color: "#f2994a"
    - template: rainbow
      label: Duha
      width: 21
      height: 10
      color: "#eb575780"
buttons:
  size: 80
  rightRatio: 0.03
  eraseTopRatio: 0.03
  exportTopRatio: 0.15
exportPanel:
  width: 300
  height: 160
  topRatio: 0.3
`

func TestParseEditorConfig(t *testing.T) {
	cfg, err := ParseEditorConfig([]byte(testEditorYAML))
	if err != nil {
		t.Fatalf("ParseEditorConfig failed: %v", err)
	}

	// 默认值
	if cfg.Window.Title != DefaultWindowTitle {
		t.Errorf("Expected default title %q, got %q", DefaultWindowTitle, cfg.Window.Title)
	}
	if cfg.Cursor.Depth != DefaultCursorDepth {
		t.Errorf("Expected default cursor depth %.0f, got %.0f", DefaultCursorDepth, cfg.Cursor.Depth)
	}
	if cfg.Placement.DepthJitter != DefaultDepthJitter {
		t.Errorf("Expected default depth jitter %.0f, got %.0f", DefaultDepthJitter, cfg.Placement.DepthJitter)
	}
	if cfg.Export.Dir != DefaultExportDir || cfg.Export.DefaultName != DefaultExportName {
		t.Errorf("Unexpected export defaults: %+v", cfg.Export)
	}

	// 模板与颜色解析
	planet, ok := cfg.PaletteItem(types.TemplatePlanet)
	if !ok {
		t.Fatal("Expected planet palette item")
	}
	if planet.Label != "Planet" {
		t.Errorf("Expected default label Planet, got %q", planet.Label)
	}
	if planet.RGBA.R != 0xf2 || planet.RGBA.A != 0xff {
		t.Errorf("Unexpected planet color %+v", planet.RGBA)
	}

	rainbow, ok := cfg.PaletteItem(types.TemplateRainbow)
	if !ok || rainbow.Label != "Duha" || rainbow.RGBA.A != 0x80 {
		t.Errorf("Unexpected rainbow item %+v", rainbow)
	}

	if _, ok := cfg.PaletteItem(types.TemplatePlane); ok {
		t.Error("Plane is not configured and should not be found")
	}
}

func TestParseEditorConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty palette",
			yaml:    "window: {width: 10, height: 10}\n",
			wantErr: "palette.items cannot be empty",
		},
		{
			name: "unknown template",
			yaml: `palette:
  items:
    - {template: unicorn, width: 1, height: 1, color: "#000000"}
`,
			wantErr: "unknown template",
		},
		{
			name: "duplicate template",
			yaml: `palette:
  items:
    - {template: plane, width: 1, height: 1, color: "#000000"}
    - {template: Plane, width: 1, height: 1, color: "#000000"}
`,
			wantErr: "duplicate template",
		},
		{
			name: "bad color",
			yaml: `palette:
  items:
    - {template: plane, width: 1, height: 1, color: "blue"}
`,
			wantErr: "invalid color",
		},
		{
			name: "zero size",
			yaml: `palette:
  items:
    - {template: plane, width: 0, height: 1, color: "#000000"}
`,
			wantErr: "sprite size must be positive",
		},
		{
			name: "bad default name",
			yaml: `palette:
  items:
    - {template: plane, width: 1, height: 1, color: "#000000"}
export:
  defaultName: ../escape
`,
			wantErr: "bare file name",
		},
		{
			name:    "malformed yaml",
			yaml:    "window: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEditorConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadEditorConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte(testEditorYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("LoadEditorConfig failed: %v", err)
	}
	if len(cfg.Palette.Items) != 2 {
		t.Errorf("Expected 2 palette items, got %d", len(cfg.Palette.Items))
	}

	if _, err := LoadEditorConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestBundledEditorConfig 验证仓库自带的 data/editor.yaml 合法
func TestBundledEditorConfig(t *testing.T) {
	cfg, err := LoadEditorConfig(filepath.Join("..", "..", "data", "editor.yaml"))
	if err != nil {
		t.Fatalf("bundled editor.yaml is invalid: %v", err)
	}
	for _, tmpl := range types.AllTemplates {
		if _, ok := cfg.PaletteItem(tmpl); !ok {
			t.Errorf("bundled palette is missing %v", tmpl)
		}
	}
}
