package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/pupik/pkg/config"
)

func main() {
	path := flag.String("config", "data/editor.yaml", "编辑器配置文件路径")
	flag.Parse()

	if err := config.ValidateEditorSchemaFile(*path); err != nil {
		fmt.Printf("❌ 结构检查失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 符合 %s\n", config.EditorSchemaURL)

	cfg, err := config.LoadEditorConfig(*path)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确: %s\n", *path)
	fmt.Printf("✅ 窗口: %s (%dx%d)\n", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	fmt.Printf("✅ 调色板条目数量: %d\n", len(cfg.Palette.Items))
	for i, item := range cfg.Palette.Items {
		fmt.Printf("   %d. %-10s %-12s %.0fx%.0f %s\n", i+1, item.Template, item.Label, item.Width, item.Height, item.Color)
	}

	layout := config.CalculateLayout(cfg)
	fmt.Printf("✅ 导出目录: %s (默认文件名 %s)\n", cfg.Export.Dir, cfg.Export.DefaultName)
	fmt.Printf("✅ UI 遮挡区域: %d 个\n", len(layout.Obstacles()))
}
