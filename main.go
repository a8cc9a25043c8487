package main

import (
	"flag"
	"log"

	"github.com/gonewx/pupik/pkg/app"
	"github.com/gonewx/pupik/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "编辑器配置文件路径（默认使用内置 data/editor.yaml）")
	exportDir  = flag.String("export-dir", "", "导出目录（覆盖配置中的 export.dir）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	editor, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ExportDir:  *exportDir,
	})
	if err != nil {
		log.Fatalf("编辑器初始化失败: %v", err)
	}

	window := editor.EditorConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// 关闭窗口时由 App.Update 保存设置后退出
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
