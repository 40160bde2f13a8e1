package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/bezierdemo/pkg/app"
	"github.com/decker502/bezierdemo/pkg/config"
	"github.com/decker502/bezierdemo/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "分页配置文件路径（默认使用嵌入的 data/pages.yaml）")
	page       = flag.Int("page", 1, "初始显示的页面（从 1 开始）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在加载配置之前）
	embedded.Init(dataFS)

	demo, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Page:       *page,
	})
	if err != nil {
		// 非 verbose 模式下日志已被静默，错误信息仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer demo.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Bezier Ball Line")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
