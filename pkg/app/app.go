// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bezierdemo/pkg/animation"
	"github.com/decker502/bezierdemo/pkg/config"
	"github.com/decker502/bezierdemo/pkg/embedded"
	"github.com/decker502/bezierdemo/pkg/game"
	"github.com/decker502/bezierdemo/pkg/scenes"
	"github.com/decker502/bezierdemo/pkg/utils"
)

// TPS 每秒逻辑帧数，Update 的时间增量固定为 1/TPS 秒
const TPS = 60

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 分页配置文件路径，为空则使用 config.DefaultPagesConfigPath
	ConfigPath string
	// Page 初始选中的页面（从 1 开始），0 表示第 1 页
	Page int
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pager                    *scenes.PagerScene
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 桌面端调用此函数前应先调用 embedded.Init() 初始化嵌入资源；
// 默认配置文件不存在时（例如移动端未嵌入 data/）使用内置的三页配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	pages, err := loadPages(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	ebiten.SetTPS(TPS)
	// 画面只在有新帧时重绘，见 PagerScene.Draw
	ebiten.SetScreenClearedEveryFrame(false)

	sceneManager := game.NewSceneManager()
	pager := scenes.NewPagerScene(pages, cfg.Page-1, animation.DefaultDriverOptions())
	sceneManager.SwitchTo(pager)

	log.Printf("[App] 启动完成: %d 页, 初始页面 %d, 移动端 %v, 嵌入资源 %v",
		pager.PageCount(), pager.Selected()+1, utils.IsMobile(), embedded.IsInitialized())

	return &App{
		sceneManager: sceneManager,
		pager:        pager,
	}, nil
}

// loadPages 加载分页配置
// 只有默认路径缺失时回退内置配置，显式指定的文件读取失败直接返回错误
func loadPages(path string) (*config.PagesConfig, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultPagesConfigPath
	}

	pages, err := config.LoadPagesConfig(path)
	if err == nil {
		return pages, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		log.Printf("[App] 未找到 %s，使用内置分页配置", path)
		return config.DefaultPagesConfig(), nil
	}
	return nil, fmt.Errorf("分页配置加载失败: %w", err)
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 TPS 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
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

	a.sceneManager.Update(1.0 / TPS)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑高度固定，宽度跟随窗口宽高比，Ebitengine 负责缩放；
// 宽度变化时分页场景调整 View 区域，小球重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := logicalSize(outsideWidth, outsideHeight)
	a.pager.Resize(w, h)
	return w, h
}

// logicalSize 按窗口宽高比换算逻辑屏幕尺寸
// 窗口尺寸无效（最小化）时使用默认尺寸
func logicalSize(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.WindowWidth, config.WindowHeight
	}
	w := outsideWidth * config.WindowHeight / outsideHeight
	if w < config.MinWindowWidth {
		w = config.MinWindowWidth
	}
	return w, config.WindowHeight
}

// Close 退出当前场景，停止所有动画
func (a *App) Close() {
	a.sceneManager.Close()
	log.Printf("[App] 已关闭")
}
