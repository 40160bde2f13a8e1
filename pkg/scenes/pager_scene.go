package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/bezierdemo/pkg/animation"
	"github.com/decker502/bezierdemo/pkg/config"
	"github.com/decker502/bezierdemo/pkg/input"
	"github.com/decker502/bezierdemo/pkg/render/ebitenrender"
	"github.com/decker502/bezierdemo/pkg/widget"
)

const (
	// swipeThreshold 水平滑动超过该距离（像素）切换页面
	swipeThreshold = 60
	// tabIndicatorHeight 选中标签下方指示条高度
	tabIndicatorHeight = 3

	// ebitenutil.DebugPrint 字符尺寸
	debugCharWidth  = 6
	debugCharHeight = 16
)

var (
	backgroundColor   = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	tabBarColor       = color.RGBA{R: 48, G: 63, B: 159, A: 255}
	tabSelectedColor  = color.RGBA{R: 63, G: 81, B: 181, A: 255}
	tabIndicatorColor = color.RGBA{R: 255, G: 193, B: 7, A: 255}
)

// digitKeys 数字键 1-9 对应第 1-9 页
var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// pagerPage 一个标签页：一块屏幕区域 + 一个小球连线 View
type pagerPage struct {
	title string
	rect  *widget.Rect
	view  *widget.BallLineView
}

// PagerScene 顶部标签栏 + 分页的小球连线演示
//
// 同一时刻只有选中的页面可见：切换标签时旧页面收到不可见事件（停止动画），
// 新页面收到可见事件（从头开始往返动画）。
//
// 切换方式：
//   - 键盘 ←/→ 切换到上一页/下一页，1-9 直接跳转
//   - 点击或触摸标签栏
//   - 在内容区域左右滑动
type PagerScene struct {
	pages    []*pagerPage
	selected int
	entered  bool

	// width, height 逻辑屏幕尺寸，窗口大小变化时由 Resize 更新
	width, height int

	gestures *input.GestureTracker
	canvas   *ebitenrender.Canvas

	// redraw 下一次 Draw 必须完整重绘（首帧、切换标签）
	redraw bool
}

// NewPagerScene 根据分页配置创建场景
//
// 参数：
//   - cfg: 分页配置（至少一页）
//   - initial: 初始选中的页面下标，越界时使用第 0 页
//   - opts: 每个 View 的动画驱动参数，缓动函数由各页面配置的 easing 决定
func NewPagerScene(cfg *config.PagesConfig, initial int, opts animation.DriverOptions) *PagerScene {
	s := &PagerScene{
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		gestures: input.NewGestureTracker(swipeThreshold),
		redraw:   true,
	}

	viewY := viewTop(s.height)
	for i, pageCfg := range cfg.Pages {
		rect := widget.NewRect(0, viewY, s.width, config.ViewHeight, pageCfg.Padding, pageCfg.Padding)
		pageOpts := opts
		pageOpts.Easing = pageCfg.EasingFunc()
		name := fmt.Sprintf("page-%d", i+1)
		s.pages = append(s.pages, &pagerPage{
			title: pageCfg.Title,
			rect:  rect,
			view:  widget.NewBallLineView(name, rect, pageCfg.BallLine, pageOpts),
		})
	}

	if initial >= 0 && initial < len(s.pages) {
		s.selected = initial
	} else if initial != 0 {
		log.Printf("[PagerScene] 初始页面 %d 越界（共 %d 页），使用第 1 页", initial+1, len(s.pages))
	}

	log.Printf("[PagerScene] 创建 %d 个页面，初始页面 %d", len(s.pages), s.selected+1)
	return s
}

// viewTop View 在标签栏下方区域内垂直居中时的顶部 Y
func viewTop(screenHeight int) int {
	return config.TabBarHeight + (screenHeight-config.TabBarHeight-config.ViewHeight)/2
}

// Resize 逻辑屏幕尺寸变化时调整标签栏和所有页面的区域
// 区域尺寸变化会让 View 在下一帧重新布局
func (s *PagerScene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	log.Printf("[PagerScene] 屏幕尺寸 %dx%d -> %dx%d", s.width, s.height, width, height)

	s.width, s.height = width, height
	viewY := viewTop(height)
	for _, p := range s.pages {
		p.rect.SetBounds(0, viewY, width, config.ViewHeight)
	}
	s.redraw = true
}

// OnEnter 实现 game.Lifecycle：挂载所有 View，只让选中页面可见
func (s *PagerScene) OnEnter() {
	s.entered = true
	for i, p := range s.pages {
		p.view.Attach()
		if i != s.selected {
			p.view.SetVisible(false)
		}
	}
	s.redraw = true
}

// OnExit 实现 game.Lifecycle：卸载所有 View
func (s *PagerScene) OnExit() {
	s.entered = false
	for _, p := range s.pages {
		p.view.Detach()
	}
}

// PageCount 返回页面数量
func (s *PagerScene) PageCount() int {
	return len(s.pages)
}

// Selected 返回当前选中的页面下标
func (s *PagerScene) Selected() int {
	return s.selected
}

// View 返回第 index 页的 View，越界返回 nil
func (s *PagerScene) View(index int) *widget.BallLineView {
	if index < 0 || index >= len(s.pages) {
		return nil
	}
	return s.pages[index].view
}

// SelectPage 切换到第 index 页
// 越界或与当前页相同时忽略，返回是否发生了切换
func (s *PagerScene) SelectPage(index int) bool {
	if index < 0 || index >= len(s.pages) || index == s.selected {
		return false
	}

	old := s.selected
	s.selected = index
	if s.entered {
		s.pages[old].view.SetVisible(false)
		s.pages[index].view.SetVisible(true)
	}
	s.redraw = true

	log.Printf("[PagerScene] 切换标签: %s → %s", s.pages[old].title, s.pages[index].title)
	return true
}

// Update 处理标签切换输入并推进所有 View
func (s *PagerScene) Update(deltaTime float64) {
	s.handleInput()
	s.advance(deltaTime)
}

// advance 推进所有 View（停止的 View 不会前进）
func (s *PagerScene) advance(deltaTime float64) {
	for _, p := range s.pages {
		p.view.Update(deltaTime)
	}
}

func (s *PagerScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.SelectPage(s.selected - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.SelectPage(s.selected + 1)
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectPage(i)
		}
	}

	s.handleGesture(s.gestures.Poll())
}

// handleGesture 点击标签栏跳转；左滑下一页，右滑上一页
func (s *PagerScene) handleGesture(g input.Gesture) {
	switch g.Kind {
	case input.GestureTap:
		if index, ok := s.tabAt(g.X, g.Y); ok {
			s.SelectPage(index)
		}
	case input.GestureSwipeLeft:
		s.SelectPage(s.selected + 1)
	case input.GestureSwipeRight:
		s.SelectPage(s.selected - 1)
	}
}

// tabAt 返回屏幕坐标 (x, y) 所在的标签下标
func (s *PagerScene) tabAt(x, y int) (int, bool) {
	if len(s.pages) == 0 || y < 0 || y >= config.TabBarHeight || x < 0 || x >= s.width {
		return 0, false
	}
	tabWidth := s.width / len(s.pages)
	index := x / tabWidth
	if index >= len(s.pages) {
		index = len(s.pages) - 1
	}
	return index, true
}

// needsRedraw 返回本帧是否需要重绘，并清除所有页面的重绘标记
func (s *PagerScene) needsRedraw() bool {
	needed := s.redraw
	s.redraw = false
	for i, p := range s.pages {
		viewDirty := p.view.NeedsRepaint()
		rectDirty := p.rect.TakeRepaint()
		if i == s.selected && (viewDirty || rectDirty) {
			needed = true
		}
	}
	return needed
}

// Draw 绘制标签栏和选中的页面
//
// 屏幕不会每帧自动清空，没有新的帧时保留上一帧画面。
func (s *PagerScene) Draw(screen *ebiten.Image) {
	if !s.needsRedraw() {
		return
	}

	screen.Fill(backgroundColor)
	s.drawTabBar(screen)

	if len(s.pages) == 0 {
		return
	}
	p := s.pages[s.selected]
	if s.canvas == nil || s.canvas.Target != screen {
		s.canvas = ebitenrender.NewCanvas(screen, 0, 0)
	}
	s.canvas.OffsetX = float64(p.rect.X)
	s.canvas.OffsetY = float64(p.rect.Y)
	p.view.Draw(s.canvas)

	status := fmt.Sprintf("%s  %s  progress %.2f", p.view.Name(), p.view.State(), p.view.Progress())
	ebitenutil.DebugPrintAt(screen, status, 10, s.height-debugCharHeight-10)
}

func (s *PagerScene) drawTabBar(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(s.width), config.TabBarHeight, tabBarColor, false)
	if len(s.pages) == 0 {
		return
	}

	tabWidth := s.width / len(s.pages)
	for i, p := range s.pages {
		x := i * tabWidth
		if i == s.selected {
			vector.FillRect(screen, float32(x), 0, float32(tabWidth), config.TabBarHeight, tabSelectedColor, false)
			vector.FillRect(screen, float32(x), config.TabBarHeight-tabIndicatorHeight,
				float32(tabWidth), tabIndicatorHeight, tabIndicatorColor, false)
		}

		textX := x + (tabWidth-len(p.title)*debugCharWidth)/2
		textY := (config.TabBarHeight - debugCharHeight) / 2
		ebitenutil.DebugPrintAt(screen, p.title, textX, textY)
	}
}
