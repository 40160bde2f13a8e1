package widget

import (
	"errors"
	"log"

	"github.com/decker502/bezierdemo/pkg/animation"
	"github.com/decker502/bezierdemo/pkg/config"
	"github.com/decker502/bezierdemo/pkg/layout"
	"github.com/decker502/bezierdemo/pkg/render"
)

// BallLineView 小球连线 View
//
// 生命周期：
//   - Attach / SetVisible(true)：开始往返动画
//   - Detach / SetVisible(false)：停止动画并重绘一次
//   - Update(dt)：宿主每帧调用，推进动画并重新计算当前帧
//   - Draw(canvas)：把当前帧绘制到 canvas
//
// 布局在第一次拿到非零尺寸时计算，尺寸变化前一直复用。
type BallLineView struct {
	name      string
	surface   Surface
	cfg       config.BallLineConfig
	cache     *layout.Cache
	renderer  *render.BallLineRenderer
	lifecycle *animation.Lifecycle

	progress float64
	frame    render.Frame
	err      error
	dirty    bool
}

// NewBallLineView 创建 View
// cfg 会先经过 Sanitize，越界字段回退默认值
func NewBallLineView(name string, surface Surface, cfg config.BallLineConfig, opts animation.DriverOptions) *BallLineView {
	cfg = cfg.Sanitize()

	v := &BallLineView{
		name:     name,
		surface:  surface,
		cfg:      cfg,
		cache:    layout.NewCache(),
		renderer: render.NewBallLineRenderer(cfg.Color(), cfg.Rule()),
	}
	v.lifecycle = animation.NewLifecycle(name, animation.NewDriver(opts), animation.Callbacks{
		OnProgress:     v.onProgress,
		RequestRepaint: v.requestRepaint,
	})

	log.Printf("[BallLineView] %s: %d 个静态球, 颜色 %s, 尺寸比例 %.2f, 间距比例 %.2f, 融合规则 %s",
		name, cfg.BallCount, cfg.BallColor, cfg.BallSizeRatio, cfg.BallGapRatio, cfg.MergeRule)
	return v
}

// Name 返回 View 名称
func (v *BallLineView) Name() string {
	return v.name
}

// Config 返回校验后的配置
func (v *BallLineView) Config() config.BallLineConfig {
	return v.cfg
}

// Attach View 挂载到窗口
func (v *BallLineView) Attach() {
	v.lifecycle.OnAttached()
}

// Detach View 从窗口卸载
func (v *BallLineView) Detach() {
	v.lifecycle.OnDetached()
}

// SetVisible 修改可见性
func (v *BallLineView) SetVisible(visible bool) {
	v.lifecycle.OnVisibilityChanged(visible)
}

// State 返回动画状态
func (v *BallLineView) State() animation.State {
	return v.lifecycle.State()
}

// Progress 返回当前动画进度
func (v *BallLineView) Progress() float64 {
	return v.progress
}

// Update 推进 deltaSeconds 秒
func (v *BallLineView) Update(deltaSeconds float64) {
	v.lifecycle.Tick(deltaSeconds)
}

// Layout 返回当前布局，尚未布局时返回 nil
func (v *BallLineView) Layout() *layout.Layout {
	return v.cache.Current()
}

// Frame 返回当前帧的绘制指令
//
// 尺寸尚未就绪时返回空帧和 nil 错误；配置导致无法布局时返回错误。
func (v *BallLineView) Frame() (render.Frame, error) {
	v.rebuild()
	return v.frame, v.err
}

// Draw 把当前帧绘制到 canvas
func (v *BallLineView) Draw(canvas render.Canvas) {
	frame, err := v.Frame()
	if err != nil || frame.Empty() {
		return
	}
	frame.Replay(canvas)
}

// NeedsRepaint 返回自上次调用以来是否有新的帧需要绘制，并清除该标记
func (v *BallLineView) NeedsRepaint() bool {
	dirty := v.dirty
	v.dirty = false
	return dirty
}

func (v *BallLineView) onProgress(progress float64) {
	v.progress = progress
	v.rebuild()
	v.dirty = true
}

func (v *BallLineView) requestRepaint() {
	v.dirty = true
	v.surface.RequestRepaint()
}

func (v *BallLineView) params() layout.Params {
	return layout.Params{
		Width:        float64(v.surface.Width()),
		Height:       float64(v.surface.Height()),
		PaddingLeft:  float64(v.surface.PaddingLeft()),
		PaddingRight: float64(v.surface.PaddingRight()),
		BallCount:    v.cfg.BallCount,
		SizeRatio:    v.cfg.BallSizeRatio,
		GapRatio:     v.cfg.BallGapRatio,
	}
}

// rebuild 确保布局可用并重新计算当前帧
func (v *BallLineView) rebuild() {
	l, err := v.cache.Get(v.params())
	if err != nil {
		v.frame = render.Frame{}
		if errors.Is(err, layout.ErrSurfaceNotReady) {
			// 尚未测量，等下一次有尺寸时再布局
			v.err = nil
			return
		}
		if v.err == nil {
			log.Printf("[BallLineView] %s: 布局失败: %v", v.name, err)
		}
		v.err = err
		return
	}

	v.err = nil
	v.frame = v.renderer.BuildFrame(l, v.progress)
}
