package render

import (
	"image/color"

	"github.com/decker502/bezierdemo/pkg/geometry"
	"github.com/decker502/bezierdemo/pkg/layout"
)

// BallLineRenderer 小球连线的绘制编排
//
// 每帧的绘制顺序固定：
//  1. 动态球
//  2. 从左到右依次绘制静态球，紧接着绘制它与动态球之间的连接曲线（如果需要）
type BallLineRenderer struct {
	BallColor color.Color        // 小球与连接曲线颜色
	MergeRule geometry.MergeRule // 融合判定规则
}

// NewBallLineRenderer 创建绘制编排器
func NewBallLineRenderer(clr color.Color, rule geometry.MergeRule) *BallLineRenderer {
	return &BallLineRenderer{BallColor: clr, MergeRule: rule}
}

// Render 在 canvas 上绘制进度 progress 时的一帧
// l 为 nil（尚未布局）时不绘制任何内容
func (r *BallLineRenderer) Render(canvas Canvas, l *layout.Layout, progress float64) {
	if l == nil {
		return
	}

	dynamic := l.Dynamic(progress)
	canvas.DrawFilledCircle(dynamic.X, dynamic.Y, dynamic.Radius, r.BallColor)

	for _, ball := range l.Static {
		canvas.DrawFilledCircle(ball.X, ball.Y, ball.Radius, r.BallColor)

		if geometry.ShouldConnect(r.MergeRule, ball, dynamic) {
			canvas.DrawFilledClosedPath(geometry.Connector(ball, dynamic), r.BallColor)
		}
	}
}

// BuildFrame 计算进度 progress 时的一帧绘制指令
func (r *BallLineRenderer) BuildFrame(l *layout.Layout, progress float64) Frame {
	var rec Recorder
	r.Render(&rec, l, progress)
	return rec.Frame()
}
