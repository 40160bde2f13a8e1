package render

import (
	"image/color"

	"github.com/decker502/bezierdemo/pkg/geometry"
)

// DrawOpKind 绘制指令类型
type DrawOpKind int

const (
	// DrawCircle 实心圆
	DrawCircle DrawOpKind = iota
	// DrawPath 闭合路径（连接曲线）
	DrawPath
)

// DrawOp 单条绘制指令
type DrawOp struct {
	Kind   DrawOpKind
	Circle geometry.Circle        // Kind == DrawCircle 时有效
	Path   []geometry.PathCommand // Kind == DrawPath 时有效
	Color  color.Color
}

// Frame 一帧的全部绘制指令，按绘制顺序排列
type Frame struct {
	Ops []DrawOp
}

// Replay 将整帧按顺序重放到 canvas
func (f Frame) Replay(canvas Canvas) {
	for _, op := range f.Ops {
		switch op.Kind {
		case DrawCircle:
			canvas.DrawFilledCircle(op.Circle.X, op.Circle.Y, op.Circle.Radius, op.Color)
		case DrawPath:
			canvas.DrawFilledClosedPath(op.Path, op.Color)
		}
	}
}

// Circles 返回帧内所有圆，保持绘制顺序
func (f Frame) Circles() []geometry.Circle {
	var circles []geometry.Circle
	for _, op := range f.Ops {
		if op.Kind == DrawCircle {
			circles = append(circles, op.Circle)
		}
	}
	return circles
}

// Connectors 返回帧内连接曲线的数量
func (f Frame) Connectors() int {
	n := 0
	for _, op := range f.Ops {
		if op.Kind == DrawPath {
			n++
		}
	}
	return n
}

// Empty 帧是否没有任何绘制指令（例如布局尚未就绪）
func (f Frame) Empty() bool {
	return len(f.Ops) == 0
}

// Recorder 记录绘制指令的 Canvas 实现
type Recorder struct {
	frame Frame
}

// DrawFilledCircle 实现 Canvas
func (r *Recorder) DrawFilledCircle(x, y, radius float64, clr color.Color) {
	r.frame.Ops = append(r.frame.Ops, DrawOp{
		Kind:   DrawCircle,
		Circle: geometry.Circle{X: x, Y: y, Radius: radius},
		Color:  clr,
	})
}

// DrawFilledClosedPath 实现 Canvas
// 路径会被复制，调用方可以复用传入的切片
func (r *Recorder) DrawFilledClosedPath(cmds []geometry.PathCommand, clr color.Color) {
	path := make([]geometry.PathCommand, len(cmds))
	copy(path, cmds)
	r.frame.Ops = append(r.frame.Ops, DrawOp{Kind: DrawPath, Path: path, Color: clr})
}

// Frame 返回已记录的帧
func (r *Recorder) Frame() Frame {
	return r.frame
}

// Reset 清空已记录的指令
func (r *Recorder) Reset() {
	r.frame = Frame{}
}
