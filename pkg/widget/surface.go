// Package widget 把小球连线的核心计算挂到宿主界面上
//
// 宿主只需要提供一块带内边距的绘制区域（Surface），
// BallLineView 负责延迟布局、响应生命周期事件并产出每帧绘制指令。
package widget

// Surface 宿主绘制区域
type Surface interface {
	Width() int
	Height() int
	PaddingLeft() int
	PaddingRight() int
	// RequestRepaint 请求宿主重绘该区域
	RequestRepaint()
}

// Rect 屏幕上的一块矩形区域，实现 Surface
//
// X/Y 为区域在屏幕上的左上角，布局坐标以区域自身为原点。
type Rect struct {
	X, Y          int
	W, H          int
	PadLeft       int
	PadRight      int
	repaintNeeded bool
}

// NewRect 创建矩形区域
func NewRect(x, y, w, h, padLeft, padRight int) *Rect {
	return &Rect{X: x, Y: y, W: w, H: h, PadLeft: padLeft, PadRight: padRight}
}

// Width 实现 Surface
func (r *Rect) Width() int { return r.W }

// Height 实现 Surface
func (r *Rect) Height() int { return r.H }

// PaddingLeft 实现 Surface
func (r *Rect) PaddingLeft() int { return r.PadLeft }

// PaddingRight 实现 Surface
func (r *Rect) PaddingRight() int { return r.PadRight }

// RequestRepaint 实现 Surface
func (r *Rect) RequestRepaint() { r.repaintNeeded = true }

// SetBounds 修改区域位置和尺寸（例如窗口大小变化）
func (r *Rect) SetBounds(x, y, w, h int) {
	if r.X == x && r.Y == y && r.W == w && r.H == h {
		return
	}
	r.X, r.Y, r.W, r.H = x, y, w, h
	r.repaintNeeded = true
}

// TakeRepaint 返回是否有待处理的重绘请求，并清除该标记
func (r *Rect) TakeRepaint() bool {
	needed := r.repaintNeeded
	r.repaintNeeded = false
	return needed
}
