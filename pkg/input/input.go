// Package input 把 ebiten 的鼠标/触摸输入整理成点击和滑动手势
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	// 检查触摸按下
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		// 同时更新最后触摸位置
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	// 检查鼠标按下
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	// 检查触摸释放
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		// 触摸释放时使用保存的最后触摸位置
		return true, lastTouchX, lastTouchY
	}

	// 检查鼠标释放
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// ============================================================================
// 手势识别 - 用于分页的点击与左右滑动
// ============================================================================

// GestureKind 手势类型
type GestureKind int

const (
	// GestureNone 无手势（未按下或仍在按住）
	GestureNone GestureKind = iota
	// GestureTap 点击（按下与释放位置接近）
	GestureTap
	// GestureSwipeLeft 向左滑动（切换到下一页）
	GestureSwipeLeft
	// GestureSwipeRight 向右滑动（切换到上一页）
	GestureSwipeRight
)

// Gesture 识别结果
type Gesture struct {
	Kind GestureKind
	// X, Y 按下位置（屏幕坐标）
	X, Y int
}

// GestureTracker 根据按下/释放位置识别点击和水平滑动
// 只保存按下位置，不依赖 ebiten 输入状态，便于测试
type GestureTracker struct {
	// SwipeThreshold 水平位移超过该值（像素）视为滑动
	SwipeThreshold int

	pressed        bool
	startX, startY int
}

// NewGestureTracker 创建手势识别器
func NewGestureTracker(swipeThreshold int) *GestureTracker {
	return &GestureTracker{SwipeThreshold: swipeThreshold}
}

// Press 记录按下位置
func (g *GestureTracker) Press(x, y int) {
	g.pressed = true
	g.startX, g.startY = x, y
}

// Release 在释放位置结束手势并返回识别结果
// 没有对应的按下时返回 GestureNone
func (g *GestureTracker) Release(x, y int) Gesture {
	if !g.pressed {
		return Gesture{Kind: GestureNone}
	}
	g.pressed = false

	dx := x - g.startX
	result := Gesture{Kind: GestureTap, X: g.startX, Y: g.startY}
	switch {
	case dx <= -g.SwipeThreshold:
		result.Kind = GestureSwipeLeft
	case dx >= g.SwipeThreshold:
		result.Kind = GestureSwipeRight
	}
	return result
}

// Poll 读取本帧的指针输入并推进手势识别
// 应该在每帧更新时调用一次
func (g *GestureTracker) Poll() Gesture {
	UpdateLastTouchPosition()
	if pressed, x, y := IsPointerJustPressed(); pressed {
		g.Press(x, y)
	}
	if released, x, y := IsPointerJustReleased(); released {
		return g.Release(x, y)
	}
	return Gesture{Kind: GestureNone}
}
