// Package layout 计算静态球排列与动态球运动范围
//
// 静态球横向等距排列，两侧和球间的间距都以"静态球直径 × 间距比例"计算。
// 半径同时受 View 高度和可用宽度约束，取两者中较小的结果，保证不溢出。
package layout

import (
	"errors"
	"fmt"

	"github.com/decker502/bezierdemo/pkg/geometry"
)

var (
	// ErrSurfaceNotReady 宽或高为 0（尚未测量），布局需要延后
	ErrSurfaceNotReady = errors.New("surface not measured yet")
	// ErrInvalidBallCount 静态球数量小于 1
	ErrInvalidBallCount = errors.New("ball count must be at least 1")
	// ErrInvalidDiameterCount 总宽度折算的直径数不为正，说明上游配置校验失效
	ErrInvalidDiameterCount = errors.New("diameter count must be positive")
	// ErrNoHorizontalSpace 左右内边距之和不小于宽度，没有可排列小球的空间
	ErrNoHorizontalSpace = errors.New("padding leaves no horizontal space")
)

// Params 布局输入参数
type Params struct {
	Width        float64 // 绘制区域宽度
	Height       float64 // 绘制区域高度
	PaddingLeft  float64 // 左内边距
	PaddingRight float64 // 右内边距

	BallCount int     // 静态球数量
	SizeRatio float64 // 动态球半径 / 静态球半径
	GapRatio  float64 // 间距 / 静态球直径
}

// MotionBounds 动态球圆心 X 的运动范围
type MotionBounds struct {
	MinX float64
	MaxX float64
}

// Layout 一次布局的结果
// 所有静态球共享相同的 Y 和半径
type Layout struct {
	Static        []geometry.Circle
	StaticRadius  float64
	DynamicRadius float64
	Y             float64
	Bounds        MotionBounds
}

// DiameterCount 所需总宽度折算成静态球直径的个数
// N 个球 + (N+1) 个间距，间距按 GapRatio 折算
func DiameterCount(ballCount int, gapRatio float64) float64 {
	n := float64(ballCount)
	return (n+1)*gapRatio + n
}

// Compute 根据参数计算布局
//
// 返回：
//   - *Layout: 布局结果
//   - error: 尺寸未就绪返回 ErrSurfaceNotReady；配置越界返回
//     ErrInvalidBallCount / ErrInvalidDiameterCount / ErrNoHorizontalSpace
func Compute(p Params) (*Layout, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, ErrSurfaceNotReady
	}
	if p.BallCount < 1 {
		return nil, fmt.Errorf("compute layout: %w (got %d)", ErrInvalidBallCount, p.BallCount)
	}

	diameterCount := DiameterCount(p.BallCount, p.GapRatio)
	if diameterCount <= 0 {
		return nil, fmt.Errorf("compute layout: %w (ballCount=%d, gapRatio=%.3f)",
			ErrInvalidDiameterCount, p.BallCount, p.GapRatio)
	}

	span := p.Width - p.PaddingLeft - p.PaddingRight
	if span <= 0 {
		return nil, fmt.Errorf("compute layout: %w (width=%.0f, padding=%.0f+%.0f)",
			ErrNoHorizontalSpace, p.Width, p.PaddingLeft, p.PaddingRight)
	}

	// 半径取高度约束和宽度约束中较小者
	var radius float64
	if p.Height*diameterCount < span {
		radius = p.Height / 2
	} else {
		radius = span / diameterCount / 2
	}

	y := p.Height / 2
	static := make([]geometry.Circle, p.BallCount)
	for i := range static {
		fi := float64(i)
		static[i] = geometry.Circle{
			X:      p.PaddingLeft + radius*(2*p.GapRatio*(fi+1)+2*fi+1),
			Y:      y,
			Radius: radius,
		}
	}

	dynamicRadius := radius * p.SizeRatio
	n := float64(p.BallCount)

	return &Layout{
		Static:        static,
		StaticRadius:  radius,
		DynamicRadius: dynamicRadius,
		Y:             y,
		Bounds: MotionBounds{
			MinX: p.PaddingLeft + dynamicRadius,
			MaxX: p.PaddingLeft + radius*(2*n+2*p.GapRatio*(n+1)) - dynamicRadius,
		},
	}, nil
}
