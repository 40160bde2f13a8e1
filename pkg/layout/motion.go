package layout

import (
	"math"

	"github.com/decker502/bezierdemo/pkg/geometry"
	"github.com/decker502/bezierdemo/pkg/utils"
)

// At 返回进度 progress 对应的动态球圆心 X
// progress 已由外部驱动完成缓动，这里只做线性插值；越界进度会被截断到 [0, 1]
func (b MotionBounds) At(progress float64) float64 {
	p := utils.Clamp01(progress)
	if p == 1 {
		return b.MaxX
	}
	// 浮点舍入可能越过 MaxX 一个 ulp
	return math.Min(utils.Lerp(b.MinX, b.MaxX, p), b.MaxX)
}

// Contains 判断 x 是否在运动范围内（闭区间）
func (b MotionBounds) Contains(x float64) bool {
	return x >= b.MinX && x <= b.MaxX
}

// Dynamic 返回进度 progress 时的动态球
func (l *Layout) Dynamic(progress float64) geometry.Circle {
	return geometry.Circle{
		X:      l.Bounds.At(progress),
		Y:      l.Y,
		Radius: l.DynamicRadius,
	}
}
