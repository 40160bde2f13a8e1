package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseAccelerateDecelerate 先加速后减速
// 特点：开始慢，中间快，结束慢（小球往返滑动使用）
// 公式：f(t) = cos((t+1)π)/2 + 0.5
func EaseAccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢（比 AccelerateDecelerate 更陡）
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EasingByName 根据名称查找缓动函数
// 未知名称返回 nil, false
func EasingByName(name string) (EasingFunc, bool) {
	switch name {
	case "linear":
		return EaseLinear, true
	case "accelerate_decelerate", "":
		return EaseAccelerateDecelerate, true
	case "in_out_cubic":
		return EaseInOutCubic, true
	}
	return nil, false
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 区间
// NaN 视为 0
func Clamp01(t float64) float64 {
	if t > 1 {
		return 1
	}
	if t >= 0 {
		return t
	}
	return 0
}
