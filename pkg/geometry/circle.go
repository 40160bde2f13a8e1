// Package geometry 提供小球连线动画的纯几何计算
//
// 包含圆（Circle）值类型、两圆之间的连接/融合判定，
// 以及连接两圆的贝塞尔"橡皮筋"路径计算。本包没有任何状态，
// 所有函数都是输入相同则输出相同的纯函数。
package geometry

import (
	"fmt"
	"math"
)

// ConnectRangeFactor 吸引范围系数
// 两圆圆心水平距离小于 大圆半径 × 该系数 时视为"有连接"
const ConnectRangeFactor = 3.0

// Point 二维坐标点
type Point struct {
	X float64
	Y float64
}

// Circle 圆（静态球或动态球）
type Circle struct {
	X      float64 // 圆心 X
	Y      float64 // 圆心 Y
	Radius float64 // 半径
}

// Top 返回圆的最高点
func (c Circle) Top() Point {
	return Point{X: c.X, Y: c.Y - c.Radius}
}

// Bottom 返回圆的最低点
func (c Circle) Bottom() Point {
	return Point{X: c.X, Y: c.Y + c.Radius}
}

// Midpoint 返回两圆圆心连线的中点
func Midpoint(a, b Circle) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// IsConnect 两个小球是否有连接
// 小球圆心离开大球圆心的水平距离超过 3 倍大球半径时算彻底断开连接
func IsConnect(a, b Circle) bool {
	bigRadius := math.Max(a.Radius, b.Radius)
	return math.Abs(a.X-b.X) < ConnectRangeFactor*bigRadius
}

// IsIntersect 两个小球是否相交（有任何重叠）
func IsIntersect(a, b Circle) bool {
	return math.Abs(a.X-b.X) < a.Radius+b.Radius
}

// IsFullIntersect 两个小球是否完全相交（小球整体落在大球内部）
func IsFullIntersect(a, b Circle) bool {
	return math.Abs(a.X-b.X) < math.Abs(a.Radius-b.Radius)
}

// MergeRule 融合判定规则
// 决定两球"已融合"从而不再绘制连接曲线的条件
type MergeRule int

const (
	// MergeRuleFullIntersect 小球完全进入大球才算融合（默认）
	MergeRuleFullIntersect MergeRule = iota
	// MergeRuleIntersect 两球一旦相交即算融合（早期版本的行为）
	MergeRuleIntersect
)

// String 返回规则在配置文件中的名称
func (r MergeRule) String() string {
	switch r {
	case MergeRuleFullIntersect:
		return "full_intersect"
	case MergeRuleIntersect:
		return "intersect"
	}
	return fmt.Sprintf("MergeRule(%d)", int(r))
}

// ParseMergeRule 解析配置中的融合规则名称
func ParseMergeRule(name string) (MergeRule, error) {
	switch name {
	case "full_intersect":
		return MergeRuleFullIntersect, nil
	case "intersect":
		return MergeRuleIntersect, nil
	}
	return MergeRuleFullIntersect, fmt.Errorf("unknown merge rule %q (want \"intersect\" or \"full_intersect\")", name)
}

// IsMerged 按规则判断两球是否已融合
func (r MergeRule) IsMerged(a, b Circle) bool {
	if r == MergeRuleIntersect {
		return IsIntersect(a, b)
	}
	return IsFullIntersect(a, b)
}

// ShouldConnect 是否需要绘制连接曲线
// 两个球有连接且未融合才绘制中间的连接曲线
func ShouldConnect(rule MergeRule, a, b Circle) bool {
	return IsConnect(a, b) && !rule.IsMerged(a, b)
}
