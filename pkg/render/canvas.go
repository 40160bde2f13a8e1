// Package render 负责把布局与连接曲线转换成绘制调用
//
// 绘制后端通过 Canvas 接口抽象：桌面/移动端使用 EbitenCanvas，
// 测试和命令行工具使用 Recorder 记录绘制指令。
package render

import (
	"image/color"

	"github.com/decker502/bezierdemo/pkg/geometry"
)

// Canvas 绘制后端
type Canvas interface {
	// DrawFilledCircle 绘制实心圆
	DrawFilledCircle(x, y, radius float64, clr color.Color)

	// DrawFilledClosedPath 填充由 moveTo/quadTo/lineTo 组成的闭合路径
	DrawFilledClosedPath(cmds []geometry.PathCommand, clr color.Color)
}
