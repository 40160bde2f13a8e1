// Package ebitenrender 把 render.Canvas 的绘制调用输出到 ebiten.Image
//
// 与 render 包分开，计算和录制绘制指令不需要链接图形驱动。
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/bezierdemo/pkg/geometry"
	"github.com/decker502/bezierdemo/pkg/render"
)

var _ render.Canvas = (*Canvas)(nil)

// Canvas 将绘制调用输出到 ebiten.Image
//
// OffsetX/OffsetY 为 View 在屏幕上的左上角位置，布局坐标以 View 自身为原点。
type Canvas struct {
	Target    *ebiten.Image
	OffsetX   float64
	OffsetY   float64
	AntiAlias bool

	// path 每次填充前 Reset，内部缓冲跨帧复用
	path vector.Path
}

// NewCanvas 创建绘制到 target 的 Canvas，默认开启抗锯齿
func NewCanvas(target *ebiten.Image, offsetX, offsetY float64) *Canvas {
	return &Canvas{
		Target:    target,
		OffsetX:   offsetX,
		OffsetY:   offsetY,
		AntiAlias: true,
	}
}

// DrawFilledCircle 实现 render.Canvas
func (c *Canvas) DrawFilledCircle(x, y, radius float64, clr color.Color) {
	vector.FillCircle(c.Target,
		float32(x+c.OffsetX), float32(y+c.OffsetY), float32(radius),
		clr, c.AntiAlias)
}

// DrawFilledClosedPath 实现 render.Canvas
func (c *Canvas) DrawFilledClosedPath(cmds []geometry.PathCommand, clr color.Color) {
	if len(cmds) == 0 {
		return
	}

	c.path.Reset()
	for _, cmd := range cmds {
		x := float32(cmd.X + c.OffsetX)
		y := float32(cmd.Y + c.OffsetY)
		switch cmd.Op {
		case geometry.MoveTo:
			c.path.MoveTo(x, y)
		case geometry.QuadTo:
			c.path.QuadTo(float32(cmd.CX+c.OffsetX), float32(cmd.CY+c.OffsetY), x, y)
		case geometry.LineTo:
			c.path.LineTo(x, y)
		}
	}
	c.path.Close()

	op := &vector.DrawPathOptions{AntiAlias: c.AntiAlias}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.Target, &c.path, nil, op)
}
