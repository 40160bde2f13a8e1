package geometry

// PathOp 路径指令类型
type PathOp int

const (
	// MoveTo 移动画笔到 (X, Y)
	MoveTo PathOp = iota
	// QuadTo 以 (CX, CY) 为控制点画二次贝塞尔曲线到 (X, Y)
	QuadTo
	// LineTo 画直线到 (X, Y)
	LineTo
)

func (op PathOp) String() string {
	switch op {
	case MoveTo:
		return "moveTo"
	case QuadTo:
		return "quadTo"
	case LineTo:
		return "lineTo"
	}
	return "unknown"
}

// PathCommand 单条路径指令
// CX/CY 仅对 QuadTo 有意义
type PathCommand struct {
	Op PathOp
	CX float64
	CY float64
	X  float64
	Y  float64
}

// Connector 计算连接静态球 a 与动态球 b 的闭合路径
//
// 路径顺序：
//  1. 移动到 a 的顶点
//  2. 以两圆心中点为控制点，曲线到 b 的顶点
//  3. 直线到 b 的底点
//  4. 以同一个中点为控制点，曲线到 a 的底点
//  5. 直线回到 a 的顶点，闭合
//
// 两段曲线共用同一个控制点，形成向中间收腰的"橡皮筋"形状。
func Connector(a, b Circle) []PathCommand {
	start1 := a.Top()
	end1 := b.Top()
	start2 := b.Bottom()
	end2 := a.Bottom()
	control := Midpoint(a, b)

	return []PathCommand{
		{Op: MoveTo, X: start1.X, Y: start1.Y},
		{Op: QuadTo, CX: control.X, CY: control.Y, X: end1.X, Y: end1.Y},
		{Op: LineTo, X: start2.X, Y: start2.Y},
		{Op: QuadTo, CX: control.X, CY: control.Y, X: end2.X, Y: end2.Y},
		{Op: LineTo, X: start1.X, Y: start1.Y},
	}
}

// QuadPoint 计算二次贝塞尔曲线在 t 处的点
// B(t) = (1-t)²·P0 + 2(1-t)t·C + t²·P1
func QuadPoint(p0, c, p1 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
		Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
	}
}

// FlattenQuad 将二次贝塞尔曲线按等参数间隔采样为折线
// 返回 segments+1 个点（包含两个端点），segments < 1 时按 1 处理
func FlattenQuad(p0, c, p1 Point, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, QuadPoint(p0, c, p1, t))
	}
	return points
}

// WaistWidth 返回连接曲线在两圆心中点处的上下间距
// 上下两段曲线关于圆心连线对称时即为收腰处的宽度
func WaistWidth(a, b Circle) float64 {
	c := Midpoint(a, b)
	upper := QuadPoint(a.Top(), c, b.Top(), 0.5)
	lower := QuadPoint(b.Bottom(), c, a.Bottom(), 0.5)
	return lower.Y - upper.Y
}
