package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/bezierdemo/pkg/geometry"
	"github.com/decker502/bezierdemo/pkg/layout"
)

var testBlue = color.RGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff}

func mustLayout(t *testing.T, p layout.Params) *layout.Layout {
	t.Helper()
	l, err := layout.Compute(p)
	require.NoError(t, err)
	return l
}

func TestRender_NilLayoutDrawsNothing(t *testing.T) {
	r := NewBallLineRenderer(testBlue, geometry.MergeRuleFullIntersect)
	frame := r.BuildFrame(nil, 0.5)
	assert.True(t, frame.Empty())
}

func TestRender_DrawOrder(t *testing.T) {
	l := mustLayout(t, layout.Params{Width: 1100, Height: 200, BallCount: 5, SizeRatio: 0.75, GapRatio: 1})
	r := NewBallLineRenderer(testBlue, geometry.MergeRuleFullIntersect)

	for _, progress := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
		frame := r.BuildFrame(l, progress)
		require.NotEmpty(t, frame.Ops)

		// 第一条一定是动态球
		first := frame.Ops[0]
		require.Equal(t, DrawCircle, first.Kind)
		assert.Equal(t, l.Dynamic(progress), first.Circle)

		// 之后静态球从左到右，连接曲线紧跟在对应静态球后面
		staticIndex := 0
		var lastStatic geometry.Circle
		for _, op := range frame.Ops[1:] {
			switch op.Kind {
			case DrawCircle:
				require.Less(t, staticIndex, len(l.Static))
				assert.Equal(t, l.Static[staticIndex], op.Circle)
				lastStatic = op.Circle
				staticIndex++
			case DrawPath:
				require.Greater(t, staticIndex, 0, "连接曲线不能出现在静态球之前")
				assert.Equal(t, geometry.Connector(lastStatic, first.Circle), op.Path)
			}
			assert.Equal(t, testBlue, op.Color)
		}
		assert.Equal(t, len(l.Static), staticIndex)
	}
}

func TestRender_ConnectorDecision(t *testing.T) {
	l := mustLayout(t, layout.Params{Width: 1100, Height: 200, BallCount: 5, SizeRatio: 0.75, GapRatio: 1})

	// 静态球半径 50，X = 150, 350, ...；动态球半径 37.5
	// 进度 0：动态球 X = 37.5，与第一个球距离 112.5 < 150，未完全相交 → 1 条连接
	r := NewBallLineRenderer(testBlue, geometry.MergeRuleFullIntersect)
	frame := r.BuildFrame(l, 0)
	assert.Equal(t, 1, frame.Connectors())

	// 动态球正好在第一个球上：完全融合，不绘制；距离 200 的第二个球超出 150 范围
	progress := (150 - l.Bounds.MinX) / (l.Bounds.MaxX - l.Bounds.MinX)
	frame = r.BuildFrame(l, progress)
	assert.Equal(t, 0, frame.Connectors())

	// 两球之间：与两侧距离都是 100，均未融合 → 2 条连接
	progress = (250 - l.Bounds.MinX) / (l.Bounds.MaxX - l.Bounds.MinX)
	frame = r.BuildFrame(l, progress)
	assert.Equal(t, 2, frame.Connectors())
}

func TestRender_MergeRuleIntersect(t *testing.T) {
	l := mustLayout(t, layout.Params{Width: 1100, Height: 200, BallCount: 5, SizeRatio: 0.75, GapRatio: 1})

	// 动态球 X = 190：与第一个球距离 40 < 87.5 相交，但未完全进入
	progress := (190 - l.Bounds.MinX) / (l.Bounds.MaxX - l.Bounds.MinX)

	full := NewBallLineRenderer(testBlue, geometry.MergeRuleFullIntersect).BuildFrame(l, progress)
	intersect := NewBallLineRenderer(testBlue, geometry.MergeRuleIntersect).BuildFrame(l, progress)

	// 完全相交规则：第一个球 40 > 12.5 绘制；第二个球距离 160 超出吸引范围
	assert.Equal(t, 1, full.Connectors())
	// 相交规则：与第一个球已相交，不绘制
	assert.Equal(t, 0, intersect.Connectors())
}

func TestRender_ThousandFrames(t *testing.T) {
	l := mustLayout(t, layout.Params{Width: 720, Height: 180, PaddingLeft: 16, PaddingRight: 16, BallCount: 4, SizeRatio: 0.75, GapRatio: 1.5})
	r := NewBallLineRenderer(testBlue, geometry.MergeRuleIntersect)

	for i := 0; i <= 1000; i++ {
		progress := float64(i) / 1000
		frame := r.BuildFrame(l, progress)
		dynamic := frame.Ops[0].Circle
		require.True(t, l.Bounds.Contains(dynamic.X), "progress %v: x=%v 超出 [%v, %v]", progress, dynamic.X, l.Bounds.MinX, l.Bounds.MaxX)
		require.Len(t, frame.Circles(), len(l.Static)+1)
	}
}

func TestFrameReplay(t *testing.T) {
	l := mustLayout(t, layout.Params{Width: 1100, Height: 200, BallCount: 3, SizeRatio: 0.75, GapRatio: 1})
	r := NewBallLineRenderer(testBlue, geometry.MergeRuleFullIntersect)

	frame := r.BuildFrame(l, 0.4)

	var rec Recorder
	frame.Replay(&rec)
	assert.Equal(t, frame, rec.Frame())

	rec.Reset()
	assert.True(t, rec.Frame().Empty())
}

func TestRecorder_CopiesPath(t *testing.T) {
	var rec Recorder
	cmds := geometry.Connector(geometry.Circle{X: 0, Y: 0, Radius: 10}, geometry.Circle{X: 25, Y: 0, Radius: 5})
	rec.DrawFilledClosedPath(cmds, testBlue)

	cmds[0].X = 999
	assert.NotEqual(t, 999.0, rec.Frame().Ops[0].Path[0].X)
}
