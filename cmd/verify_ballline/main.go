// verify_ballline 在不打开窗口的情况下验证小球连线的布局和每帧连线判定
//
// 用法：
//
//	go run ./cmd/verify_ballline --width 1100 --height 200 --frames 21
//	go run ./cmd/verify_ballline --config data/pages.yaml --page 1 --padding 10
//
// 表格中每个静态球一列：
//
//	·  未连线
//	C  连线（绘制贝塞尔连接体）
//	M  融合（不绘制连接体）
//
// waist 列为本帧所有连接体中最窄的收腰宽度，没有连接体时为 "-"。
//
// 动态球 X 超出运动范围、帧中的圆或连接体数量与判定不一致，
// 或连接体上下两条曲线相交时以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/bezierdemo/pkg/config"
	"github.com/decker502/bezierdemo/pkg/geometry"
	"github.com/decker502/bezierdemo/pkg/layout"
	"github.com/decker502/bezierdemo/pkg/render"
)

var (
	width      = flag.Int("width", 1100, "View 宽度（像素）")
	height     = flag.Int("height", 200, "View 高度（像素）")
	padding    = flag.Int("padding", 0, "左右内边距（像素）")
	frames     = flag.Int("frames", 21, "在 [0, 1] 内均匀采样的帧数")
	configPath = flag.String("config", "", "分页配置文件路径（为空则使用内置配置）")
	page       = flag.Int("page", 2, "使用第几页的小球连线配置（从 1 开始）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3F51B5"))

	cellStyle    = lipgloss.NewStyle().Align(lipgloss.Right)
	connectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	mergeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
)

// 表格列宽
const (
	progressWidth  = 10
	dynamicXWidth  = 12
	ballWidth      = 4
	connectorWidth = 12
	waistWidth     = 10
)

// curveSegments 检查连接体曲线间距时每段二次贝塞尔的折线段数
const curveSegments = 32

// ballState 某一帧中动态球与某个静态球的关系
type ballState int

const (
	stateIdle ballState = iota
	stateConnected
	stateMerged
)

// sample 一帧的采样结果
type sample struct {
	progress   float64
	dynamicX   float64
	states     []ballState
	connectors int
	// waist 最窄的收腰宽度，没有连接体时为 0
	waist      float64
	violations []string
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadBallLine(*configPath, *page)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("配置错误: "+err.Error()))
		os.Exit(2)
	}

	l, err := layout.Compute(layout.Params{
		Width:        float64(*width),
		Height:       float64(*height),
		PaddingLeft:  float64(*padding),
		PaddingRight: float64(*padding),
		BallCount:    cfg.BallCount,
		SizeRatio:    cfg.BallSizeRatio,
		GapRatio:     cfg.BallGapRatio,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("布局失败: "+err.Error()))
		os.Exit(2)
	}

	renderer := render.NewBallLineRenderer(cfg.Color(), cfg.Rule())
	samples := sampleFrames(l, renderer, *frames)

	fmt.Println(renderSummary(cfg, l))
	fmt.Println(renderTable(l, samples))

	violations := 0
	for _, s := range samples {
		for _, v := range s.violations {
			fmt.Println(errorStyle.Render(fmt.Sprintf("progress %.3f: %s", s.progress, v)))
			violations++
		}
	}
	if violations > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %d 处异常", violations)))
		os.Exit(1)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ %d 帧全部通过", len(samples))))
}

// loadBallLine 读取第 page 页（从 1 开始）的小球连线配置
func loadBallLine(path string, page int) (config.BallLineConfig, error) {
	pages := config.DefaultPagesConfig()
	if path != "" {
		loaded, err := config.LoadPagesConfig(path)
		if err != nil {
			return config.BallLineConfig{}, err
		}
		pages = loaded
	}
	if page < 1 || page > len(pages.Pages) {
		return config.BallLineConfig{}, fmt.Errorf("page %d 越界（共 %d 页）", page, len(pages.Pages))
	}
	return pages.Pages[page-1].BallLine.Sanitize(), nil
}

// sampleFrames 在 [0, 1] 内均匀采样 n 帧（n < 2 时只采样进度 0）
func sampleFrames(l *layout.Layout, renderer *render.BallLineRenderer, n int) []sample {
	if n < 1 {
		n = 1
	}

	samples := make([]sample, 0, n)
	for k := 0; k < n; k++ {
		progress := 0.0
		if n > 1 {
			progress = float64(k) / float64(n-1)
		}
		samples = append(samples, sampleAt(l, renderer, progress))
	}
	return samples
}

func sampleAt(l *layout.Layout, renderer *render.BallLineRenderer, progress float64) sample {
	dynamic := l.Dynamic(progress)
	frame := renderer.BuildFrame(l, progress)

	s := sample{
		progress:   progress,
		dynamicX:   dynamic.X,
		states:     make([]ballState, len(l.Static)),
		connectors: frame.Connectors(),
	}

	expected := 0
	for i, static := range l.Static {
		switch {
		case geometry.ShouldConnect(renderer.MergeRule, static, dynamic):
			s.states[i] = stateConnected
			expected++

			if w := geometry.WaistWidth(static, dynamic); s.waist == 0 || w < s.waist {
				s.waist = w
			}
			if gap := connectorGap(static, dynamic); gap <= 0 {
				s.violations = append(s.violations,
					fmt.Sprintf("#%d 连接体上下曲线相交（最小间距 %.3f）", i+1, gap))
			}
		case renderer.MergeRule.IsMerged(static, dynamic):
			s.states[i] = stateMerged
		}
	}

	if !l.Bounds.Contains(dynamic.X) {
		s.violations = append(s.violations,
			fmt.Sprintf("动态球 x=%.3f 超出运动范围 [%.3f, %.3f]", dynamic.X, l.Bounds.MinX, l.Bounds.MaxX))
	}
	if circles := frame.Circles(); len(circles) != len(l.Static)+1 || circles[0] != dynamic {
		s.violations = append(s.violations,
			fmt.Sprintf("帧中有 %d 个圆，应为动态球 + %d 个静态球", len(circles), len(l.Static)))
	}
	if expected != s.connectors {
		s.violations = append(s.violations,
			fmt.Sprintf("连接体数量 %d 与判定结果 %d 不一致", s.connectors, expected))
	}
	return s
}

// connectorGap 返回连接体上下两条曲线在同一 x 处的最小竖直间距
//
// 上曲线从 a 顶部到 b 顶部，下曲线从 b 底部回到 a 底部，
// 两者按相同段数展开后 upper[i] 与 lower[n-i] 的 x 相同。
func connectorGap(a, b geometry.Circle) float64 {
	control := geometry.Midpoint(a, b)
	upper := geometry.FlattenQuad(a.Top(), control, b.Top(), curveSegments)
	lower := geometry.FlattenQuad(b.Bottom(), control, a.Bottom(), curveSegments)

	gap := math.Inf(1)
	n := len(upper) - 1
	for i, p := range upper {
		gap = math.Min(gap, lower[n-i].Y-p.Y)
	}
	return gap
}

func renderSummary(cfg config.BallLineConfig, l *layout.Layout) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ball Line 布局"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "静态球: %d 个, 半径 %.3f, y=%.3f\n", len(l.Static), l.StaticRadius, l.Y)
	fmt.Fprintf(&b, "动态球: 半径 %.3f, 运动范围 [%.3f, %.3f]\n", l.DynamicRadius, l.Bounds.MinX, l.Bounds.MaxX)
	fmt.Fprintf(&b, "颜色 %s, 融合规则 %s", cfg.BallColor, cfg.MergeRule)

	xs := make([]string, len(l.Static))
	for i, c := range l.Static {
		xs[i] = fmt.Sprintf("%.2f", c.X)
	}
	fmt.Fprintf(&b, "\n静态球 x: %s", strings.Join(xs, ", "))
	return boxStyle.Render(b.String())
}

func renderTable(l *layout.Layout, samples []sample) string {
	cells := []string{
		cellStyle.Width(progressWidth).Render("progress"),
		cellStyle.Width(dynamicXWidth).Render("dynamic x"),
	}
	for i := range l.Static {
		cells = append(cells, cellStyle.Width(ballWidth).Render(fmt.Sprintf("#%d", i+1)))
	}
	cells = append(cells, cellStyle.Width(connectorWidth).Render("connectors"))
	cells = append(cells, cellStyle.Width(waistWidth).Render("waist"))

	rows := []string{headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))}
	for _, s := range samples {
		cells := []string{
			cellStyle.Width(progressWidth).Render(fmt.Sprintf("%.3f", s.progress)),
			cellStyle.Width(dynamicXWidth).Render(fmt.Sprintf("%.3f", s.dynamicX)),
		}
		for _, state := range s.states {
			cells = append(cells, cellStyle.Width(ballWidth).Render(renderState(state)))
		}
		count := fmt.Sprintf("%d", s.connectors)
		if len(s.violations) > 0 {
			count = errorStyle.Render(count)
		}
		cells = append(cells, cellStyle.Width(connectorWidth).Render(count))

		waist := "-"
		if s.waist > 0 {
			waist = fmt.Sprintf("%.2f", s.waist)
		}
		cells = append(cells, cellStyle.Width(waistWidth).Render(waist))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderState(state ballState) string {
	switch state {
	case stateConnected:
		return connectStyle.Render("C")
	case stateMerged:
		return mergeStyle.Render("M")
	default:
		return idleStyle.Render("·")
	}
}
