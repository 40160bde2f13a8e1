package main

import (
	"math"
	"testing"

	"github.com/decker502/bezierdemo/pkg/config"
	"github.com/decker502/bezierdemo/pkg/geometry"
	"github.com/decker502/bezierdemo/pkg/layout"
	"github.com/decker502/bezierdemo/pkg/render"
)

func computeLayout(t *testing.T, cfg config.BallLineConfig, width, height, padding float64) *layout.Layout {
	t.Helper()
	l, err := layout.Compute(layout.Params{
		Width:        width,
		Height:       height,
		PaddingLeft:  padding,
		PaddingRight: padding,
		BallCount:    cfg.BallCount,
		SizeRatio:    cfg.BallSizeRatio,
		GapRatio:     cfg.BallGapRatio,
	})
	if err != nil {
		t.Fatalf("layout.Compute() error: %v", err)
	}
	return l
}

func TestSampleFrames(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.BallLineConfig
		width   float64
		height  float64
		padding float64
		frames  int
	}{
		{"默认配置", config.DefaultBallLineConfig(), 1100, 200, 0, 101},
		{"早期版本", config.LegacyBallLineConfig(), 250, 100, 10, 101},
		{"矮宽 View", config.DefaultBallLineConfig(), 1100, 40, 0, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(t, tt.cfg, tt.width, tt.height, tt.padding)
			renderer := render.NewBallLineRenderer(tt.cfg.Color(), tt.cfg.Rule())

			samples := sampleFrames(l, renderer, tt.frames)
			if len(samples) != tt.frames {
				t.Fatalf("len(samples) = %d, want %d", len(samples), tt.frames)
			}
			if samples[0].progress != 0 || samples[len(samples)-1].progress != 1 {
				t.Errorf("采样范围 = [%v, %v], want [0, 1]", samples[0].progress, samples[len(samples)-1].progress)
			}
			if samples[0].dynamicX != l.Bounds.MinX || samples[len(samples)-1].dynamicX != l.Bounds.MaxX {
				t.Errorf("端点 x = (%v, %v), want (%v, %v)",
					samples[0].dynamicX, samples[len(samples)-1].dynamicX, l.Bounds.MinX, l.Bounds.MaxX)
			}
			for _, s := range samples {
				if len(s.violations) > 0 {
					t.Errorf("progress %.3f: %v", s.progress, s.violations)
				}
			}
		})
	}
}

// TestSampleAt_States 1100x200 默认配置：静态球 x=150,350,...，运动范围 [37.5, 1062.5]
func TestSampleAt_States(t *testing.T) {
	cfg := config.DefaultBallLineConfig()
	l := computeLayout(t, cfg, 1100, 200, 0)
	renderer := render.NewBallLineRenderer(cfg.Color(), cfg.Rule())

	tests := []struct {
		name           string
		x              float64
		want           []ballState
		wantConnectors int
		wantWaist      float64
	}{
		{"位于第 1 个球中心", 150, []ballState{stateMerged, stateIdle, stateIdle, stateIdle, stateIdle}, 0, 0},
		// 静态球半径 50，动态球半径 37.5：收腰宽度 (50+37.5)/2
		{"位于第 1、2 个球之间", 250, []ballState{stateConnected, stateConnected, stateIdle, stateIdle, stateIdle}, 2, 43.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := (tt.x - l.Bounds.MinX) / (l.Bounds.MaxX - l.Bounds.MinX)
			s := sampleAt(l, renderer, progress)

			for i, want := range tt.want {
				if s.states[i] != want {
					t.Errorf("#%d state = %v, want %v", i+1, s.states[i], want)
				}
			}
			if s.connectors != tt.wantConnectors {
				t.Errorf("connectors = %d, want %d", s.connectors, tt.wantConnectors)
			}
			if math.Abs(s.waist-tt.wantWaist) > 1e-9 {
				t.Errorf("waist = %v, want %v", s.waist, tt.wantWaist)
			}
			if len(s.violations) > 0 {
				t.Errorf("violations = %v", s.violations)
			}
		})
	}
}

func TestConnectorGap(t *testing.T) {
	tests := []struct {
		name string
		a, b geometry.Circle
	}{
		{"等大相离", geometry.Circle{X: 0, Y: 100, Radius: 50}, geometry.Circle{X: 200, Y: 100, Radius: 50}},
		{"大小不同", geometry.Circle{X: 150, Y: 100, Radius: 50}, geometry.Circle{X: 250, Y: 100, Radius: 37.5}},
		{"动态球在左侧", geometry.Circle{X: 300, Y: 40, Radius: 10}, geometry.Circle{X: 120, Y: 40, Radius: 7.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := connectorGap(tt.a, tt.b)
			// 间距 2((1-t)²·rA + t²·rB) 的最小值为 2·rA·rB/(rA+rB)，不超过中点处的收腰宽度
			ra, rb := tt.a.Radius, tt.b.Radius
			lower := 2 * ra * rb / (ra + rb)
			if waist := geometry.WaistWidth(tt.a, tt.b); gap < lower-1e-9 || gap > waist+1e-9 {
				t.Errorf("connectorGap() = %v, want in [%v, %v]", gap, lower, waist)
			}
		})
	}
}

func TestLoadBallLine(t *testing.T) {
	cfg, err := loadBallLine("", 1)
	if err != nil {
		t.Fatalf("loadBallLine() error: %v", err)
	}
	if cfg != config.LegacyBallLineConfig() {
		t.Errorf("第 1 页 = %+v, want legacy", cfg)
	}

	for _, page := range []int{0, 4} {
		if _, err := loadBallLine("", page); err == nil {
			t.Errorf("loadBallLine(\"\", %d) 应返回错误", page)
		}
	}
}
