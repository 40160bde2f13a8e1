package animation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/bezierdemo/pkg/utils"
)

func linearOptions(d time.Duration) DriverOptions {
	return DriverOptions{
		Duration:    d,
		RepeatMode:  RepeatReverse,
		RepeatCount: RepeatInfinite,
		Easing:      utils.EaseLinear,
	}
}

func TestDefaultDriverOptions(t *testing.T) {
	opts := DefaultDriverOptions()
	assert.Equal(t, 2500*time.Millisecond, opts.Duration)
	assert.Equal(t, RepeatReverse, opts.RepeatMode)
	assert.Equal(t, RepeatInfinite, opts.RepeatCount)
	require.NotNil(t, opts.Easing)
	assert.InDelta(t, 0.5, opts.Easing(0.5), 1e-9)
}

func TestDriver_NotRunning(t *testing.T) {
	d := NewDriver(linearOptions(time.Second))
	assert.False(t, d.Running())
	assert.Equal(t, 0.0, d.Update(0.5), "未启动时进度不变")
}

func TestDriver_ReverseRepeat(t *testing.T) {
	d := NewDriver(linearOptions(time.Second))
	d.Start()
	require.True(t, d.Running())

	steps := []struct {
		delta float64
		want  float64
	}{
		{0.25, 0.25},
		{0.5, 0.75},
		{0.5, 0.75}, // 1.25s：反向第一轮 → 1 - 0.25
		{0.5, 0.25}, // 1.75s
		{0.5, 0.25}, // 2.25s：正向第三轮
	}

	for i, s := range steps {
		got := d.Update(s.delta)
		assert.InDelta(t, s.want, got, 1e-9, "step %d", i)
	}
	assert.True(t, d.Running(), "无限重复不会停止")
}

func TestDriver_RestartRepeat(t *testing.T) {
	opts := linearOptions(time.Second)
	opts.RepeatMode = RepeatRestart
	d := NewDriver(opts)
	d.Start()

	assert.InDelta(t, 0.5, d.Update(0.5), 1e-9)
	assert.InDelta(t, 0.25, d.Update(0.75), 1e-9)
}

func TestDriver_FiniteRepeat(t *testing.T) {
	opts := linearOptions(time.Second)
	opts.RepeatCount = 1
	d := NewDriver(opts)
	d.Start()

	d.Update(1.5)
	assert.True(t, d.Running())

	// 超过两轮（1 次正向 + 1 次反向）后停在反向终点 0
	got := d.Update(1.0)
	assert.False(t, d.Running())
	assert.True(t, d.Finished())
	assert.InDelta(t, 0.0, got, 1e-9)
}

func TestDriver_StopKeepsProgress(t *testing.T) {
	d := NewDriver(linearOptions(time.Second))
	d.Start()
	d.Update(0.4)
	d.Stop()

	assert.False(t, d.Running())
	assert.InDelta(t, 0.4, d.Progress(), 1e-9)
	assert.InDelta(t, 0.4, d.Update(1), 1e-9, "停止后 Update 不推进")

	d.Start()
	assert.Equal(t, 0.0, d.Progress(), "重新启动从 0 开始")
}

func TestDriver_DefaultsForZeroOptions(t *testing.T) {
	d := NewDriver(DriverOptions{})
	assert.Equal(t, DefaultDuration, d.Options().Duration)
	require.NotNil(t, d.Options().Easing)
}

func TestDriver_ProgressAlwaysInRange(t *testing.T) {
	d := NewDriver(DefaultDriverOptions())
	d.Start()

	deltas := []float64{1.0 / 60, 0.2, 3.7, 0, -1, 1.0 / 30, 12.5, 0.0001}
	for i := 0; i < 2000; i++ {
		p := d.Update(deltas[i%len(deltas)])
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Fatalf("第 %d 次 Update 进度越界: %v", i, p)
		}
	}
}

func TestDriver_EasedMirror(t *testing.T) {
	// 反向轮与正向轮关于周期中点镜像
	a := NewDriver(DefaultDriverOptions())
	b := NewDriver(DefaultDriverOptions())
	a.Start()
	b.Start()

	forward := a.Update(0.8)
	backward := b.Update(2*DefaultDuration.Seconds() - 0.8)
	assert.InDelta(t, forward, backward, 1e-9)
}
