// Package animation 提供驱动小球往返运动的进度驱动器，
// 以及把 View 的挂载/可见性生命周期翻译成驱动器启停的适配器。
package animation

import (
	"math"
	"time"

	"github.com/decker502/bezierdemo/pkg/utils"
)

// DefaultDuration 单程动画时长
const DefaultDuration = 2500 * time.Millisecond

// RepeatInfinite 无限重复
const RepeatInfinite = -1

// RepeatMode 重复模式
type RepeatMode int

const (
	// RepeatReverse 每次重复反向播放（往返）
	RepeatReverse RepeatMode = iota
	// RepeatRestart 每次重复从头播放
	RepeatRestart
)

// DriverOptions 进度驱动器参数
type DriverOptions struct {
	Duration    time.Duration    // 单程时长
	RepeatMode  RepeatMode       // 重复模式
	RepeatCount int              // 重复次数（不含第一次），RepeatInfinite 表示无限
	Easing      utils.EasingFunc // 缓动函数，nil 表示线性
}

// DefaultDriverOptions 返回小球往返动画使用的参数：
// 2500ms、先加速后减速、无限次往返
func DefaultDriverOptions() DriverOptions {
	return DriverOptions{
		Duration:    DefaultDuration,
		RepeatMode:  RepeatReverse,
		RepeatCount: RepeatInfinite,
		Easing:      utils.EaseAccelerateDecelerate,
	}
}

// Driver 进度驱动器
//
// 由宿主的帧循环调用 Update 推进时间，输出缓动后的进度 ∈ [0, 1]。
// 反向重复时奇数轮从 1 回到 0。
type Driver struct {
	opts     DriverOptions
	elapsed  float64 // 已运行时长（秒）
	running  bool
	finished bool
	progress float64
}

// NewDriver 创建驱动器
// Duration 非正时使用 DefaultDuration
func NewDriver(opts DriverOptions) *Driver {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Easing == nil {
		opts.Easing = utils.EaseLinear
	}
	return &Driver{opts: opts}
}

// Start 从进度 0 开始运行
func (d *Driver) Start() {
	d.elapsed = 0
	d.running = true
	d.finished = false
	d.progress = d.opts.Easing(0)
}

// Stop 停止推进，保留当前进度
func (d *Driver) Stop() {
	d.running = false
}

// Running 是否正在运行
func (d *Driver) Running() bool {
	return d.running
}

// Finished 有限次重复是否已全部播放完成
func (d *Driver) Finished() bool {
	return d.finished
}

// Progress 返回最近一次计算的进度
func (d *Driver) Progress() float64 {
	return d.progress
}

// Options 返回驱动器参数
func (d *Driver) Options() DriverOptions {
	return d.opts
}

// Update 推进 deltaSeconds 秒并返回新的进度
// 未运行时直接返回当前进度；负的时间增量按 0 处理
func (d *Driver) Update(deltaSeconds float64) float64 {
	if !d.running {
		return d.progress
	}
	if deltaSeconds > 0 {
		d.elapsed += deltaSeconds
	}

	duration := d.opts.Duration.Seconds()
	cycle := math.Floor(d.elapsed / duration)
	t := d.elapsed/duration - cycle

	if d.opts.RepeatCount != RepeatInfinite && cycle > float64(d.opts.RepeatCount) {
		// 播放完成：停在最后一轮的终点
		cycle = float64(d.opts.RepeatCount)
		t = 1
		d.running = false
		d.finished = true
	}

	if d.opts.RepeatMode == RepeatReverse && int64(cycle)%2 == 1 {
		t = 1 - t
	}

	d.progress = utils.Clamp01(d.opts.Easing(utils.Clamp01(t)))
	return d.progress
}
