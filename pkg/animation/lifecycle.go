package animation

import (
	"fmt"
	"log"
)

// State 动画适配器状态
type State int

const (
	// StateStopped 已停止
	StateStopped State = iota
	// StateRunning 运行中
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Callbacks 适配器回调
type Callbacks struct {
	// OnProgress 每次推进后以新进度调用，用于重新计算动态球
	OnProgress func(progress float64)
	// RequestRepaint 请求宿主重绘
	RequestRepaint func()
}

// Lifecycle 把宿主的挂载/可见性事件翻译为驱动器的启停
//
//	挂载 / 变为可见   → Running（从进度 0 启动驱动器）
//	卸载 / 变为不可见 → Stopped（取消驱动器，并重绘一次让画面停稳）
//
// 所有调用都发生在宿主的更新线程上。
type Lifecycle struct {
	name      string
	state     State
	driver    *Driver
	callbacks Callbacks
}

// NewLifecycle 创建适配器，初始状态为 Stopped
func NewLifecycle(name string, driver *Driver, callbacks Callbacks) *Lifecycle {
	return &Lifecycle{
		name:      name,
		state:     StateStopped,
		driver:    driver,
		callbacks: callbacks,
	}
}

// State 返回当前状态
func (l *Lifecycle) State() State {
	return l.state
}

// Driver 返回内部驱动器
func (l *Lifecycle) Driver() *Driver {
	return l.driver
}

// OnAttached View 挂载到窗口
func (l *Lifecycle) OnAttached() {
	l.start("attached")
}

// OnDetached View 从窗口卸载
func (l *Lifecycle) OnDetached() {
	l.stop("detached")
}

// OnVisibilityChanged View 可见性变化
func (l *Lifecycle) OnVisibilityChanged(visible bool) {
	if visible {
		l.start("visible")
	} else {
		l.stop("invisible")
	}
}

// Tick 宿主每帧调用一次
// 运行中时推进驱动器、回报进度并请求重绘；停止时什么也不做
func (l *Lifecycle) Tick(deltaSeconds float64) {
	if l.state != StateRunning {
		return
	}

	progress := l.driver.Update(deltaSeconds)
	if l.callbacks.OnProgress != nil {
		l.callbacks.OnProgress(progress)
	}
	l.repaint()

	// 有限次重复播放完毕后自动停止
	if l.driver.Finished() {
		l.state = StateStopped
		log.Printf("[Animation] %s: 驱动器播放完成，进入 Stopped", l.name)
	}
}

func (l *Lifecycle) start(reason string) {
	if l.state == StateRunning {
		return
	}
	l.driver.Start()
	l.state = StateRunning
	log.Printf("[Animation] %s: %s → Running (duration=%v)", l.name, reason, l.driver.Options().Duration)
}

func (l *Lifecycle) stop(reason string) {
	if l.state == StateStopped {
		return
	}
	l.driver.Stop()
	l.state = StateStopped
	log.Printf("[Animation] %s: %s → Stopped", l.name, reason)
	l.repaint()
}

func (l *Lifecycle) repaint() {
	if l.callbacks.RequestRepaint != nil {
		l.callbacks.RequestRepaint()
	}
}
