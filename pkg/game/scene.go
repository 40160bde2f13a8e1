package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the demo (e.g., the tab pager).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景切入/切出时由 SceneManager 调用
//
// 实现此接口的场景可以在 OnEnter 中挂载 View（启动动画），
// 在 OnExit 中卸载 View（停止动画）。
type Lifecycle interface {
	// OnEnter 场景成为当前场景
	OnEnter()
	// OnExit 场景不再是当前场景（包括程序退出）
	OnExit()
}
