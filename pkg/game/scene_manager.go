package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the demo's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 旧场景收到 OnExit，新场景收到 OnEnter（如果实现了 Lifecycle）
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = scene
	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
	log.Printf("[SceneManager] 切换场景: %T", scene)
}

// Close 退出当前场景
// 用于程序关闭时让场景停止动画
func (sm *SceneManager) Close() {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
