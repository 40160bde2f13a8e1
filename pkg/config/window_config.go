package config

// 窗口与分页布局常量
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 800
	// WindowHeight 逻辑屏幕高度
	WindowHeight = 480

	// TabBarHeight 顶部标签栏高度
	TabBarHeight = 40

	// ViewHeight 小球连线 View 的高度
	// View 在标签栏下方的区域内垂直居中
	ViewHeight = 160

	// MinWindowWidth 窗口变窄时逻辑屏幕宽度的下限
	MinWindowWidth = 320
)
