package layout

import (
	"log"
)

// Cache 布局缓存
//
// 第一次拿到非零尺寸时计算一次布局，之后尺寸不变就直接复用；
// 尺寸或小球参数变化后下一次 Get 重新计算。
// 只在渲染线程使用，不需要加锁。
type Cache struct {
	layout       *Layout
	params       Params
	computations int
}

// NewCache 创建空的布局缓存
func NewCache() *Cache {
	return &Cache{}
}

// Get 返回与 p 对应的布局
//
// 尺寸未就绪时返回 ErrSurfaceNotReady，调用方应跳过本帧而不是报错。
func (c *Cache) Get(p Params) (*Layout, error) {
	if c.layout != nil && c.params == p {
		return c.layout, nil
	}

	l, err := Compute(p)
	if err != nil {
		return nil, err
	}

	if c.layout != nil {
		log.Printf("[Layout] 参数变化 %.0fx%.0f -> %.0fx%.0f，重新布局", c.params.Width, c.params.Height, p.Width, p.Height)
	} else {
		log.Printf("[Layout] 首次布局 %.0fx%.0f: %d 个静态球, 半径 %.2f", p.Width, p.Height, p.BallCount, l.StaticRadius)
	}

	c.layout = l
	c.params = p
	c.computations++
	return l, nil
}

// Current 返回最近一次布局结果，从未布局时返回 nil
func (c *Cache) Current() *Layout {
	return c.layout
}

// Computations 返回实际计算布局的次数
func (c *Cache) Computations() int {
	return c.computations
}
