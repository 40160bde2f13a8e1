package config

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/bezierdemo/pkg/geometry"
)

// 小球连线配置的取值范围
const (
	MinBallSizeRatio = 0.5
	MaxBallSizeRatio = 1.0
	MaxBallGapRatio  = 1.5

	DefaultBallCount     = 5
	DefaultBallColor     = "blue"
	DefaultBallSizeRatio = 0.75
	DefaultBallGapRatio  = 1.0
	DefaultMergeRule     = "full_intersect"
)

// validate 字段级校验器
var validate = validator.New()

// BallLineConfig 小球连线 View 的配置
//
// 所有字段都是"扁平"的命名值，对应 YAML 中的同名键：
//
//	ballCount: 5
//	ballColor: "#3366ff"
//	ballSizeRatio: 0.75
//	ballGapRatio: 1.0
//	mergeRule: full_intersect
type BallLineConfig struct {
	// BallCount 静态球数量，至少 1 个
	BallCount int `yaml:"ballCount"`
	// BallColor 小球颜色，支持 "#rrggbb"、"#rgb" 和常用颜色名
	BallColor string `yaml:"ballColor"`
	// BallSizeRatio 动态球半径 / 静态球半径，范围 [0.5, 1.0]
	BallSizeRatio float64 `yaml:"ballSizeRatio"`
	// BallGapRatio 间距 / 静态球直径，范围 [BallSizeRatio, 1.5]
	BallGapRatio float64 `yaml:"ballGapRatio"`
	// MergeRule 融合判定规则："intersect" 或 "full_intersect"
	MergeRule string `yaml:"mergeRule"`
}

// DefaultBallLineConfig 返回默认配置
func DefaultBallLineConfig() BallLineConfig {
	return BallLineConfig{
		BallCount:     DefaultBallCount,
		BallColor:     DefaultBallColor,
		BallSizeRatio: DefaultBallSizeRatio,
		BallGapRatio:  DefaultBallGapRatio,
		MergeRule:     DefaultMergeRule,
	}
}

// LegacyBallLineConfig 返回早期版本的固定配置
// 4 个红色小球，间距 1.5 个直径，两球一旦相交即视为融合
func LegacyBallLineConfig() BallLineConfig {
	return BallLineConfig{
		BallCount:     4,
		BallColor:     "red",
		BallSizeRatio: 0.75,
		BallGapRatio:  1.5,
		MergeRule:     "intersect",
	}
}

// namedColors 可直接使用的颜色名
var namedColors = map[string]color.RGBA{
	"blue":   {R: 0x33, G: 0x66, B: 0xff, A: 0xff},
	"red":    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"green":  {R: 0x2e, G: 0xb8, B: 0x5c, A: 0xff},
	"orange": {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	"purple": {R: 0x9c, G: 0x27, B: 0xb0, A: 0xff},
	"black":  {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"white":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor 解析颜色字符串
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	c, err := colorful.Hex(name)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Sanitize 校验各字段，越界的字段回退到默认值
//
// 回退不是错误：每次回退会打印一条日志，返回值始终可以直接用于布局。
// 注意间距的下限依赖于（回退后的）尺寸比例，因此先处理尺寸比例。
func (c BallLineConfig) Sanitize() BallLineConfig {
	out := c

	if err := validate.Var(out.BallCount, "min=1"); err != nil {
		log.Printf("[Config] ballCount=%d 无效，使用默认值 %d", out.BallCount, DefaultBallCount)
		out.BallCount = DefaultBallCount
	}

	if _, err := ParseColor(out.BallColor); err != nil {
		log.Printf("[Config] ballColor=%q 无效，使用默认值 %s", out.BallColor, DefaultBallColor)
		out.BallColor = DefaultBallColor
	}

	sizeRule := fmt.Sprintf("gte=%g,lte=%g", MinBallSizeRatio, MaxBallSizeRatio)
	if err := validate.Var(out.BallSizeRatio, sizeRule); err != nil {
		log.Printf("[Config] ballSizeRatio=%.3f 超出 [%.1f, %.1f]，使用默认值 %.2f",
			out.BallSizeRatio, MinBallSizeRatio, MaxBallSizeRatio, DefaultBallSizeRatio)
		out.BallSizeRatio = DefaultBallSizeRatio
	}

	gapRule := fmt.Sprintf("gte=%g,lte=%g", out.BallSizeRatio, MaxBallGapRatio)
	if err := validate.Var(out.BallGapRatio, gapRule); err != nil {
		log.Printf("[Config] ballGapRatio=%.3f 超出 [%.2f, %.1f]，使用默认值 %.1f",
			out.BallGapRatio, out.BallSizeRatio, MaxBallGapRatio, DefaultBallGapRatio)
		out.BallGapRatio = DefaultBallGapRatio
	}

	if err := validate.Var(out.MergeRule, "oneof=intersect full_intersect"); err != nil {
		if out.MergeRule != "" {
			log.Printf("[Config] mergeRule=%q 无效，使用默认值 %s", out.MergeRule, DefaultMergeRule)
		}
		out.MergeRule = DefaultMergeRule
	}

	return out
}

// Color 返回解析后的颜色，无法解析时返回默认蓝色
func (c BallLineConfig) Color() color.RGBA {
	if clr, err := ParseColor(c.BallColor); err == nil {
		return clr
	}
	return namedColors[DefaultBallColor]
}

// Rule 返回解析后的融合规则，无法解析时返回默认规则
func (c BallLineConfig) Rule() geometry.MergeRule {
	rule, err := geometry.ParseMergeRule(c.MergeRule)
	if err != nil {
		return geometry.MergeRuleFullIntersect
	}
	return rule
}
