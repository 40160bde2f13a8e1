package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/bezierdemo/pkg/embedded"
	"github.com/decker502/bezierdemo/pkg/utils"
)

const (
	// DefaultPagesConfigPath 默认页面配置文件（嵌入资源）
	DefaultPagesConfigPath = "data/pages.yaml"
	// DefaultEasing 默认缓动：先加速后减速
	DefaultEasing = "accelerate_decelerate"
)

// PagesConfig 分页配置
//
// 每一页对应一个标签，页面内放置一个小球连线 View。
//
// 配置文件位置: data/pages.yaml
type PagesConfig struct {
	Pages []PageConfig `yaml:"pages"`
}

// PageConfig 单页配置
type PageConfig struct {
	// Title 标签标题
	Title string `yaml:"title"`
	// Padding View 左右内边距（像素）
	Padding int `yaml:"padding"`
	// Easing 动画缓动名称：linear / accelerate_decelerate / in_out_cubic
	Easing string `yaml:"easing"`
	// BallLine 小球连线配置
	BallLine BallLineConfig `yaml:"ballLine"`
}

// EasingFunc 返回页面的缓动函数，未知名称使用默认缓动
func (p PageConfig) EasingFunc() utils.EasingFunc {
	if fn, ok := utils.EasingByName(p.Easing); ok {
		return fn
	}
	return utils.EaseAccelerateDecelerate
}

// sanitizeEasing 空值或未知名称回退默认缓动
func sanitizeEasing(name string) string {
	if name == "" {
		return DefaultEasing
	}
	if _, ok := utils.EasingByName(name); !ok {
		log.Printf("[Config] easing=%q 无效，使用默认值 %s", name, DefaultEasing)
		return DefaultEasing
	}
	return name
}

// DefaultPagesConfig 返回内置的三页配置
// 第 1 页为早期版本，第 2 页为默认配置，第 3 页为自定义配置
func DefaultPagesConfig() *PagesConfig {
	return &PagesConfig{
		Pages: []PageConfig{
			{Title: "1", Padding: 16, Easing: DefaultEasing, BallLine: LegacyBallLineConfig()},
			{Title: "2", Padding: 16, Easing: DefaultEasing, BallLine: DefaultBallLineConfig()},
			{Title: "3", Padding: 32, Easing: "in_out_cubic", BallLine: BallLineConfig{
				BallCount:     3,
				BallColor:     "#2eb85c",
				BallSizeRatio: 0.6,
				BallGapRatio:  0.8,
				MergeRule:     "full_intersect",
			}},
		},
	}
}

// LoadPagesConfig 加载分页配置
//
// 优先从嵌入资源读取，嵌入资源中不存在时按磁盘路径读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/pages.yaml"）
//
// 返回:
//   - *PagesConfig: 校验并回退默认值后的配置
//   - error: 读取或解析失败时返回错误
func LoadPagesConfig(path string) (*PagesConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pages config %s: %w", path, err)
	}

	cfg, err := ParsePagesConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid pages config %s: %w", path, err)
	}

	log.Printf("[Config] 加载分页配置 %s: %d 页", path, len(cfg.Pages))
	return cfg, nil
}

// ParsePagesConfig 解析 YAML 格式的分页配置
//
// 缺省字段先填入默认配置再覆盖，因此 YAML 中只需写出需要修改的键。
func ParsePagesConfig(data []byte) (*PagesConfig, error) {
	var raw struct {
		Pages []yaml.Node `yaml:"pages"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse pages config: %w", err)
	}

	cfg := &PagesConfig{}
	for i, node := range raw.Pages {
		page := PageConfig{
			Title:    fmt.Sprintf("%d", i+1),
			BallLine: DefaultBallLineConfig(),
		}
		if err := node.Decode(&page); err != nil {
			return nil, fmt.Errorf("page #%d: %w", i+1, err)
		}
		cfg.Pages = append(cfg.Pages, page)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for i := range cfg.Pages {
		cfg.Pages[i].Easing = sanitizeEasing(cfg.Pages[i].Easing)
		cfg.Pages[i].BallLine = cfg.Pages[i].BallLine.Sanitize()
	}
	return cfg, nil
}

// Validate 检查结构性错误
// 字段取值越界不在这里处理（由 BallLineConfig.Sanitize 回退默认值）
//
// 左右内边距之和必须小于窗口宽度，否则 View 没有空间排列小球。
func (c *PagesConfig) Validate() error {
	if len(c.Pages) == 0 {
		return fmt.Errorf("pages config must contain at least one page")
	}
	for i, page := range c.Pages {
		if page.Padding < 0 {
			return fmt.Errorf("page #%d (%s): padding must not be negative, got %d", i+1, page.Title, page.Padding)
		}
		if 2*page.Padding >= WindowWidth {
			return fmt.Errorf("page #%d (%s): padding %d leaves no room in a %dpx wide window",
				i+1, page.Title, page.Padding, WindowWidth)
		}
	}
	return nil
}
