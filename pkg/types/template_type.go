// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// TemplateID 定义可放置结构元素的模板类型
// 调色板按钮、工具光标和已放置元素都通过它引用同一套精灵
type TemplateID int

const (
	// TemplateUnknown 未知模板
	TemplateUnknown TemplateID = iota
	// TemplatePlanet 行星
	TemplatePlanet
	// TemplateBlackHole 黑洞
	TemplateBlackHole
	// TemplateEnergyBar 能量条
	TemplateEnergyBar
	// TemplateRainbow 彩虹
	TemplateRainbow
	// TemplateHeart 爱心（导出名为 regular，对应普通敌人）
	TemplateHeart
	// TemplatePlane 飞机
	TemplatePlane
)

// AllTemplates 按调色板从左到右的顺序列出全部模板
var AllTemplates = []TemplateID{
	TemplatePlanet,
	TemplateBlackHole,
	TemplateEnergyBar,
	TemplateRainbow,
	TemplateHeart,
	TemplatePlane,
}

// ExportName 返回模板在导出文件中的固定名称
// 未知模板返回空字符串，导出时降级为空名称字段而不是报错
func (t TemplateID) ExportName() string {
	switch t {
	case TemplateBlackHole:
		return "blackhole"
	case TemplateRainbow:
		return "rainbow"
	case TemplateEnergyBar:
		return "energybar"
	case TemplateHeart:
		return "regular"
	case TemplatePlane:
		return "plane"
	case TemplatePlanet:
		return "planet"
	default:
		return ""
	}
}

// String 返回模板类型的字符串表示
func (t TemplateID) String() string {
	switch t {
	case TemplatePlanet:
		return "Planet"
	case TemplateBlackHole:
		return "BlackHole"
	case TemplateEnergyBar:
		return "EnergyBar"
	case TemplateRainbow:
		return "Rainbow"
	case TemplateHeart:
		return "Heart"
	case TemplatePlane:
		return "Plane"
	default:
		return "Unknown"
	}
}

// ParseTemplate 根据配置文件中的键（String() 的小写形式或导出名）查找模板
func ParseTemplate(key string) (TemplateID, bool) {
	for _, t := range AllTemplates {
		if key == t.ExportName() || key == t.String() || key == strings.ToLower(t.String()) {
			return t, true
		}
	}
	return TemplateUnknown, false
}
