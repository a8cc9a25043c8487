package game

import (
	"log"

	"github.com/gonewx/pupik/pkg/types"
)

// Mode 编辑器工具模式
type Mode int

const (
	// ModeBuilding 建造模式：点击画布放置当前模板
	ModeBuilding Mode = iota
	// ModeErasing 擦除模式：点击已放置元素将其移除
	ModeErasing
)

// String 返回模式名称
func (m Mode) String() string {
	switch m {
	case ModeBuilding:
		return "Building"
	case ModeErasing:
		return "Erasing"
	default:
		return "Unknown"
	}
}

// StateChangeListener 模式或模板发生变化时的回调
type StateChangeListener func(mode Mode, template types.TemplateID)

// EditorState 存储编辑会话状态（当前模式与当前模板）
//
// 由场景创建并显式传给各个系统，不使用全局单例。
// 模式只在调色板或橡皮擦按钮按下时切换，没有超时或自动切换；初始为建造模式。
type EditorState struct {
	mode      Mode
	template  types.TemplateID
	listeners []StateChangeListener
}

// NewEditorState 创建编辑会话状态
// initial: 初始选中的模板
func NewEditorState(initial types.TemplateID) *EditorState {
	return &EditorState{
		mode:     ModeBuilding,
		template: initial,
	}
}

// SelectTemplate 选择模板，并强制切换到建造模式
// 重复选择同一模板不会产生任何变化
func (s *EditorState) SelectTemplate(template types.TemplateID) {
	if s.mode == ModeBuilding && s.template == template {
		return
	}

	s.template = template
	s.mode = ModeBuilding
	log.Printf("[EditorState] 选择模板: %v (mode=%v)", template, s.mode)
	s.notify()
}

// SelectErase 切换到擦除模式，重复调用无副作用
func (s *EditorState) SelectErase() {
	if s.mode == ModeErasing {
		return
	}

	s.mode = ModeErasing
	log.Printf("[EditorState] 进入擦除模式")
	s.notify()
}

// CurrentMode 返回当前模式
func (s *EditorState) CurrentMode() Mode {
	return s.mode
}

// CurrentTemplate 返回当前模板（擦除模式下为最后一次选择的模板）
func (s *EditorState) CurrentTemplate() types.TemplateID {
	return s.template
}

// AddChangeListener 注册状态变化回调，只在状态真正变化时触发
func (s *EditorState) AddChangeListener(listener StateChangeListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *EditorState) notify() {
	for _, listener := range s.listeners {
		listener(s.mode, s.template)
	}
}
