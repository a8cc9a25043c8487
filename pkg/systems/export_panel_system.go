package systems

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/utils"
)

const (
	// InvalidWeightMessage 重量输入无效时显示的提示
	InvalidWeightMessage = "PLEASE ENTER A VALID FLOAT NUMBER"

	// WeightHint 导出面板底部的示例重量
	WeightHint = "Some example weights:\n   Rainbow is 0.2\n   Basic enemy is 119\n   Energy bar is 12"
)

// ExportPanelSystem 导出面板系统
//
// 职责：
//   - 点击输入框获得焦点，点击其他位置失去焦点
//   - 向焦点输入框写入键盘字符，文件名去掉点号，重量规范化（去空白、逗号转点）
//   - 每帧校验重量，更新 ReadyToExport 和提示信息
//   - RequestExport 收集已放置元素并通过 game.Exporter 写入文件
type ExportPanelSystem struct {
	entityManager *ecs.EntityManager
	keyboard      KeyboardSource
	exporter      *game.Exporter
	settings      *game.SettingsManager

	fileField   ecs.EntityID
	weightField ecs.EntityID

	// ReadyToExport 重量合法时为 true，否则导出按钮无效
	ReadyToExport bool
	// ValidationMessage 重量校验提示（合法时为空）
	ValidationMessage string
	// Status 最近一次导出的结果
	Status string
	// StatusIsError 最近一次导出是否失败
	StatusIsError bool
}

// NewExportPanelSystem 创建导出面板系统
// settings 可为 nil（不记录上次输入）
func NewExportPanelSystem(em *ecs.EntityManager, keyboard KeyboardSource, exporter *game.Exporter, settings *game.SettingsManager, fileField, weightField ecs.EntityID) *ExportPanelSystem {
	s := &ExportPanelSystem{
		entityManager: em,
		keyboard:      keyboard,
		exporter:      exporter,
		settings:      settings,
		fileField:     fileField,
		weightField:   weightField,
	}
	s.validate()
	return s
}

// Update 处理焦点、键盘输入和重量校验
func (s *ExportPanelSystem) Update(ptr utils.PointerState, deltaTime float64) {
	if ptr.Available && ptr.JustPressed {
		s.updateFocus(float64(ptr.X), float64(ptr.Y))
	}

	for _, entityID := range []ecs.EntityID{s.fileField, s.weightField} {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		updateCursorBlink(input, deltaTime)
		if s.keyboard != nil {
			s.handleKeyboardInput(input)
		}
	}

	s.validate()
}

// updateFocus 点击位置所在的输入框获得焦点（屏幕坐标）
func (s *ExportPanelSystem) updateFocus(x, y float64) {
	for _, entityID := range []ecs.EntityID{s.fileField, s.weightField} {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}
		focused := x >= input.X && x <= input.X+input.Width && y >= input.Y && y <= input.Y+input.Height
		if focused && !input.IsFocused {
			input.CursorBlinkTimer = 0
			input.CursorVisible = true
		}
		input.IsFocused = focused
	}
}

// updateCursorBlink 更新光标闪烁状态
func updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理字符输入和退格
func (s *ExportPanelSystem) handleKeyboardInput(input *components.TextInputComponent) {
	changed := false

	if runes := s.keyboard.InputChars(); len(runes) > 0 {
		changed = insertText(input, runes) || changed
	}

	if s.keyboard.Backspace() {
		runes := []rune(input.Text)
		if len(runes) > 0 {
			input.Text = string(runes[:len(runes)-1])
			changed = true
		}
	}

	if !changed {
		return
	}

	input.Text = normalizeField(input.Kind, input.Text)
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// insertText 在末尾追加字符，遵守最大长度
func insertText(input *components.TextInputComponent, runes []rune) bool {
	text := []rune(input.Text)
	inserted := false
	for _, r := range runes {
		if r < ' ' {
			continue
		}
		if input.MaxLength > 0 && len(text) >= input.MaxLength {
			log.Printf("[ExportPanelSystem] 达到最大长度限制 (%d 字符)", input.MaxLength)
			break
		}
		text = append(text, r)
		inserted = true
	}
	input.Text = string(text)
	return inserted
}

// normalizeField 文件名去掉点号；重量去首尾空白并把逗号换成点
func normalizeField(kind components.TextFieldKind, text string) string {
	switch kind {
	case components.TextFieldFileName:
		return strings.ReplaceAll(text, ".", "")
	case components.TextFieldWeight:
		return game.NormalizeWeight(text)
	}
	return text
}

// validate 重量必须是合法浮点数（空输入同样无效）
func (s *ExportPanelSystem) validate() {
	if _, err := game.ParseWeight(s.fieldText(s.weightField)); err != nil {
		s.ReadyToExport = false
		s.ValidationMessage = InvalidWeightMessage
		return
	}
	s.ReadyToExport = true
	s.ValidationMessage = ""
}

// Fields 返回文件名和重量输入框的当前内容
func (s *ExportPanelSystem) Fields() (fileName, weight string) {
	return s.fieldText(s.fileField), s.fieldText(s.weightField)
}

func (s *ExportPanelSystem) fieldText(entityID ecs.EntityID) string {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
	if !ok {
		return ""
	}
	return input.Text
}

// RequestExport 导出按钮按下时调用
//
// 重量无效时不写文件，返回 ErrInvalidWeight；
// 写入失败时返回包装了 ErrExportFailed 的错误。两种情况都只更新状态行，不会中断会话。
func (s *ExportPanelSystem) RequestExport() (string, error) {
	s.validate()
	if !s.ReadyToExport {
		s.Status = InvalidWeightMessage
		s.StatusIsError = true
		return "", fmt.Errorf("%w: %q", game.ErrInvalidWeight, s.fieldText(s.weightField))
	}

	fileName := s.fieldText(s.fileField)
	weight := s.fieldText(s.weightField)

	path, err := s.exporter.Export(game.ExportRequest{
		FileName: fileName,
		Weight:   weight,
		Items:    CollectExportItems(s.entityManager),
	})
	if err != nil {
		log.Printf("[ExportPanelSystem] Export failed: %v", err)
		s.Status = "EXPORT FAILED"
		if errors.Is(err, game.ErrInvalidWeight) {
			s.Status = InvalidWeightMessage
		}
		s.StatusIsError = true
		return "", err
	}

	s.Status = "Saved to " + path
	s.StatusIsError = false

	if s.settings != nil {
		s.settings.RememberExport(fileName, weight)
		if err := s.settings.Save(); err != nil {
			log.Printf("[ExportPanelSystem] Warning: failed to save settings: %v", err)
		}
	}

	return path, nil
}

// CollectExportItems 按放置顺序（实体ID升序）收集已放置元素
// 本帧已标记删除的元素不导出
func CollectExportItems(em *ecs.EntityManager) []game.ExportItem {
	ids := ecs.GetEntitiesWith2[*components.BuiltItemComponent, *components.PositionComponent](em)
	items := make([]game.ExportItem, 0, len(ids))
	for _, id := range ids {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		item, _ := ecs.GetComponent[*components.BuiltItemComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		items = append(items, game.ExportItem{X: pos.X, Y: pos.Y, Name: item.Name})
	}
	return items
}
