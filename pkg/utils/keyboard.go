package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenKeyboard 从 Ebitengine 读取文本输入
type EbitenKeyboard struct{}

// InputChars 返回本帧输入的字符
func (EbitenKeyboard) InputChars() []rune {
	return ebiten.AppendInputChars(nil)
}

// Backspace 退格键：第1帧立即响应，按住 30 帧后每隔 3 帧响应一次
func (EbitenKeyboard) Backspace() bool {
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	return d == 1 || (d >= 30 && d%3 == 0)
}
