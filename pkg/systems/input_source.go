package systems

import (
	"github.com/gonewx/pupik/pkg/utils"
)

// PointerSource 每帧提供一次指针输入快照
// 桌面/移动端由 utils.EbitenPointer 实现，测试中使用固定序列
type PointerSource interface {
	Poll() utils.PointerState
}

// KeyboardSource 提供文本输入框需要的键盘输入
type KeyboardSource interface {
	// InputChars 返回本帧输入的字符
	InputChars() []rune
	// Backspace 本帧是否应删除一个字符（含长按连发）
	Backspace() bool
}

// pointerWorld 将指针屏幕坐标转换为世界坐标
func pointerWorld(ptr utils.PointerState, width, height float64) (float64, float64) {
	return utils.ScreenToWorld(float64(ptr.X), float64(ptr.Y), width, height)
}
