package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针输入快照
// 同一帧内所有系统读取同一份快照，保证看到一致的输入
type PointerState struct {
	// X, Y 指针的屏幕坐标
	X, Y int

	// Available 指针是否位于窗口内；为 false 时本帧视为无输入
	Available bool

	// Held 主按键（鼠标左键或触摸）是否按住
	Held bool

	// JustPressed 主按键是否在本帧刚刚按下
	JustPressed bool

	// JustReleased 主按键是否在本帧刚刚松开
	JustReleased bool
}

// EbitenPointer 从 Ebitengine 读取指针输入
// 同时支持鼠标和触摸，优先检测触摸
type EbitenPointer struct {
	width, height int
	lastTouchX    int
	lastTouchY    int
	wasTouching   bool
}

// NewEbitenPointer 创建指针输入源
// width/height 为逻辑屏幕尺寸，超出范围的指针视为不可用
func NewEbitenPointer(width, height int) *EbitenPointer {
	return &EbitenPointer{width: width, height: height}
}

// Poll 读取本帧的指针状态，每帧调用一次
func (p *EbitenPointer) Poll() PointerState {
	state := PointerState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.Held = true
		state.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		p.lastTouchX, p.lastTouchY = state.X, state.Y
		p.wasTouching = true
	} else if p.wasTouching {
		// 触摸释放时使用保存的最后触摸位置
		state.X, state.Y = p.lastTouchX, p.lastTouchY
		state.JustReleased = true
		p.wasTouching = false
	} else {
		// 其次检查鼠标输入（桌面设备）
		state.X, state.Y = ebiten.CursorPosition()
		state.Held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	state.Available = state.X >= 0 && state.Y >= 0 && state.X < p.width && state.Y < p.height
	return state
}
