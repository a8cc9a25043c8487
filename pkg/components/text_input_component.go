package components

// TextFieldKind 区分导出面板中的输入框
type TextFieldKind int

const (
	// TextFieldFileName 文件名输入框
	TextFieldFileName TextFieldKind = iota
	// TextFieldWeight 相对重量输入框
	TextFieldWeight
)

// TextInputComponent 文本输入框组件
// 输入框属于屏幕空间 UI，不使用世界坐标的 PositionComponent
type TextInputComponent struct {
	Kind  TextFieldKind

	// X, Y 输入框左上角（屏幕坐标）
	X float64
	Y float64
	Label string
	Text  string

	Width  float64
	Height float64

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）

	MaxLength int  // 最大字符数（0 = 无限制）
	IsFocused bool // 是否获得焦点（接收键盘输入）
}
