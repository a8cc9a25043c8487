package systems

import (
	"testing"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/entities"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/gonewx/pupik/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// recordingSprites 记录最后一次请求的图像类型，不创建真实图像
type recordingSprites struct {
	lastTemplate types.TemplateID
	eraserCalls  int
}

func (r *recordingSprites) Sprite(id types.TemplateID) *ebiten.Image {
	r.lastTemplate = id
	return nil
}

func (r *recordingSprites) Eraser() *ebiten.Image {
	r.eraserCalls++
	return nil
}

func TestToolCursorFollowsPointer(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewEditorState(types.TemplatePlanet)
	system := NewToolCursorSystem(em, state, &recordingSprites{}, 800, 600)
	toolID := entities.NewEditorToolEntity(em, types.TemplatePlanet, nil, 0, 0, 900)

	system.Update(utils.PointerState{X: 500, Y: 100, Available: true})

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, toolID)
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Expected world (100, 200), got (%.1f, %.1f)", pos.X, pos.Y)
	}
	if pos.Z != 900 {
		t.Errorf("Cursor depth must not change, got %.1f", pos.Z)
	}

	system.Update(utils.PointerState{X: 0, Y: 0, Available: false})
	if pos.X != 100 || pos.Y != 200 {
		t.Error("Cursor should stay put when the pointer is unavailable")
	}
}

func TestToolCursorSwitchesSprite(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewEditorState(types.TemplatePlanet)
	sprites := &recordingSprites{}
	NewToolCursorSystem(em, state, sprites, 800, 600)
	toolID := entities.NewEditorToolEntity(em, types.TemplatePlanet, nil, 0, 0, 900)
	tool, _ := ecs.GetComponent[*components.EditorToolComponent](em, toolID)

	state.SelectErase()
	if !tool.Erasing || sprites.eraserCalls != 1 {
		t.Errorf("Expected eraser cursor, got erasing=%v calls=%d", tool.Erasing, sprites.eraserCalls)
	}

	// 重复进入擦除模式不触发
	state.SelectErase()
	if sprites.eraserCalls != 1 {
		t.Errorf("Idempotent SelectErase should not notify, calls=%d", sprites.eraserCalls)
	}

	state.SelectTemplate(types.TemplateBlackHole)
	if tool.Erasing || tool.Template != types.TemplateBlackHole || sprites.lastTemplate != types.TemplateBlackHole {
		t.Errorf("Expected black hole cursor, got %+v", tool)
	}
}
