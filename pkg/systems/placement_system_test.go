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

func fixedRandom(v float64) func() float64 {
	return func() float64 { return v }
}

// TestPlaceOncePerPress 按住多帧只生成一个元素
func TestPlaceOncePerPress(t *testing.T) {
	placer := &Placer{DepthJitter: 100, Random: fixedRandom(0.25)}
	tool := &components.EditorToolComponent{Template: types.TemplatePlanet}

	spawned := 0
	for i := 0; i < 10; i++ {
		if _, ok := placer.Place(PlacementFrame{X: 10, Y: 20, CursorDepth: 900, Held: true, Template: types.TemplatePlanet}, tool); ok {
			spawned++
		}
	}

	if spawned != 1 {
		t.Errorf("Expected exactly 1 spawn for a held press, got %d", spawned)
	}
	if !tool.Armed {
		t.Error("Tool should stay armed while held")
	}
}

// TestPlaceReleaseRearms 松开后再次按下可以生成
func TestPlaceReleaseRearms(t *testing.T) {
	placer := &Placer{DepthJitter: 100, Random: fixedRandom(0)}
	tool := &components.EditorToolComponent{}

	sequence := []bool{true, true, false, true, false, false, true}
	spawned := 0
	for _, held := range sequence {
		if _, ok := placer.Place(PlacementFrame{Held: held, CursorDepth: 900}, tool); ok {
			spawned++
		}
	}

	// 三段按住区间
	if spawned != 3 {
		t.Errorf("Expected 3 spawns for 3 presses, got %d", spawned)
	}
}

func TestPlaceDepthFormula(t *testing.T) {
	tests := []struct {
		name   string
		random float64
		want   float64
	}{
		{"no jitter", 0, 901},
		{"quarter", 0.25, 876},
		{"almost full", 0.99, 802},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placer := &Placer{DepthJitter: 100, Random: fixedRandom(tt.random)}
			tool := &components.EditorToolComponent{}
			item, ok := placer.Place(PlacementFrame{X: 3, Y: -4, CursorDepth: 900, Held: true, Template: types.TemplateHeart}, tool)
			if !ok {
				t.Fatal("Expected a spawn")
			}
			if diff := item.Depth - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Depth = %.4f, want %.4f", item.Depth, tt.want)
			}
			if item.X != 3 || item.Y != -4 || item.Template != types.TemplateHeart {
				t.Errorf("Unexpected item %+v", item)
			}
		})
	}
}

// TestPlaceBlockedByUI UI 区域内不生成，且 Armed 保持不变
func TestPlaceBlockedByUI(t *testing.T) {
	placer := &Placer{DepthJitter: 100, Random: fixedRandom(0.5)}
	tool := &components.EditorToolComponent{}
	bar := utils.AABB{CenterX: 0, CenterY: -300, HalfWidth: 640, HalfHeight: 54}

	// 在调色板上按下
	if _, ok := placer.Place(PlacementFrame{X: 0, Y: -300, Held: true, Obstacles: []utils.AABB{bar}}, tool); ok {
		t.Fatal("Should not spawn over UI")
	}
	if tool.Armed {
		t.Fatal("Armed must stay false when blocked by UI")
	}

	// 按住拖到画布上：仍属于同一次按下，但尚未生成过，因此生成一次
	if _, ok := placer.Place(PlacementFrame{X: 0, Y: 100, Held: true, Obstacles: []utils.AABB{bar}}, tool); !ok {
		t.Error("Dragging off UI while held should spawn once")
	}
	if _, ok := placer.Place(PlacementFrame{X: 0, Y: 120, Held: true, Obstacles: []utils.AABB{bar}}, tool); ok {
		t.Error("Second frame of the same press must not spawn")
	}
}

func TestPlaceArmedUnchangedOverUI(t *testing.T) {
	placer := &Placer{DepthJitter: 100, Random: fixedRandom(0)}
	tool := &components.EditorToolComponent{Armed: true}
	button := utils.AABB{CenterX: 500, CenterY: 300, HalfWidth: 40, HalfHeight: 40}

	placer.Place(PlacementFrame{X: 500, Y: 300, Held: true, Obstacles: []utils.AABB{button}}, tool)
	if !tool.Armed {
		t.Error("Armed must stay true when the pointer is over UI")
	}
}

type stubSprites struct{}

func (stubSprites) Sprite(types.TemplateID) *ebiten.Image    { return nil }
func (stubSprites) Size(types.TemplateID) (float64, float64) { return 60, 40 }

func newPlacementFixture(t *testing.T) (*ecs.EntityManager, *game.EditorState, *PlacementSystem, ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	state := game.NewEditorState(types.TemplatePlanet)
	placer := &Placer{DepthJitter: 100, Random: fixedRandom(0.5)}
	system := NewPlacementSystem(em, state, stubSprites{}, placer)
	toolID := entities.NewEditorToolEntity(em, types.TemplatePlanet, nil, 0, 0, 900)
	return em, state, system, toolID
}

func TestPlacementSystemSpawnsItemAndMarker(t *testing.T) {
	em, _, system, toolID := newPlacementFixture(t)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, toolID)
	pos.X, pos.Y = 25, 75

	created := system.Update(utils.PointerState{Available: true, Held: true, JustPressed: true})
	if len(created) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(created))
	}

	item, _ := ecs.GetComponent[*components.BuiltItemComponent](em, created[0])
	if item.Name != "planet" || item.Depth != 851 {
		t.Errorf("Unexpected item %+v", item)
	}

	markerID, ok := entities.FindMarker(em, created[0])
	if !ok {
		t.Fatal("Expected paired erase marker")
	}
	marker, _ := ecs.GetComponent[*components.EraseMarkerComponent](em, markerID)
	if marker.HalfWidth != 30 || marker.HalfHeight != 20 || marker.Depth != item.Depth {
		t.Errorf("Unexpected marker %+v", marker)
	}

	// 同一次按下的后续帧
	if created := system.Update(utils.PointerState{Available: true, Held: true}); len(created) != 0 {
		t.Errorf("Held press should not spawn again, got %d", len(created))
	}
}

func TestPlacementSystemIdleInEraseMode(t *testing.T) {
	em, state, system, _ := newPlacementFixture(t)
	state.SelectErase()

	if created := system.Update(utils.PointerState{Available: true, Held: true, JustPressed: true}); len(created) != 0 {
		t.Errorf("Erase mode must not place items, got %d", len(created))
	}
	if n := len(ecs.GetEntitiesWith1[*components.BuiltItemComponent](em)); n != 0 {
		t.Errorf("Expected no built items, got %d", n)
	}
}

func TestPlacementSystemIgnoresUnavailablePointer(t *testing.T) {
	em, _, system, toolID := newPlacementFixture(t)
	tool, _ := ecs.GetComponent[*components.EditorToolComponent](em, toolID)
	tool.Armed = true

	system.Update(utils.PointerState{Available: false})
	if !tool.Armed {
		t.Error("A frame without pointer must not touch tool state")
	}
}

func TestPlacementSystemUsesUIObstacles(t *testing.T) {
	em, _, system, toolID := newPlacementFixture(t)
	obstacleID := em.CreateEntity()
	em.AddComponent(obstacleID, &components.PositionComponent{X: 0, Y: 0})
	em.AddComponent(obstacleID, &components.UIObstacleComponent{HalfWidth: 50, HalfHeight: 50})

	// 工具光标位于 (0,0)，与遮挡区域重叠
	if created := system.Update(utils.PointerState{Available: true, Held: true, JustPressed: true}); len(created) != 0 {
		t.Errorf("Expected no spawn over UI, got %d", len(created))
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, toolID)
	pos.X = 200
	if created := system.Update(utils.PointerState{Available: true, Held: true}); len(created) != 1 {
		t.Errorf("Expected spawn after leaving UI, got %d", len(created))
	}
}

func TestPlacementSystemPerToolArming(t *testing.T) {
	em, _, system, firstTool := newPlacementFixture(t)
	secondTool := entities.NewEditorToolEntity(em, types.TemplatePlanet, nil, 300, 0, 900)

	first, _ := ecs.GetComponent[*components.EditorToolComponent](em, firstTool)
	first.Armed = true

	created := system.Update(utils.PointerState{Available: true, Held: true})
	if len(created) != 1 {
		t.Fatalf("Only the unarmed tool should spawn, got %d", len(created))
	}
	second, _ := ecs.GetComponent[*components.EditorToolComponent](em, secondTool)
	if !second.Armed {
		t.Error("Second tool should now be armed")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, created[0])
	if pos.X != 300 {
		t.Errorf("Item should be placed at the second tool, got x=%.1f", pos.X)
	}
}
