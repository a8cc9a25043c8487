package entities

import (
	"testing"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/types"
)

func TestNewUIObstacleWorldCoordinates(t *testing.T) {
	em := ecs.NewEntityManager()
	vp := Viewport{Width: 800, Height: 600}

	// 底部整行调色板：屏幕 (0, 510) 800x90
	id := NewUIObstacle(em, vp, config.Rect{X: 0, Y: 510, Width: 800, Height: 90})

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	obstacle, ok := ecs.GetComponent[*components.UIObstacleComponent](em, id)
	if !ok {
		t.Fatal("Expected UIObstacleComponent")
	}
	if pos.X != 0 || pos.Y != -255 {
		t.Errorf("Expected world center (0, -255), got (%.1f, %.1f)", pos.X, pos.Y)
	}
	if obstacle.HalfWidth != 400 || obstacle.HalfHeight != 45 {
		t.Errorf("Unexpected half extents %+v", obstacle)
	}
}

func TestNewToolButton(t *testing.T) {
	em := ecs.NewEntityManager()
	vp := Viewport{Width: 800, Height: 600}

	id := NewToolButton(em, vp, components.ToolButtonTemplate, types.TemplatePlane, config.Rect{X: 400, Y: 300, Width: 100, Height: 50}, nil)

	button, ok := ecs.GetComponent[*components.ToolButtonComponent](em, id)
	if !ok {
		t.Fatal("Expected ToolButtonComponent")
	}
	if button.Template != types.TemplatePlane || button.Width != 100 || button.Height != 50 {
		t.Errorf("Unexpected button %+v", button)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 50 || pos.Y != -25 {
		t.Errorf("Expected world center (50, -25), got (%.1f, %.1f)", pos.X, pos.Y)
	}
}
