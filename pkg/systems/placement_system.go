package systems

import (
	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/entities"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/gonewx/pupik/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlacementFrame 一个工具光标在本帧的放置输入
type PlacementFrame struct {
	// X, Y 工具光标位置（世界坐标）
	X, Y float64
	// CursorDepth 工具光标的深度
	CursorDepth float64
	// Held 主按键是否按住
	Held bool
	// Obstacles 本帧的 UI 遮挡区域
	Obstacles []utils.AABB
	// Template 当前选中的模板
	Template types.TemplateID
}

// NewItem Place 决定生成的新元素
type NewItem struct {
	Template types.TemplateID
	X, Y     float64
	Depth    float64
}

// Placer 放置规则
// 把持续按住的指针信号转换为"每次按下最多生成一个元素"，并避开 UI 区域
type Placer struct {
	// DepthJitter 新元素深度的随机后退范围 [0, DepthJitter)
	DepthJitter float64
	// Random 返回 [0, 1) 的随机数
	Random func() float64
}

// Place 对单个工具光标执行一帧放置判定
//
//   - 未按住：清除 Armed，不生成
//   - 按住且已 Armed：不生成（同一次按下只生成一次）
//   - 按住且光标（1×1 区域）与任一 UI 区域重叠：不生成，Armed 保持不变，
//     因此在 UI 上按下后拖到画布上仍可以生成
//   - 否则：在光标处生成新元素，深度 = 光标深度 - rand[0, DepthJitter) + 1，并设置 Armed
func (p *Placer) Place(frame PlacementFrame, tool *components.EditorToolComponent) (NewItem, bool) {
	if !frame.Held {
		tool.Armed = false
		return NewItem{}, false
	}

	if tool.Armed {
		return NewItem{}, false
	}

	footprint := utils.PointFootprint(frame.X, frame.Y)
	for _, obstacle := range frame.Obstacles {
		if footprint.Overlaps(obstacle) {
			return NewItem{}, false
		}
	}

	depth := frame.CursorDepth - p.Random()*p.DepthJitter + 1
	tool.Armed = true

	return NewItem{
		Template: frame.Template,
		X:        frame.X,
		Y:        frame.Y,
		Depth:    depth,
	}, true
}

// SpriteProvider 提供模板精灵和尺寸，由 game.SpriteAtlas 实现
type SpriteProvider interface {
	Sprite(id types.TemplateID) *ebiten.Image
	Size(id types.TemplateID) (float64, float64)
}

// PlacementSystem 建造模式下的放置系统
// 对每个工具光标独立应用 Placer 规则，并创建元素与擦除标记
type PlacementSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EditorState
	sprites       SpriteProvider
	placer        *Placer
}

// NewPlacementSystem 创建放置系统
func NewPlacementSystem(em *ecs.EntityManager, state *game.EditorState, sprites SpriteProvider, placer *Placer) *PlacementSystem {
	return &PlacementSystem{
		entityManager: em,
		state:         state,
		sprites:       sprites,
		placer:        placer,
	}
}

// Update 执行一帧放置
// 返回本帧新建的元素ID
func (s *PlacementSystem) Update(ptr utils.PointerState) []ecs.EntityID {
	// 指针不在窗口内：本帧视为无操作
	if !ptr.Available {
		return nil
	}
	if s.state.CurrentMode() != game.ModeBuilding {
		return nil
	}

	obstacles := CollectObstacles(s.entityManager)

	var created []ecs.EntityID
	tools := ecs.GetEntitiesWith2[*components.EditorToolComponent, *components.PositionComponent](s.entityManager)
	for _, toolID := range tools {
		tool, _ := ecs.GetComponent[*components.EditorToolComponent](s.entityManager, toolID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, toolID)

		item, ok := s.placer.Place(PlacementFrame{
			X:           pos.X,
			Y:           pos.Y,
			CursorDepth: pos.Z,
			Held:        ptr.Held,
			Obstacles:   obstacles,
			Template:    s.state.CurrentTemplate(),
		}, tool)
		if !ok {
			continue
		}

		spec := entities.BuiltItemSpec{
			Template: item.Template,
			X:        item.X,
			Y:        item.Y,
			Depth:    item.Depth,
		}
		if s.sprites != nil {
			spec.Sprite = s.sprites.Sprite(item.Template)
			spec.Width, spec.Height = s.sprites.Size(item.Template)
		}

		itemID, _ := entities.NewBuiltItem(s.entityManager, spec)
		created = append(created, itemID)
	}

	return created
}

// CollectObstacles 收集所有 UI 遮挡区域（世界坐标）
func CollectObstacles(em *ecs.EntityManager) []utils.AABB {
	ids := ecs.GetEntitiesWith2[*components.UIObstacleComponent, *components.PositionComponent](em)
	obstacles := make([]utils.AABB, 0, len(ids))
	for _, id := range ids {
		obstacle, _ := ecs.GetComponent[*components.UIObstacleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		obstacles = append(obstacles, utils.AABB{
			CenterX:    pos.X,
			CenterY:    pos.Y,
			HalfWidth:  obstacle.HalfWidth,
			HalfHeight: obstacle.HalfHeight,
		})
	}
	return obstacles
}
