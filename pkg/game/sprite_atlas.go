package game

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteAtlas 模板精灵图集
//
// 每个模板对应一张精灵，调色板图标、工具光标和已放置元素共用。
// 精灵按配置中的尺寸和颜色绘制，不依赖外部图片文件。
type SpriteAtlas struct {
	sprites map[types.TemplateID]*ebiten.Image
	sizes   map[types.TemplateID][2]float64
	eraser  *ebiten.Image
	export  *ebiten.Image
}

// 工具图标尺寸
const glyphSize = 64

// NewSpriteAtlas 根据调色板配置生成全部精灵
func NewSpriteAtlas(cfg *config.EditorConfig) *SpriteAtlas {
	atlas := &SpriteAtlas{
		sprites: make(map[types.TemplateID]*ebiten.Image),
		sizes:   make(map[types.TemplateID][2]float64),
	}

	for _, item := range cfg.Palette.Items {
		atlas.sprites[item.TemplateID] = drawTemplateSprite(item)
		atlas.sizes[item.TemplateID] = [2]float64{item.Width, item.Height}
	}
	atlas.eraser = drawEraserGlyph()
	atlas.export = drawExportGlyph()

	log.Printf("[SpriteAtlas] Generated %d template sprites", len(atlas.sprites))
	return atlas
}

// Sprite 返回模板精灵，未知模板返回 nil
func (a *SpriteAtlas) Sprite(id types.TemplateID) *ebiten.Image {
	return a.sprites[id]
}

// Size 返回模板精灵的尺寸（像素）
func (a *SpriteAtlas) Size(id types.TemplateID) (float64, float64) {
	size, ok := a.sizes[id]
	if !ok {
		return 0, 0
	}
	return size[0], size[1]
}

// Eraser 返回橡皮擦光标图标
func (a *SpriteAtlas) Eraser() *ebiten.Image {
	return a.eraser
}

// ExportGlyph 返回导出按钮图标
func (a *SpriteAtlas) ExportGlyph() *ebiten.Image {
	return a.export
}

func drawTemplateSprite(item config.PaletteItemConfig) *ebiten.Image {
	w := int(math.Ceil(item.Width))
	h := int(math.Ceil(item.Height))
	img := ebiten.NewImage(w, h)

	fw, fh := float32(item.Width), float32(item.Height)
	clr := item.RGBA
	dark := shade(clr, 0.6)

	switch item.TemplateID {
	case types.TemplatePlanet:
		r := min(fw, fh) / 2
		vector.DrawFilledCircle(img, fw/2, fh/2, r, clr, true)
		vector.DrawFilledCircle(img, fw/2-r/3, fh/2-r/4, r/4, dark, true)
		vector.DrawFilledRect(img, 0, fh/2-fh/20, fw, fh/10, dark, true)

	case types.TemplateBlackHole:
		r := min(fw, fh) / 2
		vector.DrawFilledCircle(img, fw/2, fh/2, r, shade(clr, 1.8), true)
		vector.DrawFilledCircle(img, fw/2, fh/2, r*0.7, clr, true)
		vector.StrokeCircle(img, fw/2, fh/2, r*0.85, 2, color.RGBA{R: 0xc9, G: 0x9b, B: 0xff, A: 0xff}, true)

	case types.TemplateEnergyBar:
		vector.StrokeRect(img, 1, 1, fw-2, fh-2, 2, dark, true)
		const segments = 5
		segW := (fw - 8) / segments
		for i := 0; i < segments; i++ {
			vector.DrawFilledRect(img, 4+float32(i)*segW, 4, segW-3, fh-8, clr, true)
		}

	case types.TemplateRainbow:
		bands := []color.RGBA{
			clr,
			{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff},
			{R: 0x6f, G: 0xcf, B: 0x97, A: 0xff},
			{R: 0x56, G: 0xcc, B: 0xf2, A: 0xff},
		}
		bandH := fh / float32(len(bands))
		for i, band := range bands {
			vector.DrawFilledRect(img, float32(i)*bandH/2, float32(i)*bandH, fw-float32(i)*bandH, bandH, band, true)
		}

	case types.TemplateHeart:
		r := fw / 4
		vector.DrawFilledCircle(img, r, r, r, clr, true)
		vector.DrawFilledCircle(img, 3*r, r, r, clr, true)
		// 下半部分用逐行收窄的横条拼出三角形
		top := r
		for y := top; y < fh; y++ {
			half := (fw / 2) * (1 - (y-top)/(fh-top))
			vector.DrawFilledRect(img, fw/2-half, y, 2*half, 1, clr, false)
		}

	case types.TemplatePlane:
		vector.DrawFilledRect(img, 0, fh*0.4, fw, fh*0.2, clr, true)
		vector.DrawFilledRect(img, fw*0.4, 0, fw*0.15, fh, dark, true)
		vector.DrawFilledRect(img, 0, fh*0.25, fw*0.08, fh*0.5, dark, true)

	default:
		vector.DrawFilledRect(img, 0, 0, fw, fh, clr, false)
	}

	return img
}

func drawEraserGlyph() *ebiten.Image {
	img := ebiten.NewImage(glyphSize, glyphSize)
	vector.DrawFilledRect(img, 8, 20, 48, 24, color.RGBA{R: 0xff, G: 0x8f, B: 0xa3, A: 0xff}, true)
	vector.DrawFilledRect(img, 8, 20, 16, 24, color.RGBA{R: 0x4f, G: 0x6d, B: 0xb8, A: 0xff}, true)
	vector.StrokeRect(img, 8, 20, 48, 24, 2, color.Black, true)
	return img
}

func drawExportGlyph() *ebiten.Image {
	img := ebiten.NewImage(glyphSize, glyphSize)
	black := color.Black
	vector.StrokeRect(img, 12, 28, 40, 28, 3, black, true)
	vector.StrokeLine(img, 32, 8, 32, 40, 3, black, true)
	vector.StrokeLine(img, 32, 8, 22, 18, 3, black, true)
	vector.StrokeLine(img, 32, 8, 42, 18, 3, black, true)
	return img
}

// shade 按比例调整颜色亮度
func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*factor))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
