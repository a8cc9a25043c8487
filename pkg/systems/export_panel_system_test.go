package systems

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/pupik/pkg/components"
	"github.com/gonewx/pupik/pkg/config"
	"github.com/gonewx/pupik/pkg/ecs"
	"github.com/gonewx/pupik/pkg/entities"
	"github.com/gonewx/pupik/pkg/game"
	"github.com/gonewx/pupik/pkg/types"
	"github.com/gonewx/pupik/pkg/utils"
)

// fakeKeyboard 每帧按顺序返回预设的输入
type fakeKeyboard struct {
	chars     [][]rune
	backspace []bool
	frame     int
}

func (k *fakeKeyboard) InputChars() []rune {
	if k.frame < len(k.chars) {
		return k.chars[k.frame]
	}
	return nil
}

func (k *fakeKeyboard) Backspace() bool {
	defer func() { k.frame++ }()
	if k.frame < len(k.backspace) {
		return k.backspace[k.frame]
	}
	return false
}

type panelFixture struct {
	em       *ecs.EntityManager
	keyboard *fakeKeyboard
	settings *game.SettingsManager
	system   *ExportPanelSystem
	file     ecs.EntityID
	weight   ecs.EntityID
	dir      string
}

func newPanelFixture(t *testing.T, fileName, weight string) *panelFixture {
	t.Helper()
	f := &panelFixture{
		em:       ecs.NewEntityManager(),
		keyboard: &fakeKeyboard{},
		settings: game.NewSettingsManager(nil),
		dir:      filepath.Join(t.TempDir(), "structures"),
	}
	f.file = entities.NewTextInput(f.em, components.TextFieldFileName, "File name:", fileName, config.Rect{X: 100, Y: 100, Width: 200, Height: 20})
	f.weight = entities.NewTextInput(f.em, components.TextFieldWeight, "Relative weight:", weight, config.Rect{X: 100, Y: 140, Width: 200, Height: 20})
	f.system = NewExportPanelSystem(f.em, f.keyboard, game.NewExporter(f.dir, "export"), f.settings, f.file, f.weight)
	return f
}

func (f *panelFixture) field(id ecs.EntityID) *components.TextInputComponent {
	input, _ := ecs.GetComponent[*components.TextInputComponent](f.em, id)
	return input
}

func TestExportPanelFocusByClick(t *testing.T) {
	f := newPanelFixture(t, "", "1")

	f.system.Update(press(150, 145), 1.0/60)
	if !f.field(f.weight).IsFocused || f.field(f.file).IsFocused {
		t.Error("Weight field should be focused")
	}

	f.system.Update(press(10, 10), 1.0/60)
	if f.field(f.weight).IsFocused || f.field(f.file).IsFocused {
		t.Error("Clicking elsewhere should clear focus")
	}
}

func TestExportPanelFileNameStripsDots(t *testing.T) {
	f := newPanelFixture(t, "", "1")
	f.field(f.file).IsFocused = true
	f.keyboard.chars = [][]rune{[]rune("my.tower..")}

	f.system.Update(utils.PointerState{}, 1.0/60)

	if got := f.field(f.file).Text; got != "mytower" {
		t.Errorf("File name = %q, want %q", got, "mytower")
	}
}

func TestExportPanelWeightValidation(t *testing.T) {
	tests := []struct {
		name      string
		typed     string
		wantText  string
		wantReady bool
	}{
		{"decimal comma", "0,2", "0.2", true},
		{"integer", "119", "119", true},
		{"surrounding spaces", " 12 ", "12", true},
		{"letters", "abc", "abc", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPanelFixture(t, "", "")
			f.field(f.weight).IsFocused = true
			f.keyboard.chars = [][]rune{[]rune(tt.typed)}

			f.system.Update(utils.PointerState{}, 1.0/60)

			if got := f.field(f.weight).Text; got != tt.wantText {
				t.Errorf("Weight = %q, want %q", got, tt.wantText)
			}
			if f.system.ReadyToExport != tt.wantReady {
				t.Errorf("ReadyToExport = %v, want %v", f.system.ReadyToExport, tt.wantReady)
			}
			if !tt.wantReady && f.system.ValidationMessage != InvalidWeightMessage {
				t.Errorf("Expected validation message, got %q", f.system.ValidationMessage)
			}
		})
	}
}

func TestExportPanelBackspace(t *testing.T) {
	f := newPanelFixture(t, "", "1.5x")
	f.field(f.weight).IsFocused = true
	f.keyboard.backspace = []bool{true}

	f.system.Update(utils.PointerState{}, 1.0/60)

	if got := f.field(f.weight).Text; got != "1.5" {
		t.Errorf("Weight = %q, want %q", got, "1.5")
	}
	if !f.system.ReadyToExport {
		t.Error("Weight should be valid after deleting the bad character")
	}
}

func TestExportPanelMaxLength(t *testing.T) {
	f := newPanelFixture(t, "", "1")
	input := f.field(f.file)
	input.IsFocused = true
	input.MaxLength = 4
	f.keyboard.chars = [][]rune{[]rune("abcdef")}

	f.system.Update(utils.PointerState{}, 1.0/60)

	if input.Text != "abcd" {
		t.Errorf("Text = %q, want %q", input.Text, "abcd")
	}
}

// TestExportPanelRequestExport 导出内容按放置顺序，坐标向零截断
func TestExportPanelRequestExport(t *testing.T) {
	f := newPanelFixture(t, "tower", "1.5")
	entities.NewBuiltItem(f.em, entities.BuiltItemSpec{Template: types.TemplatePlanet, X: 12.9, Y: -3.2})
	entities.NewBuiltItem(f.em, entities.BuiltItemSpec{Template: types.TemplateRainbow, X: 100, Y: 50})

	path, err := f.system.RequestExport()
	if err != nil {
		t.Fatalf("RequestExport failed: %v", err)
	}
	if path != filepath.Join(f.dir, "tower") {
		t.Errorf("Unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	want := "1.5\n12 -3 planet\n100 50 rainbow\n"
	if string(data) != want {
		t.Errorf("Export content = %q, want %q", string(data), want)
	}

	if f.system.StatusIsError {
		t.Errorf("Unexpected error status %q", f.system.Status)
	}
	settings := f.settings.GetSettings()
	if settings.LastFileName != "tower" || settings.LastWeight != "1.5" {
		t.Errorf("Settings not remembered: %+v", settings)
	}
}

func TestExportPanelSkipsItemsErasedThisFrame(t *testing.T) {
	f := newPanelFixture(t, "", "2")
	entities.NewBuiltItem(f.em, entities.BuiltItemSpec{Template: types.TemplatePlanet, X: 1, Y: 1})
	_, marker := entities.NewBuiltItem(f.em, entities.BuiltItemSpec{Template: types.TemplatePlane, X: 2, Y: 2})
	entities.DestroyBuiltItem(f.em, marker)

	items := CollectExportItems(f.em)
	if len(items) != 1 || items[0].Name != "planet" {
		t.Errorf("Expected only the planet, got %+v", items)
	}
}

func TestExportPanelBlockedWhenNotReady(t *testing.T) {
	f := newPanelFixture(t, "tower", "heavy")

	_, err := f.system.RequestExport()
	if !errors.Is(err, game.ErrInvalidWeight) {
		t.Fatalf("Expected ErrInvalidWeight, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(f.dir, "tower")); !os.IsNotExist(statErr) {
		t.Error("No file should be written while the weight is invalid")
	}
	if !f.system.StatusIsError {
		t.Error("Status should report the error")
	}
}

func TestExportPanelWriteFailure(t *testing.T) {
	f := newPanelFixture(t, "tower", "1")
	// 导出目录被同名文件占用
	if err := os.WriteFile(f.dir, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := f.system.RequestExport()
	if !errors.Is(err, game.ErrExportFailed) {
		t.Fatalf("Expected ErrExportFailed, got %v", err)
	}
	if f.system.Status != "EXPORT FAILED" {
		t.Errorf("Unexpected status %q", f.system.Status)
	}
}
