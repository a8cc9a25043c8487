package config

import (
	"strings"
	"testing"
)

func TestBundledConfigMatchesSchema(t *testing.T) {
	if err := ValidateEditorSchemaFile("../../data/editor.yaml"); err != nil {
		t.Fatalf("Bundled config should match the schema: %v", err)
	}
}

func TestValidateEditorSchema(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "minimal",
			yaml: "palette:\n  items:\n    - {template: planet, width: 10, height: 10, color: \"#ffffff\"}\n",
		},
		{
			name:    "misspelled key",
			yaml:    "palette:\n  items:\n    - {template: planet, width: 10, height: 10, color: \"#ffffff\"}\nexprot:\n  dir: out\n",
			wantErr: true,
		},
		{
			name:    "missing palette",
			yaml:    "window:\n  width: 800\n",
			wantErr: true,
		},
		{
			name:    "empty items",
			yaml:    "palette:\n  items: []\n",
			wantErr: true,
		},
		{
			name:    "bad color",
			yaml:    "palette:\n  items:\n    - {template: planet, width: 10, height: 10, color: red}\n",
			wantErr: true,
		},
		{
			name:    "zero width",
			yaml:    "palette:\n  items:\n    - {template: planet, width: 0, height: 10, color: \"#ffffff\"}\n",
			wantErr: true,
		},
		{
			name:    "fractional window width",
			yaml:    "window:\n  width: 800.5\npalette:\n  items:\n    - {template: planet, width: 10, height: 10, color: \"#ffffff\"}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEditorSchema([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEditorSchema() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "editor config schema") {
				t.Errorf("Error should be wrapped, got %v", err)
			}
		})
	}
}

func TestCompileEditorSchema(t *testing.T) {
	if _, err := CompileEditorSchema(); err != nil {
		t.Fatalf("Embedded schema should compile: %v", err)
	}
}
