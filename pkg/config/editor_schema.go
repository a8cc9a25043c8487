package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed editor.schema.json
var editorSchemaJSON string

// EditorSchemaURL 编译 schema 时使用的资源名
const EditorSchemaURL = "editor.schema.json"

// CompileEditorSchema 编译内置的编辑器配置 JSON Schema
func CompileEditorSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.CompileString(EditorSchemaURL, editorSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to compile editor schema: %w", err)
	}
	return schema, nil
}

// ValidateEditorSchema 按 JSON Schema 检查 YAML 配置的结构
//
// 只检查字段名和取值类型（可捕获拼错的键），
// 模板名、重复条目等语义校验仍由 ParseEditorConfig 完成。
func ValidateEditorSchema(data []byte) error {
	schema, err := CompileEditorSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse editor config YAML: %w", err)
	}

	// 经 JSON 往返一次，得到 schema 校验器期望的值类型
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("editor config is not JSON compatible: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("editor config is not JSON compatible: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("editor config schema: %w", err)
	}
	return nil
}

// ValidateEditorSchemaFile 读取文件并按 JSON Schema 检查
func ValidateEditorSchemaFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read editor config file: %w", err)
	}
	return ValidateEditorSchema(data)
}
