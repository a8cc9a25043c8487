package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrExportFailed 导出失败（目录或文件无法创建/写入）
// 调用方可用 errors.Is 判断；导出失败不会中断编辑会话
var ErrExportFailed = errors.New("export failed")

// ErrInvalidWeight 相对重量不是合法的浮点数
var ErrInvalidWeight = errors.New("invalid relative weight")

// ExportItem 一个待导出的已放置元素
type ExportItem struct {
	X, Y float64
	Name string
}

// ExportRequest 一次导出请求
type ExportRequest struct {
	// FileName 用户输入的文件名（会被清理），为空时使用默认名
	FileName string
	// Weight 相对重量字符串，为空时不写入首行
	Weight string
	// Items 按放置顺序排列的元素
	Items []ExportItem
}

// Exporter 将已放置元素写入纯文本文件
//
// 文件格式（UTF-8，按行）：
//
//	<weight>            可选首行
//	<x> <y> <name>      每个元素一行，坐标向零截断为整数
type Exporter struct {
	dir         string
	defaultName string
}

// NewExporter 创建导出器
func NewExporter(dir, defaultName string) *Exporter {
	return &Exporter{dir: dir, defaultName: defaultName}
}

// Dir 返回导出目录
func (e *Exporter) Dir() string {
	return e.dir
}

// Export 写入导出文件并返回文件路径
// 所有 I/O 错误都包装为 ErrExportFailed
func (e *Exporter) Export(req ExportRequest) (string, error) {
	if req.Weight != "" {
		if _, err := ParseWeight(req.Weight); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory %s: %v", ErrExportFailed, e.dir, err)
	}

	name := SanitizeFileName(req.FileName)
	if name == "" {
		name = e.defaultName
	}
	path := filepath.Join(e.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create file: %v", ErrExportFailed, err)
	}

	writeErr := WriteExport(file, NormalizeWeight(req.Weight), req.Items)
	closeErr := file.Close()
	if writeErr != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrExportFailed, path, writeErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("%w: close %s: %v", ErrExportFailed, path, closeErr)
	}

	log.Printf("[Exporter] 导出 %d 个元素到 %s", len(req.Items), path)
	return path, nil
}

// WriteExport 按导出格式写入 w
func WriteExport(w io.Writer, weight string, items []ExportItem) error {
	bw := bufio.NewWriter(w)

	if weight != "" {
		if _, err := bw.WriteString(weight + "\n"); err != nil {
			return err
		}
	}

	for _, item := range items {
		// int() 向零截断，不是四舍五入
		line := strconv.Itoa(int(item.X)) + " " + strconv.Itoa(int(item.Y)) + " " + item.Name + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SanitizeFileName 清理用户输入的文件名
// 去掉点号（禁止扩展名和 ".."）和路径分隔符，导出文件总是落在导出目录内
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '/', '\\':
			return -1
		}
		return r
	}, name)
}

// NormalizeWeight 规范化重量输入：去掉首尾空白，小数逗号替换为点
func NormalizeWeight(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

// ParseWeight 解析相对重量
func ParseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(NormalizeWeight(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return v, nil
}
