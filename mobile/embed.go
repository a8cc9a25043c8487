//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// Makefile 中的 prepare-mobile 目标会把 data/editor.yaml 复制到 mobile/data/。
package mobile

import "embed"

//go:embed data/editor.yaml
var dataFS embed.FS
