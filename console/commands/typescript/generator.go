package typescript

import (
	"sort"
	"time"

	"github.com/go-home-admin/clientgen/console/commands/openapi"
)

// Generator 持有整个文档, Interface/Service每次调用都是纯转换, 互相不依赖
type Generator struct {
	spec *openapi.Spec
}

func NewGenerator(spec *openapi.Spec) *Generator {
	return &Generator{spec: spec}
}

// Ext 产物文件后缀
func (g *Generator) Ext() string {
	return ".ts"
}

// 每个产物头部的说明注释, 只做说明不影响生成逻辑
func (g *Generator) infoComment() string {
	str := "/*\n"
	str += " * This file was generated by clientgen\n"
	str += " * Do not modify this file manually.\n"
	str += " * Version: " + g.spec.Info.Version + "\n"
	str += " * Title: " + g.spec.Info.Title + "\n"
	str += " * Description: " + g.spec.Info.Description + "\n"
	str += " * Author: go-home-admin\n"
	str += " * Generated on: " + time.Now().Format("2006-01-02") + "\n"
	str += " */\n\n"
	return str
}

// 属性遍历顺序和map无关, 保证同一次运行内结果稳定
func sortKeys(m map[string]*openapi.Schema) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortPathMap(m map[string]*openapi.Path) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
