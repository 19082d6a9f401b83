package typescript

import (
	"fmt"

	"github.com/go-home-admin/clientgen/console/commands/openapi"
	"github.com/go-home-admin/clientgen/parser"
)

// Interface 一个definition生成一个ts结构声明
func (g *Generator) Interface(name string, def *openapi.Schema) string {
	str := g.infoComment()
	str += "export interface " + name + " {\n"
	for _, propName := range sortKeys(def.Properties) {
		prop := def.Properties[propName]
		// required缺失时全部按必填处理
		optional := ""
		if def.Required != nil && !parser.InArrString(propName, def.Required) {
			optional = "?"
		}
		str += fmt.Sprintf("    %s%s: %s;\n", propName, optional, tsType(prop))
	}
	str += "}\n"
	return str
}

// 属性类型映射, 识别不了的一律降级为any
func tsType(schema *openapi.Schema) string {
	switch schema.Type {
	case "integer":
		return "number"
	case "string":
		return "string"
	case "boolean":
		return "boolean"
	case "array":
		if schema.Items != nil {
			switch schema.Items.Type {
			case "integer":
				return "number[]"
			case "string":
				return "string[]"
			case "boolean":
				return "boolean[]"
			}
		}
		return "any[]"
	case "object":
		if schema.Ref != "" {
			// 引用其他定义时只引用名字, 不做存在性检查, 错了由ts编译器报
			return openapi.RefName(schema.Ref)
		}
		return "any"
	}
	return "any"
}
