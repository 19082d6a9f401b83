package typescript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-home-admin/clientgen/console/commands/openapi"
	"github.com/go-home-admin/clientgen/parser"
)

// Service 汇总所有接口请求方法
// interfaces是本次已生成的结构名, 由调用方传入, 不重扫输出目录
func (g *Generator) Service(interfaces []string) string {
	str := g.infoComment()
	str += "import axios from 'axios';\n\n"
	str += fmt.Sprintf("axios.defaults.baseURL = '%v://%v%v';\n\n", g.spec.Schemes[0], g.spec.Host, g.spec.BasePath)
	for _, name := range interfaces {
		str += fmt.Sprintf("import { %v } from './interfaces/%v';\n", name, name)
	}
	str += "\n"

	for _, url := range sortPathMap(g.spec.Paths) {
		paths := g.spec.Paths[url]
		methods := make([]makeCache, 0)
		methods = append(methods, makeCache{e: paths.Get, method: "get"})
		methods = append(methods, makeCache{e: paths.Post, method: "post"})
		methods = append(methods, makeCache{e: paths.Put, method: "put"})
		methods = append(methods, makeCache{e: paths.Delete, method: "delete"})
		for _, m := range methods {
			if m.e == nil {
				continue
			}
			str += g.serviceMethod(m.method, url, m.e)
		}
	}
	return str
}

type makeCache struct {
	e      *openapi.Endpoint
	method string
}

// 一个path+method生成一个导出函数
func (g *Generator) serviceMethod(method, url string, e *openapi.Endpoint) string {
	//func名, 没有operationId时用路径的字面段拼出一个
	baseName := e.OperationID
	if baseName == "" {
		segments := make([]string, 0)
		for _, s := range strings.Split(url, "/") {
			if s != "" && !strings.HasPrefix(s, "{") {
				segments = append(segments, s)
			}
		}
		baseName = strings.Join(segments, "_")
	}
	funcName := strings.ToLower(method) + parser.StringToHump(baseName)

	//URL参数, 有参数时函数名追加ById
	newUrl, params := analysisUrl(url)
	paramStr := ""
	for _, p := range params {
		paramStr += p + ": string, "
	}
	if len(params) > 0 {
		funcName += "ById"
	}

	//get和delete没有请求体
	dataParam := ""
	dataArg := ""
	if method != "get" && method != "delete" {
		dataParam = "data?: any, "
		dataArg = "data, "
	}

	//响应类型只认200
	response := "any"
	if r, ok := e.Responses["200"]; ok && r.Schema != nil && r.Schema.Ref != "" {
		response = openapi.RefName(r.Schema.Ref)
	}

	return fmt.Sprintf(`export async function %v(%v%vconfig?: any): Promise<%v> {
    const response = await axios.%v(%v, %vconfig);
    return response.data;
}

`,
		funcName,
		paramStr,
		dataParam,
		response,
		method,
		newUrl,
		dataArg,
	)
}

// 提取path中的{参数}并把url改写成模板字符串, 参数按出现顺序去重
func analysisUrl(url string) (newUrl string, params []string) {
	re := regexp.MustCompile(`\{([^/{}]+)}`)
	newUrl = fmt.Sprintf("`%v`", url)
	for _, m := range re.FindAllStringSubmatch(url, -1) {
		p := m[1]
		if parser.InArrString(p, params) {
			continue
		}
		params = append(params, p)
		newUrl = strings.ReplaceAll(newUrl, "{"+p+"}", "${"+p+"}")
	}
	return
}
