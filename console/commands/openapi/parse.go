package openapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse 解析swagger.json
// 顶层字段不齐时直接报错, 后续生成阶段不再产生任何错误
func Parse(data []byte) (*Spec, error) {
	spec := &Spec{}
	if err := json.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("swagger.json解析失败: %w", err)
	}
	if err := spec.check(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *Spec) check() error {
	miss := make([]string, 0)
	if s.Info.Title == "" {
		miss = append(miss, "info.title")
	}
	if s.Info.Version == "" {
		miss = append(miss, "info.version")
	}
	if s.Info.Description == "" {
		miss = append(miss, "info.description")
	}
	if len(s.Schemes) == 0 {
		miss = append(miss, "schemes")
	}
	if s.Host == "" {
		miss = append(miss, "host")
	}
	if s.BasePath == "" {
		miss = append(miss, "basePath")
	}
	if s.Definitions == nil {
		miss = append(miss, "definitions")
	}
	if s.Paths == nil {
		miss = append(miss, "paths")
	}
	if len(miss) != 0 {
		return fmt.Errorf("swagger.json缺少字段: %v", strings.Join(miss, ", "))
	}
	return nil
}

// RefName 去掉引用前缀得到类型名, #/definitions/User -> User
func RefName(ref string) string {
	return strings.Replace(ref, "#/definitions/", "", 1)
}
