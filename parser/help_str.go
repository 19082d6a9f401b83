package parser

import (
	"strings"
	"unicode"
)

func InArrString(str string, arr []string) bool {
	for _, s := range arr {
		if s == str {
			return true
		}
	}
	return false
}

// StringToHump 下划线转大驼峰, 每段首字母大写, 其余字符保持原样
func StringToHump(s string) string {
	arr := strings.Split(s, "_")
	data := make([]string, 0, len(arr))
	for _, s2 := range arr {
		if s2 == "" {
			continue
		}
		r := []rune(s2)
		r[0] = unicode.ToUpper(r[0])
		data = append(data, string(r))
	}
	return strings.Join(data, "")
}
