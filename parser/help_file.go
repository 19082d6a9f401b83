package parser

import (
	"os"
)

// IsExist 判断文件或目录是否存在
func IsExist(f string) bool {
	_, err := os.Stat(f)
	return err == nil || os.IsExist(err)
}
