package languages

import (
	"path/filepath"
	"strings"
)

// Extension 提取文件名中最后一个点号之后的后缀（不含点号，保持大小写）。
//
// 以下情况视为没有后缀，返回 ok=false：
// - 文件名中没有点号（Makefile）
// - 文件名以点号开头且后面再无点号（.gitignore）
// - 点号位于末尾（notes.）
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}
	return name[idx+1:], true
}

// eachLine 按 \n 切分文本并逐行回调，行内容不包含行尾符。
//
// 约束说明：
// - \r\n 视为一个行尾符，\r 会被去掉，不会多出一行
// - 最后一行即使没有行尾符也会被回调
// - 以行尾符结尾的文本不会在末尾产生额外的空行
func eachLine(content string, fn func(line string)) {
	for len(content) > 0 {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			fn(content)
			return
		}
		fn(strings.TrimSuffix(content[:idx], "\r"))
		content = content[idx+1:]
	}
}
