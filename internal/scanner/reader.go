package scanner

import (
	"os"
	"unicode/utf8"

	"loccount/internal/model"
)

// FileReader 从磁盘读取完整文件内容，并要求内容是合法的 UTF-8 文本。
type FileReader struct{}

// ReadContent 读取文件内容，失败时返回 *model.ReadError。
func (FileReader) ReadContent(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &model.ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(content) {
		return "", &model.ReadError{Path: path, Err: model.ErrInvalidEncoding}
	}

	return string(content), nil
}
