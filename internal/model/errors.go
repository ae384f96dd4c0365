package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPaths 表示命令行没有提供任何路径。
	ErrNoPaths = errors.New("no filepath provided")

	// ErrInvalidEncoding 表示文件内容不是合法的 UTF-8 文本。
	ErrInvalidEncoding = errors.New("content is not valid UTF-8 text")

	// ErrScanIncomplete 表示至少有一个路径或文件处理失败，但已输出部分结果。
	ErrScanIncomplete = errors.New("scan finished with errors")
)

// ErrorKind 区分失败发生在参数路径层面还是单文件读取层面。
type ErrorKind string

const (
	KindPath ErrorKind = "path"
	KindRead ErrorKind = "read"
)

// PathError 表示用户给定的路径既不是可读文件也不是可遍历目录，
// 或目录遍历过程中某个子目录无法读取。
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ReadError 表示文件无法打开、读取或解码为文本。
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ScanError 记录单个失败项，不阻断其余文件的统计。
type ScanError struct {
	Path  string
	Kind  ErrorKind
	Error string
}

// NewScanError 根据错误类型构造 ScanError。
func NewScanError(path string, err error) ScanError {
	kind := KindRead
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		kind = KindPath
	}
	return ScanError{
		Path:  path,
		Kind:  kind,
		Error: err.Error(),
	}
}
