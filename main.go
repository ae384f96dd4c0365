// main.go 是 loccount 的程序入口。
// 该文件仅负责注入版本号、挂接中断信号并执行 Cobra 根命令，
// 错误到退出码的映射也集中在这里。
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"loccount/cmd"
	"loccount/internal/model"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx, version)
	stop()

	if err == nil {
		return
	}

	if errors.Is(err, model.ErrNoPaths) {
		fmt.Fprintln(os.Stderr, "No filepath provided!")
	} else {
		fmt.Fprintf(os.Stderr, "loccount error: %v\n", err)
	}
	os.Exit(1)
}
