// Package logging 基于 zerolog 构建日志记录器。
// 标准输出留给统计表格，控制台日志一律写到 stderr；file 模式通过 lumberjack 轮转。
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"loccount/internal/config"
)

// New 根据配置创建日志记录器。
// 优先级：quiet > verbose > log.level。
// 返回的 io.Closer 负责关闭日志文件，调用方应在退出前调用。
func New(cfg *config.Config, console io.Writer) (zerolog.Logger, io.Closer) {
	if cfg.App.Quiet {
		return zerolog.Nop(), nopCloser{}
	}

	level := ParseLevel(cfg.Log.Level)
	if cfg.App.Verbose && level > zerolog.InfoLevel {
		level = zerolog.InfoLevel
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)
	switch strings.ToLower(cfg.Log.Mode) {
	case "file":
		fileWriter, fileCloser := createFileWriter(cfg.Log, console)
		writers = append(writers, fileWriter)
		closer = fileCloser
	case "both":
		fileWriter, fileCloser := createFileWriter(cfg.Log, console)
		writers = append(writers, createConsoleWriter(console, cfg.Log.JSON), fileWriter)
		closer = fileCloser
	default:
		writers = append(writers, createConsoleWriter(console, cfg.Log.JSON))
	}

	var output io.Writer
	if len(writers) == 1 {
		output = writers[0]
	} else {
		output = zerolog.MultiLevelWriter(writers...)
	}

	builder := zerolog.New(output).Level(level).With().Timestamp()
	if cfg.App.Verbose {
		builder = builder.Str("app", cfg.App.Name)
	}
	return builder.Logger(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createConsoleWriter 创建控制台输出写入器
func createConsoleWriter(out io.Writer, useJSON bool) io.Writer {
	if useJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// createFileWriter 创建文件输出写入器，目录无法创建时退回控制台。
func createFileWriter(cfg config.LogConfig, fallback io.Writer) (io.Writer, io.Closer) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return createConsoleWriter(fallback, cfg.JSON), nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}
	return rotator, rotator
}

// ParseLevel 解析日志级别，无法识别时使用 warn。
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
