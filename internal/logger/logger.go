package logger

import (
	"os"
	"strings"
	"time"

	"blog-platform-server/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "blog-platform-server"

// Init 根据配置初始化全局 zerolog 日志器。
// 开发模式或显式开启 pretty 时使用控制台格式，其余情况输出 JSON。
func Init(cfg config.LogConfig, mode string) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	if cfg.Pretty || mode == "debug" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Str("service", serviceName).
			Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// ParseLevel 解析日志级别，未知值回退为 info。
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component 返回带组件名的子日志器。
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
