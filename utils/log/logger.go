package foliolog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Keep the global logger private to prevent uninitialized access.
	logger *FolioLogger
	raw    *zap.Logger

	// Noop logger as safe fallback when not initialized.
	noopLogger = &FolioLogger{zap.NewNop().Sugar()}
)

// FolioLogger wraps zap's SugaredLogger for convenience.
type FolioLogger struct {
	*zap.SugaredLogger
}

// With adds structured fields to the logger and returns a new instance.
func (l *FolioLogger) With(args ...interface{}) *FolioLogger {
	if l == nil {
		return noopLogger
	}
	return &FolioLogger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *FolioLogger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Init initializes the global logger.
//
// It automatically determines the environment using FOLIO_ENV:
//
//   - FOLIO_ENV=dev   → human-readable logs in ~/.local/state/<app>/app-debug.log
//   - FOLIO_ENV=prod  → JSON logs in ~/.local/state/<app>/app.log
//
// The log level is controlled via FOLIO_LOG_LEVEL (debug, info, warn,
// error). If unset, defaults to debug in dev mode and info in prod mode.
//
// Logs always go to a file, never to the terminal: stdout belongs to the
// TUI renderer.
func Init(appName string) {
	mode := detectMode()
	logPath := selectLogPath(appName, mode)

	level := zap.NewAtomicLevelAt(detectLogLevel())

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, level)
	raw = zap.New(core, zap.AddCaller())
	logger = &FolioLogger{raw.Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &FolioLogger{raw.Sugar()}
}

// InitTestIfTestLogEnv enables the test logger when FOLIO_TESTLOG is set.
// Tests stay quiet by default.
func InitTestIfTestLogEnv() {
	if os.Getenv("FOLIO_TESTLOG") != "" {
		InitTest()
	}
}

// detectMode determines dev or prod mode from FOLIO_ENV.
func detectMode() string {
	env := strings.ToLower(os.Getenv("FOLIO_ENV"))
	switch env {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	// Fallback for restrictive environments
	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

// detectLogLevel picks the initial log level from FOLIO_LOG_LEVEL.
func detectLogLevel() zapcore.Level {
	switch strings.ToLower(os.Getenv("FOLIO_LOG_LEVEL")) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if detectMode() == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
