// Package logger provides structured logging for the editor. Output
// goes to a file, never to the terminal: the screen belongs to the
// editor UI.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log     *zap.SugaredLogger
	logFile *os.File
)

// Init opens the log file and installs the global logger. An empty
// path resolves to the default location under the user config
// directory. Logging before Init (or after a failed Init) is a no-op.
func Init(path string, debug bool) error {
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logFile = f

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(f),
		level,
	)
	log = zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()

	log.Infow("logger initialized", "path", path, "debug", debug)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if log != nil {
		_ = log.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
	}
}

func defaultPath() (string, error) {
	if v := os.Getenv("TEXTCORE_LOG_FILE"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "textcore", "textcore.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textcore", "textcore.log"), nil
}

// Debug logs a debug message with key/value pairs.
func Debug(msg string, keysAndValues ...any) {
	if log != nil {
		log.Debugw(msg, keysAndValues...)
	}
}

// Info logs an info message with key/value pairs.
func Info(msg string, keysAndValues ...any) {
	if log != nil {
		log.Infow(msg, keysAndValues...)
	}
}

// Warn logs a warning with key/value pairs.
func Warn(msg string, keysAndValues ...any) {
	if log != nil {
		log.Warnw(msg, keysAndValues...)
	}
}

// Error logs an error with key/value pairs.
func Error(msg string, keysAndValues ...any) {
	if log != nil {
		log.Errorw(msg, keysAndValues...)
	}
}
