package logger

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eddyv73/github-mcp/pkg/core"
)

var log *logrus.Logger

// Initialize sets up the logger with the specified level. Output always
// goes to stderr: with the stdio transport, stdout belongs to the protocol.
func Initialize(level string) {
	log = logrus.New()
	log.SetOutput(core.GetLogWriter())
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	log.SetLevel(parseLevel(level))
}

// parseLevel converts a level string to a logrus level
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ensureInitialized guards against use before Initialize
func ensureInitialized() {
	if log == nil {
		Initialize("info")
	}
}

// Debug logs a debug message
func Debug(format string, v ...interface{}) {
	ensureInitialized()
	log.Debugf(format, v...)
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	ensureInitialized()
	log.Infof(format, v...)
}

// Warn logs a warning message
func Warn(format string, v ...interface{}) {
	ensureInitialized()
	log.Warnf(format, v...)
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	ensureInitialized()
	log.Errorf(format, v...)
}
