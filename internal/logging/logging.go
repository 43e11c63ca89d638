package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func logger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "lumen",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetVerbose lowers the log level to debug.
func SetVerbose() {
	logger().SetLevel(log.DebugLevel)
}

func Debug(msg string, args ...interface{}) {
	logger().Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	logger().Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	logger().Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	logger().Errorf(msg, args...)
}

// Fatal logs the message and exits. Reserved for unrecoverable setup
// errors: a missing camera context or a failed device allocation.
func Fatal(msg string, args ...interface{}) {
	logger().Fatalf(msg, args...)
}
