// Package log is the logrus logger shared by the command line tool and the
// Lua bindings.
package log

import (
	"fmt"
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
)

var Logger *log.Logger

func init() {
	Logger = log.New()
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(log.InfoLevel)
	Logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

// SetLevel parses a logrus level name such as "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	Logger.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

func WithField(key string, value interface{}) *log.Entry {
	return Logger.WithField(key, value)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}

//use for defer recover
func PrintPanicStack() {
	if x := recover(); x != nil {
		buf := make([]byte, 4<<10)
		n := runtime.Stack(buf, false)
		Logger.Errorf("Recovered %v\nStack:%s", x, buf[:n])
	}
}
