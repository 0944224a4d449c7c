// Package logger is a minimal leveled logger shared by the server and
// handlers. The level is set once at startup via Init (LOG_LEVEL env:
// debug|info|warn|error|fatal) and defaults to info.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu    sync.RWMutex
	out   = log.New(os.Stdout, "", 0)
	level = LevelInfo
	names = map[Level]string{LevelDebug: "debug", LevelInfo: "info", LevelWarn: "warn", LevelError: "error", LevelFatal: "fatal"}
)

// Init sets the global log level (case-insensitive). Call early during
// startup.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	default:
		level = LevelInfo
	}
}

// LevelString returns the current level name.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return names[level]
}

func header(lvl string) string {
	return fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), strings.ToUpper(lvl))
}

func shouldLog(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func Debugf(format string, v ...any) {
	if shouldLog(LevelDebug) {
		out.Printf(header("debug")+format, v...)
	}
}

func Infof(format string, v ...any) {
	if shouldLog(LevelInfo) {
		out.Printf(header("info")+format, v...)
	}
}

func Warnf(format string, v ...any) {
	if shouldLog(LevelWarn) {
		out.Printf(header("warn")+format, v...)
	}
}

func Errorf(format string, v ...any) {
	if shouldLog(LevelError) {
		out.Printf(header("error")+format, v...)
	}
}

func Fatalf(format string, v ...any) {
	out.Printf(header("fatal")+format, v...)
	os.Exit(1)
}
