// Package log provides colored console logging with caller file:line
// information, in the style of the standard log package.
package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// ANSI colors per level.
const (
	infoColor   = "\033[34m"
	warnColor   = "\033[33m"
	errorColor  = "\033[31m"
	debugColor  = "\033[94m"
	callerColor = "\033[35m"
	reset       = "\033[0m"
)

// DebugMode enables Debug output when true.
var DebugMode = false

func prefix(color, level string, skip int) string {
	_, filePath, line, ok := runtime.Caller(skip)
	if !ok {
		return color + "[" + level + "]" + reset
	}

	file := filepath.Base(filePath)
	return color + "[" + level + "] " + callerColor + file + ":" + strconv.Itoa(line) + ":" + reset
}

func emit(args ...any) {
	var buf bytes.Buffer
	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, arg)
	}

	if buf.Len() > 0 {
		buf.WriteByte('\n')
		os.Stdout.Write(buf.Bytes())
	}
}

func Info(args ...any) {
	emit(append([]any{prefix(infoColor, "Info", 2)}, args...)...)
}

func InfoSkip(skip int, args ...any) {
	emit(append([]any{prefix(infoColor, "Info", skip+2)}, args...)...)
}

func Warn(args ...any) {
	emit(append([]any{prefix(warnColor, "Warn", 2)}, args...)...)
}

func WarnSkip(skip int, args ...any) {
	emit(append([]any{prefix(warnColor, "Warn", skip+2)}, args...)...)
}

func Error(args ...any) {
	emit(append([]any{prefix(errorColor, "Error", 2)}, args...)...)
}

func ErrorSkip(skip int, args ...any) {
	emit(append([]any{prefix(errorColor, "Error", skip+2)}, args...)...)
}

func Debug(args ...any) {
	if DebugMode {
		emit(append([]any{prefix(debugColor, "Debug", 2)}, args...)...)
	}
}

func DebugSkip(skip int, args ...any) {
	if DebugMode {
		emit(append([]any{prefix(debugColor, "Debug", skip+2)}, args...)...)
	}
}
