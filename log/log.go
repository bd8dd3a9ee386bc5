//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package log provides the logger shared by the tool registry packages.
package log

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level names accepted by SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

var zapLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	NameKey:        "name",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// Logger is the logging surface used by the registry.
// A *zap.SugaredLogger satisfies it.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

// Default is the logger behind the package level helpers.
// Replace it with any Logger implementation.
var Default Logger = newSugared(os.Stdout, 1)

// ContextDefault backs the *Context helpers. It skips one more frame than
// Default because those helpers are function values.
var ContextDefault Logger = newSugared(os.Stdout, 2)

func newSugared(w io.Writer, callerSkip int) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapLevel,
	)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerSkip)).Sugar()
}

// SetOutput rebuilds Default and ContextDefault so that they write to w.
func SetOutput(w io.Writer) {
	Default = newSugared(w, 1)
	ContextDefault = newSugared(w, 2)
}

// SetLevel changes the level of the zap backed loggers.
// Unknown names fall back to info.
func SetLevel(level string) {
	switch level {
	case LevelDebug:
		zapLevel.SetLevel(zapcore.DebugLevel)
	case LevelWarn:
		zapLevel.SetLevel(zapcore.WarnLevel)
	case LevelError:
		zapLevel.SetLevel(zapcore.ErrorLevel)
	case LevelFatal:
		zapLevel.SetLevel(zapcore.FatalLevel)
	default:
		zapLevel.SetLevel(zapcore.InfoLevel)
	}
}

// Debug logs at debug level in the manner of fmt.Print.
func Debug(args ...any) { Default.Debug(args...) }

// Debugf logs at debug level in the manner of fmt.Printf.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Info logs at info level in the manner of fmt.Print.
func Info(args ...any) { Default.Info(args...) }

// Infof logs at info level in the manner of fmt.Printf.
func Infof(format string, args ...any) { Default.Infof(format, args...) }

// Warn logs at warn level in the manner of fmt.Print.
func Warn(args ...any) { Default.Warn(args...) }

// Warnf logs at warn level in the manner of fmt.Printf.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }

// Error logs at error level in the manner of fmt.Print.
func Error(args ...any) { Default.Error(args...) }

// Errorf logs at error level in the manner of fmt.Printf.
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }

// Fatal logs at fatal level in the manner of fmt.Print.
func Fatal(args ...any) { Default.Fatal(args...) }

// Fatalf logs at fatal level in the manner of fmt.Printf.
func Fatalf(format string, args ...any) { Default.Fatalf(format, args...) }

// The *Context helpers ignore ctx by default. They are variables so that a
// host can route them to a trace-aware logger.
var (
	DebugfContext = func(_ context.Context, format string, args ...any) {
		ContextDefault.Debugf(format, args...)
	}
	InfofContext = func(_ context.Context, format string, args ...any) {
		ContextDefault.Infof(format, args...)
	}
	WarnfContext = func(_ context.Context, format string, args ...any) {
		ContextDefault.Warnf(format, args...)
	}
	ErrorfContext = func(_ context.Context, format string, args ...any) {
		ContextDefault.Errorf(format, args...)
	}
)
