// MIT License
//
// Copyright (c) 2025-2026 kid0510z
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// DebugLogger is a global logger configured to output messages at
	// DebugLevel and above to os.Stdout.
	DebugLogger = NewZap(DebugLevel, os.Stdout)

	// DiscardLogger is a no-op logger that discards all log messages.
	DiscardLogger Logger = discardLogger{}

	// DefaultLogger is a global logger configured to output messages at
	// InfoLevel and above to os.Stdout.
	DefaultLogger = NewZap(InfoLevel, os.Stdout)
)

// Zap implements the Logger interface with zap as the underlying logging
// library.
type Zap struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// enforce compilation and linter error
var _ Logger = (*Zap)(nil)

// NewZap creates an instance of Zap writing to the given writers.
func NewZap(level Level, writers ...io.Writer) *Zap {
	syncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, writer := range writers {
		syncers = append(syncers, zapcore.AddSync(writer))
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		toZapLevel(level),
	)

	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel))

	return &Zap{
		logger: zapLogger,
		sugar:  zapLogger.Sugar(),
	}
}

// Info starts a message with info level.
func (l *Zap) Info(v ...any) {
	l.sugar.Info(v...)
}

// Infof starts a message with info level.
func (l *Zap) Infof(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

// Warn starts a message with warn level.
func (l *Zap) Warn(v ...any) {
	l.sugar.Warn(v...)
}

// Warnf starts a message with warn level.
func (l *Zap) Warnf(format string, v ...any) {
	l.sugar.Warnf(format, v...)
}

// Error starts a message with error level.
func (l *Zap) Error(v ...any) {
	l.sugar.Error(v...)
}

// Errorf starts a message with error level.
func (l *Zap) Errorf(format string, v ...any) {
	l.sugar.Errorf(format, v...)
}

// Fatal starts a message with fatal level and calls os.Exit(1).
func (l *Zap) Fatal(v ...any) {
	l.sugar.Fatal(v...)
}

// Fatalf starts a message with fatal level and calls os.Exit(1).
func (l *Zap) Fatalf(format string, v ...any) {
	l.sugar.Fatalf(format, v...)
}

// Debug starts a message with debug level.
func (l *Zap) Debug(v ...any) {
	l.sugar.Debug(v...)
}

// Debugf starts a message with debug level.
func (l *Zap) Debugf(format string, v ...any) {
	l.sugar.Debugf(format, v...)
}

// LogLevel returns the log level that is set.
func (l *Zap) LogLevel() Level {
	switch l.logger.Level() {
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.InfoLevel:
		return InfoLevel
	case zapcore.WarnLevel:
		return WarningLevel
	case zapcore.ErrorLevel:
		return ErrorLevel
	case zapcore.FatalLevel:
		return FatalLevel
	default:
		return InvalidLevel
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case InfoLevel:
		return zapcore.InfoLevel
	case DebugLevel:
		return zapcore.DebugLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
