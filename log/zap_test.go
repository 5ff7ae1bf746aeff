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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger(t *testing.T) {
	t.Run("info", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Info("test debug")
		assert.Contains(t, buffer.String(), "test debug")
		assert.Contains(t, buffer.String(), `"level":"info"`)
		require.Equal(t, InfoLevel, logger.LogLevel())
	})

	t.Run("infof", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Infof("hello %s", "world")
		assert.Contains(t, buffer.String(), "hello world")
	})

	t.Run("warn", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)
		logger.Warn("careful")
		assert.Contains(t, buffer.String(), "careful")
		assert.Contains(t, buffer.String(), `"level":"warn"`)
		require.Equal(t, WarningLevel, logger.LogLevel())
	})

	t.Run("error", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		logger.Errorf("failed: %v", "boom")
		assert.Contains(t, buffer.String(), "failed: boom")
		assert.Contains(t, buffer.String(), `"level":"error"`)
	})

	t.Run("debug messages are filtered at info level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Debug("hidden")
		assert.Empty(t, buffer.String())
	})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "", InvalidLevel.String())
}

func TestDiscardLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		DiscardLogger.Info("dropped")
		DiscardLogger.Errorf("dropped %d", 1)
	})
}
