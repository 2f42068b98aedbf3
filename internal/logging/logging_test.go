package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", "json", &buf)
	require.NoError(t, err)

	Component(l, "storage").Info("saved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "storage", line["component"])
	assert.Equal(t, "saved", line["msg"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", "text", &buf)
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "text", nil)
	assert.Error(t, err)

	_, err = New("info", "xml", nil)
	assert.Error(t, err)
}

func TestWailsLogger_MapsLevels(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.TraceLevel)
	w := NewWailsLogger(logrus.NewEntry(l))

	w.Warning("careful")
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	w.Error("broken")
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	w.Trace("noise")
	assert.Equal(t, logrus.TraceLevel, hook.LastEntry().Level)
}

func TestWailsLevel(t *testing.T) {
	assert.Equal(t, wailslogger.DEBUG, WailsLevel(logrus.DebugLevel))
	assert.Equal(t, wailslogger.ERROR, WailsLevel(logrus.FatalLevel))
}
