// Package logging builds the logrus logger shared by the desktop shell,
// the CLI and the persistence layer.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to out (stderr when nil).
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return l, nil
}

// Component returns an entry tagged with the component name.
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}

// WailsLogger adapts a logrus entry to the Wails application logger.
type WailsLogger struct {
	entry *logrus.Entry
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(entry *logrus.Entry) *WailsLogger {
	return &WailsLogger{entry: entry}
}

func (w *WailsLogger) Print(message string)   { w.entry.Print(message) }
func (w *WailsLogger) Trace(message string)   { w.entry.Trace(message) }
func (w *WailsLogger) Debug(message string)   { w.entry.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.entry.Info(message) }
func (w *WailsLogger) Warning(message string) { w.entry.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.entry.Error(message) }
func (w *WailsLogger) Fatal(message string)   { w.entry.Fatal(message) }

// WailsLevel maps a logrus level onto the Wails runtime log level.
func WailsLevel(level logrus.Level) wailslogger.LogLevel {
	switch level {
	case logrus.TraceLevel:
		return wailslogger.TRACE
	case logrus.DebugLevel:
		return wailslogger.DEBUG
	case logrus.InfoLevel:
		return wailslogger.INFO
	case logrus.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}
