package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	BackendSlog   = "slog"
	BackendLogrus = "logrus"
)

// New builds a JSON logger for the given backend and level name
// ("debug", "info", "warn", "error"). Unknown levels fall back to info and
// unknown backends to slog.
func New(backend, level string, out io.Writer) Logger {
	switch strings.ToLower(backend) {
	case BackendLogrus:
		l := logrus.New()
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetOutput(out)
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		l.SetLevel(lvl)
		return NewLogrusLogger(l)
	default:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelInfo
		}
		h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h))
	}
}
