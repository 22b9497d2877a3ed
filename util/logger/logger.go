package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns new configured logger writing to stderr
func New(lvl logrus.Level) *logrus.Logger {
	return NewWithOutput(os.Stderr, lvl)
}

// NewWithOutput returns new configured logger writing to <out>
func NewWithOutput(out io.Writer, lvl logrus.Level) *logrus.Logger {
	formatter := prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Stamp,
		ForceFormatting: true,
		DisableColors:   true,
	}
	return &logrus.Logger{
		Out:       out,
		Formatter: &formatter,
		Level:     lvl,
		Hooks:     make(logrus.LevelHooks),
	}
}
