package logger

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/zenizh/go-capturer"
)

var timeRx = `[A-Z][a-z]{2} [ 0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}`

func TestNew(t *testing.T) {
	out := capturer.CaptureStderr(func() {
		log := New(logrus.DebugLevel)
		log.Trace("message")
		log.Debug("message")
		log.Info("message")
		log.Warn("message")
		log.Error("message")
		assert.Panics(t, func() { log.Panic("message") }, "should panic")
	})
	assert.NotRegexp(t, regexp.MustCompile(`TRACE`), out, "should not print trace messages with debug level logger")
	assert.Regexp(t, regexp.MustCompile(`\[`+timeRx+`\] +DEBUG message`), out)
	assert.Regexp(t, regexp.MustCompile(`\[`+timeRx+`\] +INFO message`), out)
	assert.Regexp(t, regexp.MustCompile(`\[`+timeRx+`\] +WARN(ING)? message`), out)
	assert.Regexp(t, regexp.MustCompile(`\[`+timeRx+`\] +ERROR message`), out)
	assert.Regexp(t, regexp.MustCompile(`\[`+timeRx+`\] +PANIC message`), out)
}

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, logrus.InfoLevel)
	log.Debug("hidden")
	log.WithField("file", "moonly.lua").Info("message")

	assert.NotContains(t, buf.String(), "hidden", "should not print debug messages with info level logger")
	assert.Regexp(t, regexp.MustCompile(`INFO message file="?moonly\.lua"?`), buf.String())
}
