package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level logrus.Level
		ok    bool
	}{
		{"", logrus.InfoLevel, true},
		{"INFO", logrus.InfoLevel, true},
		{"DEBUG", logrus.DebugLevel, true},
		{"Warning", logrus.WarnLevel, true},
		{"warn", logrus.WarnLevel, true},
		{"ERROR", logrus.ErrorLevel, true},
		{"CRITICAL", logrus.FatalLevel, true},
		{"loud", logrus.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNewWritesToOutputAndFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "server.log")

	log, closeLog, err := New(Options{Level: "debug", File: path, Output: &buf})
	require.NoError(t, err)

	log.WithField("entity", "account").Debug("registered provider")
	require.NoError(t, closeLog())

	assert.Contains(t, buf.String(), "registered provider")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entity=account")
}

func TestNewUnknownLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Level: "loud", Output: &buf})
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), `unknown log level`)
}

func TestNewBadFile(t *testing.T) {
	_, _, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
