package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("whatever"))
}

func TestOutput(t *testing.T) {
	assert.Equal(t, os.Stderr, Output(LoggerSetupParams{}))

	dir := t.TempDir()
	w := Output(LoggerSetupParams{LogFileName: filepath.Join(dir, "liftlog")})
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "liftlog.log"), lj.Filename)

	w = Output(LoggerSetupParams{LogFileName: filepath.Join(dir, "x.log"), LogToStdout: true})
	cw, ok := w.(*CombinedWriter)
	require.True(t, ok)
	assert.Len(t, cw.Writers, 2)
}

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb2 := &strings.Builder{}
	cw := NewCombinedWriter(sb1, sb2)

	msg := "a message"
	n, err := cw.Write([]byte(msg))
	require.NoError(t, err)
	assert.Equal(t, 2*len(msg), n)
	assert.Equal(t, msg, sb1.String())
	assert.Equal(t, msg, sb2.String())
}

func TestCombinedWriter_Write_WithError(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(&faultyWriter{}, sb, &faultyWriter{})

	msg := "a message"
	n, err := cw.Write([]byte(msg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, len(msg), n)
	assert.Equal(t, msg, sb.String())
}

type faultyWriter struct{}

func (fw *faultyWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}
