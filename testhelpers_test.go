package argh

import (
	"bytes"
	"testing"

	"github.com/vrtx/argh/internal/param"
)

// setupLogging - captures the debug loggers into a buffer so a test can
// inspect or silence them.
func setupLogging() *bytes.Buffer {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	param.Logger.SetOutput(buf)
	return buf
}

// setupTestLogging - defines an output for the debug loggers and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := setupLogging()
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}
