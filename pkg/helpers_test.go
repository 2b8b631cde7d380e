package coincidence

import (
	"os"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Info(message string, module string) {}
func (nopLogger) Error(message string)               {}

func TestMain(m *testing.M) {
	SetLogger(nopLogger{})
	os.Exit(m.Run())
}
