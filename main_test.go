package accumulator

import (
	"os"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

// TestMain initializes the package-global logger.Sugar used by Build and
// friends; without this, logger.Sugar is nil and any Debugf/Warnf call
// panics (see logger() in options.go and DESIGN.md's logging section).
func TestMain(m *testing.M) {
	logger.New("NOOP")
	code := m.Run()
	logger.OnExit()
	os.Exit(code)
}
