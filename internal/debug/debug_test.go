package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelInfo)
	SetOutput(&buf)

	Info("selected camera %s", "IV3-G500CA")
	Value("Distance (mm)", 150)
	Verbose("this is gated at level %d", LevelVerbose)

	out := buf.String()
	assert.Contains(t, out, "[INFO] selected camera IV3-G500CA")
	assert.Contains(t, out, "Distance (mm) = 150")
	assert.NotContains(t, out, "[VERBOSE]")
}

func TestVerboseLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelVerbose)
	SetOutput(&buf)

	Verbose("clamped %g to %g", 9999.0, 3000.0)
	Section("Distance for target FOV")

	out := buf.String()
	assert.Contains(t, out, "[VERBOSE] clamped 9999 to 3000")
	assert.Contains(t, out, "Distance for target FOV")
}

func TestOffLevelSilent(t *testing.T) {
	Init(LevelOff)

	// No logger is created at level 0; nothing may panic.
	Info("dropped")
	Value("dropped", 1)
	Verbose("dropped")
	Section("dropped")
	Error(assert.AnError)
}
