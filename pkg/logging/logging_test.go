package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_DoesNotPanic(t *testing.T) {
	// Test JSON mode (default)
	Init(false, false)
	log := L()
	log.Info().Msg("test json info")
	log.Debug().Msg("test json debug (should not appear at info level)")

	// Test debug mode
	Init(true, false)
	log = L()
	log.Debug().Msg("test json debug (should appear)")

	// Test human-friendly mode
	Init(false, true)
	log = L()
	log.Info().Msg("test human info")

	// Test debug + human
	Init(true, true)
	log = L()
	log.Debug().Msg("test human debug")

	// Reset to default for other tests
	Init(false, false)
}

func TestWithPhase(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	log := WithPhase("test_phase")
	log.Info().Msg("test message")

	output := buf.String()
	if output == "" {
		t.Error("expected log output, got empty string")
	}

	// Check that phase field is present
	if !bytes.Contains(buf.Bytes(), []byte(`"phase":"test_phase"`)) {
		t.Errorf("expected phase field in output, got: %s", output)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	customLogger := zerolog.New(&buf).With().Str("custom", "field").Logger()
	SetLogger(customLogger)

	L().Info().Msg("test")

	if !bytes.Contains(buf.Bytes(), []byte(`"custom":"field"`)) {
		t.Errorf("expected custom field in output, got: %s", buf.String())
	}

	// Reset to default for other tests
	Init(false, false)
}

func TestPrettyMode(t *testing.T) {
	SetPrettyMode(true)
	if !IsPrettyMode() {
		t.Error("IsPrettyMode() = false after SetPrettyMode(true)")
	}

	SetPrettyMode(false)
	if IsPrettyMode() {
		t.Error("IsPrettyMode() = true after SetPrettyMode(false)")
	}

	// Init ties pretty mode to the human writer
	Init(false, true)
	if !IsPrettyMode() {
		t.Error("IsPrettyMode() = false after Init(_, human=true)")
	}

	Init(false, false)
	if IsPrettyMode() {
		t.Error("IsPrettyMode() = true after Init(_, human=false)")
	}
}
