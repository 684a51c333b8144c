// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test logger helpers against a captured buffer

package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("mpqcli", []string{"create", "--output", "patch-4.mpq", "."})

	output := buf.String()
	for _, want := range []string{"mpqcli", "create", "patch-4.mpq", "Executing command"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q: %s", want, output)
		}
	}
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	start := time.Now().Add(-5 * time.Second)
	LogDuration(start, "package")

	output := buf.String()
	if !strings.Contains(output, "package") || !strings.Contains(output, "duration") {
		t.Errorf("log output missing operation or duration: %s", output)
	}
}

func TestGetLogger_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("scanner")
	logger.Debug().Msg("walk started")

	output := buf.String()
	if !strings.Contains(output, `"component":"scanner"`) {
		t.Errorf("log output missing component field: %s", output)
	}
}
