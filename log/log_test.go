package log

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestOutputf(t *testing.T) {
	const string1 = "asdf123"
	buf := new(bytes.Buffer)

	log.SetOutput(buf)
	outputf(LevelError, string1, nil)
	line := buf.String()

	// if output contains original string, then test passes
	if !strings.Contains(line, string1) {
		t.Fail()
	}
}

func TestOutput(t *testing.T) {
	const string1 = "qwerty456"
	buf := new(bytes.Buffer)

	log.SetOutput(buf)
	output(LevelError, []interface{}{string1})
	line := buf.String()

	if !strings.Contains(line, string1) {
		t.Fail()
	}
}

func TestLevelGating(t *testing.T) {
	const string1 = "should-not-appear"
	buf := new(bytes.Buffer)

	oldLevel := Level
	Level = LevelError
	defer func() { Level = oldLevel }()

	log.SetOutput(buf)
	outputf(LevelDebug, string1, nil)

	if strings.Contains(buf.String(), string1) {
		t.Fatal("message below the current level was logged")
	}
}
