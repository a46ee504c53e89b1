package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTYBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY() = true for a bytes.Buffer")
	}
}

func TestSupportsColorBuffer(t *testing.T) {
	if SupportsColor(&bytes.Buffer{}) {
		t.Error("SupportsColor() = true for a bytes.Buffer")
	}
}

func TestSupportsColorNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(true) {
		t.Error("supportsColor() = true with NO_COLOR set")
	}
}

func TestSupportsColorDumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(true) {
		t.Error("supportsColor() = true with TERM=dumb")
	}
}

func TestSupportsColorTTY(t *testing.T) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		t.Skip("NO_COLOR set in test environment")
	}
	t.Setenv("TERM", "xterm-256color")
	if !supportsColor(true) {
		t.Error("supportsColor() = false for a color-capable TTY")
	}
}
