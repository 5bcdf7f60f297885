package workflow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Successf("created %s", "JD-001")
	n.Errorf("failed: %v", "boom")
	n.Infof("waiting")

	out := buf.String()
	assert.Contains(t, out, "✔ created JD-001\n")
	assert.Contains(t, out, "✖ failed: boom\n")
	assert.Contains(t, out, "• waiting\n")
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = NopNotifier{}
	// Must not panic.
	n.Successf("x")
	n.Errorf("x")
	n.Infof("x")
}
