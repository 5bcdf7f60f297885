package workflow

import (
	"fmt"
	"io"
)

// Notifier is the port workflows report user-facing outcomes through. It
// replaces the frontend's toast side-channel so workflows stay independently
// testable without a rendering layer.
type Notifier interface {
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Successf implements Notifier.
func (NopNotifier) Successf(string, ...any) {}

// Errorf implements Notifier.
func (NopNotifier) Errorf(string, ...any) {}

// Infof implements Notifier.
func (NopNotifier) Infof(string, ...any) {}

// WriterNotifier writes notifications as prefixed lines, the CLI's stand-in
// for toasts.
type WriterNotifier struct {
	out io.Writer
}

// NewWriterNotifier creates a WriterNotifier writing to out.
func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

// Successf implements Notifier.
func (n *WriterNotifier) Successf(format string, args ...any) {
	fmt.Fprintf(n.out, "✔ "+format+"\n", args...)
}

// Errorf implements Notifier.
func (n *WriterNotifier) Errorf(format string, args ...any) {
	fmt.Fprintf(n.out, "✖ "+format+"\n", args...)
}

// Infof implements Notifier.
func (n *WriterNotifier) Infof(format string, args ...any) {
	fmt.Fprintf(n.out, "• "+format+"\n", args...)
}
