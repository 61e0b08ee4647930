// Package ui contains the user-facing collaborators of the commands: the
// notifier (toast analog) and the confirmer (confirmation dialog analog).
package ui

import (
	"fmt"
	"io"
)

// Variant classifies a notification.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
)

// Notification is a short, fire-and-forget user message.
type Notification struct {
	Title   string
	Message string
	Variant Variant
}

// Notifier delivers notifications to the user. Implementations never block
// and never return errors to the caller, a lost notification is not a
// failure.
type Notifier interface {
	Notify(n Notification)
}

// NoopNotifier discards all notifications.
const NoopNotifier = noopNotifier(0)

type noopNotifier int

var _ Notifier = NoopNotifier

func (noopNotifier) Notify(Notification) {}

// WriterNotifier renders notifications as single lines on a writer.
type WriterNotifier struct {
	writer io.Writer
}

// NewWriterNotifier creates a notifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{writer: w}
}

func (n *WriterNotifier) Notify(notification Notification) {
	marker := "•"
	switch notification.Variant {
	case VariantSuccess:
		marker = "✔"
	case VariantWarning:
		marker = "!"
	case VariantError:
		marker = "✖"
	}

	// Fire and forget, write failures are swallowed on purpose.
	fmt.Fprintf(n.writer, "%s %s — %s\n", marker, notification.Title, notification.Message)
}
