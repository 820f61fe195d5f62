package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Notifier is the notification sink consumed by the timer engine. Both
// operations are best-effort: implementations report failures themselves
// and never propagate them to the caller.
type Notifier interface {
	// Notify shows a user-facing notification.
	Notify(title, body string)

	// UpdateStatusLabel updates the persistent status text (the tray
	// tooltip in the desktop shell).
	UpdateStatusLabel(text string)
}

// ConsoleNotifier writes notifications and status updates to a writer.
// It stands in for the desktop shell's notification and tray facilities.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to the given writer,
// defaulting to stderr.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s: %s\n", title, body)
}

func (n *ConsoleNotifier) UpdateStatusLabel(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[%s]\n", text)
}

// NopNotifier discards everything. Useful where no notification surface
// exists.
type NopNotifier struct{}

func (NopNotifier) Notify(title, body string)     {}
func (NopNotifier) UpdateStatusLabel(text string) {}
