package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleNotifier(t *testing.T) {
	out := &bytes.Buffer{}
	notifier := NewConsoleNotifier(out)

	notifier.Notify("Timer started", "Acme / Website / Development")
	notifier.UpdateStatusLabel("Acme / Website / Development")

	assert.Contains(t, out.String(), "Timer started: Acme / Website / Development\n")
	assert.Contains(t, out.String(), "[Acme / Website / Development]\n")
}

func TestConsoleNotifierNilWriterDefaultsToStderr(t *testing.T) {
	notifier := NewConsoleNotifier(nil)
	assert.NotNil(t, notifier)
}

func TestNopNotifier(t *testing.T) {
	var notifier Notifier = NopNotifier{}
	notifier.Notify("ignored", "ignored")
	notifier.UpdateStatusLabel("ignored")
}
