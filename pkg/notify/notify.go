// Package notify raises best-effort desktop notifications. Failures
// never propagate past a log line; a missing notify-send just means
// the user sees the terminal status instead.
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"emojictl/pkg/logger"
)

// sendTimeout caps the notify-send invocation; a wedged notification
// daemon must not hold up a copy.
const sendTimeout = 500 * time.Millisecond

// Notifier delivers a transient title+message to the user.
type Notifier interface {
	Send(title, message string) error
}

// Desktop shells out to notify-send.
type Desktop struct{}

// NewDesktop constructs the notify-send backed notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// runCommand is swappable in tests.
var runCommand = func(ctx context.Context, argv []string) error {
	return exec.CommandContext(ctx, argv[0], argv[1:]...).Run()
}

// Send displays the notification, or returns the reason it could not.
func (d *Desktop) Send(title, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := runCommand(ctx, []string{"notify-send", title, message}); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}

var _ Notifier = (*Desktop)(nil)

// SendAsync delivers the notification off the caller's path and
// reports completion on the returned channel. A send failure is
// downgraded to a log line before the channel closes, so callers may
// ignore the channel entirely.
func SendAsync(n Notifier, title, message string) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := n.Send(title, message)
		if err != nil {
			logger.Debug().Err(err).Str("title", title).Str("message", message).Msg("notification dropped")
		}
		done <- err
		close(done)
	}()
	return done
}
