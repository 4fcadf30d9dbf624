//go:build linux

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"emojictl/pkg/logger"

	atotto "github.com/atotto/clipboard"
)

// backend is one external clipboard utility. timeoutOK marks tools
// that keep serving the selection after the write, so hitting the
// deadline does not mean the copy failed.
type backend struct {
	name      string
	argv      []string
	timeout   time.Duration
	timeoutOK bool
}

func backends(timeout time.Duration) []backend {
	return []backend{
		// xclip forks to own the selection and may not exit before the
		// deadline even though the clipboard is already set.
		{name: "xclip", argv: []string{"xclip", "-selection", "clipboard"}, timeout: timeout, timeoutOK: true},
		{name: "xsel", argv: []string{"xsel", "--clipboard", "--input"}, timeout: timeout / 2},
		{name: "wl-copy", argv: []string{"wl-copy"}, timeout: timeout / 2},
	}
}

// runCommand executes one backend attempt. Swappable in tests so
// backend ordering and the timeout quirk are verifiable without a
// display server.
var runCommand = func(ctx context.Context, argv []string, stdin string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

// libraryWrite is the final fallback; swappable in tests.
var libraryWrite = atotto.WriteAll

// WriteWithTimeout tries each backend in priority order with the given
// per-attempt cap; the first success wins.
func WriteWithTimeout(text string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var failures []string
	for _, b := range backends(timeout) {
		err := attempt(b, text)
		if err == nil {
			logger.Debug().Str("backend", b.name).Msg("clipboard set")
			return nil
		}
		logger.Debug().Err(err).Str("backend", b.name).Msg("clipboard backend failed")
		failures = append(failures, fmt.Sprintf("%s: %v", b.name, err))
	}

	if err := libraryWrite(text); err != nil {
		failures = append(failures, fmt.Sprintf("library: %v", err))
		return fmt.Errorf("all clipboard backends failed (%s)", strings.Join(failures, "; "))
	}

	logger.Debug().Str("backend", "library").Msg("clipboard set")
	return nil
}

func attempt(b backend, text string) error {
	timeout := b.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := runCommand(ctx, b.argv, text)
	if err == nil {
		return nil
	}
	if b.timeoutOK && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		// The write happened; the tool is just lingering as the
		// selection owner.
		return nil
	}
	return err
}
