//go:build !linux

package clipboard

import (
	"time"

	atotto "github.com/atotto/clipboard"
)

// WriteWithTimeout copies text to the clipboard. On non-Linux
// platforms the library backend handles everything and the timeout is
// not needed.
func WriteWithTimeout(text string, _ time.Duration) error {
	return atotto.WriteAll(text)
}
