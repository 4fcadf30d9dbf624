// Package clipboard sets the system clipboard through a priority list
// of backends. On Linux it shells out to xclip, xsel and wl-copy with
// a short per-attempt timeout before falling back to the
// atotto/clipboard library; first success wins. On other platforms the
// library is used directly.
package clipboard

import "time"

// DefaultTimeout caps a single backend attempt when the caller does
// not supply one.
const DefaultTimeout = 2 * time.Second

// Write copies text to the system clipboard with the default
// per-attempt timeout.
func Write(text string) error {
	return WriteWithTimeout(text, DefaultTimeout)
}
