//go:build linux

package clipboard

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

// fakeRun installs a fake command runner and library writer, restoring
// the real ones when the test finishes. It returns the recorded
// backend invocation order.
func fakeRun(t *testing.T, run func(ctx context.Context, argv []string, stdin string) error, lib func(string) error) *[]string {
	t.Helper()

	originalRun := runCommand
	originalLib := libraryWrite
	t.Cleanup(func() {
		runCommand = originalRun
		libraryWrite = originalLib
	})

	calls := &[]string{}
	runCommand = func(ctx context.Context, argv []string, stdin string) error {
		*calls = append(*calls, argv[0])
		return run(ctx, argv, stdin)
	}
	if lib == nil {
		lib = func(string) error {
			*calls = append(*calls, "library")
			return fmt.Errorf("library unavailable")
		}
	}
	libraryWrite = func(text string) error {
		return lib(text)
	}
	return calls
}

func TestWriteWithTimeout_FirstBackendWins(t *testing.T) {
	calls := fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		return nil
	}, nil)

	if err := WriteWithTimeout("😀", time.Second); err != nil {
		t.Fatalf("WriteWithTimeout() returned error: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0] != "xclip" {
		t.Errorf("Expected single xclip attempt, got %v", *calls)
	}
}

func TestWriteWithTimeout_PriorityOrder(t *testing.T) {
	calls := fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		if argv[0] == "wl-copy" {
			return nil
		}
		return fmt.Errorf("%s: command not found", argv[0])
	}, nil)

	if err := WriteWithTimeout("😀", time.Second); err != nil {
		t.Fatalf("WriteWithTimeout() returned error: %v", err)
	}

	want := []string{"xclip", "xsel", "wl-copy"}
	if len(*calls) != len(want) {
		t.Fatalf("Expected %d attempts, got %v", len(want), *calls)
	}
	for i, name := range want {
		if (*calls)[i] != name {
			t.Errorf("Attempt %d = '%s', want '%s'", i, (*calls)[i], name)
		}
	}
}

func TestWriteWithTimeout_XclipTimeoutCountsAsSuccess(t *testing.T) {
	calls := fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		// Simulate xclip lingering as the selection owner.
		<-ctx.Done()
		return ctx.Err()
	}, nil)

	if err := WriteWithTimeout("😀", 50*time.Millisecond); err != nil {
		t.Fatalf("WriteWithTimeout() expected xclip timeout to count as success, got error: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0] != "xclip" {
		t.Errorf("Expected only the xclip attempt, got %v", *calls)
	}
}

func TestWriteWithTimeout_XselTimeoutIsFailure(t *testing.T) {
	calls := fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		switch argv[0] {
		case "xsel":
			<-ctx.Done()
			return ctx.Err()
		case "wl-copy":
			return nil
		default:
			return fmt.Errorf("%s: command not found", argv[0])
		}
	}, nil)

	if err := WriteWithTimeout("😀", 100*time.Millisecond); err != nil {
		t.Fatalf("WriteWithTimeout() returned error: %v", err)
	}

	want := []string{"xclip", "xsel", "wl-copy"}
	if len(*calls) != len(want) {
		t.Fatalf("Expected a timed-out xsel to fall through to wl-copy, got %v", *calls)
	}
}

func TestWriteWithTimeout_LibraryFallback(t *testing.T) {
	calls := fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		return fmt.Errorf("%s: command not found", argv[0])
	}, func(text string) error {
		if text != "😀" {
			return fmt.Errorf("unexpected text %q", text)
		}
		return nil
	})

	if err := WriteWithTimeout("😀", time.Second); err != nil {
		t.Fatalf("WriteWithTimeout() expected library fallback to succeed, got error: %v", err)
	}

	want := []string{"xclip", "xsel", "wl-copy"}
	if len(*calls) != len(want) {
		t.Errorf("Expected all exec backends attempted before the library, got %v", *calls)
	}
}

func TestWriteWithTimeout_AllBackendsFail(t *testing.T) {
	fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		return fmt.Errorf("%s: command not found", argv[0])
	}, func(string) error {
		return fmt.Errorf("no display")
	})

	err := WriteWithTimeout("😀", time.Second)
	if err == nil {
		t.Fatal("WriteWithTimeout() expected error when all backends fail, got nil")
	}
	if !strings.Contains(err.Error(), "all clipboard backends failed") {
		t.Errorf("Unexpected error message: %v", err)
	}
	for _, name := range []string{"xclip", "xsel", "wl-copy"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Expected error to mention '%s': %v", name, err)
		}
	}
}

func TestWriteWithTimeout_PassesTextToBackend(t *testing.T) {
	var got string
	fakeRun(t, func(ctx context.Context, argv []string, stdin string) error {
		got = stdin
		return nil
	}, nil)

	if err := WriteWithTimeout("🚗", time.Second); err != nil {
		t.Fatalf("WriteWithTimeout() returned error: %v", err)
	}
	if got != "🚗" {
		t.Errorf("Expected backend stdin '🚗', got %q", got)
	}
}
