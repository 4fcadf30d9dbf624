package errors

import (
	"fmt"
	"os"

	"emojictl/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess      ExitCode = 0
	ExitCodeGeneral      ExitCode = 1
	ExitCodeConfig       ExitCode = 2
	ExitCodeCatalog      ExitCode = 3
	ExitCodePersistence  ExitCode = 4
	ExitCodeClipboard    ExitCode = 5
	ExitCodeValidation   ExitCode = 6
	ExitCodeNotFound     ExitCode = 7
	ExitCodeCancellation ExitCode = 8
	ExitCodeTimeout      ExitCode = 9
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn logs the error, prints it to stderr with any suggestion,
// and returns the exit code for the caller to pass to os.Exit.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		fmt.Fprintln(os.Stderr, suggestion)
	}

	fmt.Fprintln(os.Stderr)

	return exitCode
}

// CatalogError marks the catalog data file as missing or corrupt.
// Callers degrade to an empty catalog rather than aborting; this error
// type exists for commands that want to surface the condition.
func CatalogError(path string, err error) *Error {
	return &Error{
		Code:       ExitCodeCatalog,
		Message:    fmt.Sprintf("Catalog data unavailable at '%s'", path),
		Underlying: err,
		Suggestion: "Place an emoji.json next to the emojictl binary or set EMOJICTL_CATALOG.",
	}
}

// PersistenceError marks a failed recency-list read or write.
func PersistenceError(err error) *Error {
	return &Error{
		Code:       ExitCodePersistence,
		Message:    "Failed to persist recent emojis",
		Underlying: err,
		Suggestion: "Check permissions on your user config directory.",
	}
}

// ClipboardError means every clipboard backend failed. Unlike the
// catalog and recency fallbacks this one is always user-visible.
func ClipboardError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    "Failed to copy to clipboard",
		Underlying: err,
		Suggestion: "Install xclip, xsel or wl-clipboard, or run inside a graphical session.",
	}
}

func NotFoundError(query string) *Error {
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("No emoji matches '%s'", query),
		Suggestion: "Use 'emojictl search' to browse the catalog.",
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or the EMOJICTL_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func CancelledError(operation string) *Error {
	return &Error{
		Code:       ExitCodeCancellation,
		Message:    fmt.Sprintf("Operation cancelled: %s", operation),
		Suggestion: "The operation was interrupted. No changes were made.",
	}
}

func TimeoutError(operation string) *Error {
	return &Error{
		Code:       ExitCodeTimeout,
		Message:    fmt.Sprintf("Operation timed out: %s", operation),
		Suggestion: "Try again, or raise clipboard.timeout_seconds in the config.",
	}
}
