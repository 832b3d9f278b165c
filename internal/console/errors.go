// Package console implements the restricted command interpreter the
// web terminal talks to: a rejection gate for real-shell syntax, a
// quote-aware tokenizer, alias resolution, a closed dispatch table,
// per-session state (working directory and history), and
// autocomplete. One Interpreter serves one session and must not be
// shared across goroutines; the filesystem behind it is immutable
// and safely shared.
package console

import "fmt"

// ErrorKind is the closed set of command failure categories. Every
// failure is local to a single dispatch and leaves session state
// untouched apart from the history append.
type ErrorKind int

const (
	PathNotFound ErrorKind = iota
	NotADirectory
	NotAFile
	UnsupportedShellSyntax
	MissingArgument
	InvalidDepth
	UnknownCommand
	FilesystemNotInitialized
)

var errorKindNames = map[ErrorKind]string{
	PathNotFound:             "path_not_found",
	NotADirectory:            "not_a_directory",
	NotAFile:                 "not_a_file",
	UnsupportedShellSyntax:   "unsupported_shell_syntax",
	MissingArgument:          "missing_argument",
	InvalidDepth:             "invalid_depth",
	UnknownCommand:           "unknown_command",
	FilesystemNotInitialized: "filesystem_not_initialized",
}

// String returns the wire name of the kind.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind as its wire name.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CommandError is a structured, non-fatal dispatch failure.
type CommandError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *CommandError) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...interface{}) *CommandError {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
