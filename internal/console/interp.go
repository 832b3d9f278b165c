package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/casefolio/console/internal/vfs"
)

const defaultTreeDepth = 3

// NavigationKind distinguishes the two navigation intents a command
// can emit for the host UI.
type NavigationKind string

const (
	NavigateRecord   NavigationKind = "record"
	NavigateExternal NavigationKind = "external"
)

// Navigation asks the host to leave the console: either jump to a
// project record's page or open an external URL.
type Navigation struct {
	Kind     NavigationKind `json:"kind"`
	RecordID string         `json:"record_id,omitempty"`
	URL      string         `json:"url,omitempty"`
}

// Result is the structured outcome of one dispatch.
type Result struct {
	Output     string        `json:"output"`
	Err        *CommandError `json:"error,omitempty"`
	Navigation *Navigation   `json:"navigation,omitempty"`
	Exit       bool          `json:"exit,omitempty"`
	Clear      bool          `json:"clear,omitempty"`
}

// Failed reports whether the dispatch produced an error.
func (r Result) Failed() bool { return r.Err != nil }

func failure(err *CommandError) Result { return Result{Err: err} }

// Interpreter holds one session's mutable state: the current working
// directory and the command history. It is not safe for concurrent
// use; give each session its own instance.
type Interpreter struct {
	fs      *vfs.FS
	cwd     string
	history []string
}

// New creates an interpreter rooted at "/" over the given filesystem.
func New(fs *vfs.FS) *Interpreter {
	return &Interpreter{fs: fs, cwd: "/"}
}

// Cwd returns the current working directory.
func (i *Interpreter) Cwd() string { return i.cwd }

// History returns a copy of the raw input lines seen so far, oldest
// first. Failed commands are included.
func (i *Interpreter) History() []string {
	out := make([]string, len(i.history))
	copy(out, i.history)
	return out
}

// Dispatch runs one line of input through the gate, tokenizer, alias
// table, and handler, and returns the structured result. The raw
// line lands in history exactly once regardless of outcome.
func (i *Interpreter) Dispatch(line string) Result {
	i.history = append(i.history, line)

	if i.fs == nil {
		return failure(newError(FilesystemNotInitialized, "filesystem is not initialized yet"))
	}
	if err := checkSyntax(line); err != nil {
		return failure(err)
	}

	tokens := tokenize(line)
	if len(tokens) == 0 {
		return Result{}
	}

	cmd, ok := resolveCommand(tokens[0])
	if !ok {
		return failure(newError(UnknownCommand, "command not found: %s", tokens[0]))
	}
	args := tokens[1:]

	switch cmd {
	case CmdList:
		return i.cmdList(args)
	case CmdOpen:
		return i.cmdOpen(args)
	case CmdRead:
		return i.cmdRead(args)
	case CmdTree:
		return i.cmdTree(args)
	case CmdSearch:
		return i.cmdSearch(args)
	case CmdHelp:
		return Result{Output: helpText}
	case CmdClear:
		return Result{Clear: true}
	case CmdCwd:
		return Result{Output: i.cwd}
	case CmdExit:
		return Result{Exit: true}
	}
	// unreachable: resolveCommand only yields the cases above
	return failure(newError(UnknownCommand, "command not found: %s", tokens[0]))
}

func (i *Interpreter) cmdList(args []string) Result {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	entries, err := i.fs.List(path, i.cwd)
	if err != nil {
		return failure(mapFSError(err, path))
	}
	if len(entries) == 0 {
		return Result{Output: "(empty)"}
	}

	lines := make([]string, len(entries))
	for n, e := range entries {
		if e.IsDir() {
			lines[n] = e.Name + "/"
		} else {
			lines[n] = e.Name
		}
	}
	return Result{Output: strings.Join(lines, "\n")}
}

// cmdOpen is the navigation verb. With no argument it reports the
// working directory. On a directory it changes into it. On a file it
// prefers the file's external link, then the owning project record,
// and falls back to printing the content inline.
func (i *Interpreter) cmdOpen(args []string) Result {
	if len(args) == 0 {
		return Result{Output: i.cwd}
	}
	path := args[0]

	node, ok := i.fs.ResolveNode(path, i.cwd)
	if !ok {
		return failure(newError(PathNotFound, "no such file or directory: %s", path))
	}

	switch n := node.(type) {
	case *vfs.Dir:
		i.cwd = n.Path()
		return Result{}
	case *vfs.File:
		if url := n.ExternalURL(); url != "" {
			return Result{
				Output:     fmt.Sprintf("opening %s", url),
				Navigation: &Navigation{Kind: NavigateExternal, URL: url},
			}
		}
		if id, ok := i.fs.ProjectIDForPath(path, i.cwd); ok {
			return Result{
				Output:     fmt.Sprintf("opening %s", n.Path()),
				Navigation: &Navigation{Kind: NavigateRecord, RecordID: id},
			}
		}
		return Result{Output: n.Content()}
	}
	return Result{}
}

func (i *Interpreter) cmdRead(args []string) Result {
	if len(args) == 0 {
		return failure(newError(MissingArgument, "read: missing file path"))
	}
	path := args[0]

	body, err := i.fs.Read(path, i.cwd)
	if err != nil {
		return failure(mapFSError(err, path))
	}
	return Result{Output: body}
}

func (i *Interpreter) cmdTree(args []string) Result {
	path := "."
	depth := defaultTreeDepth
	if len(args) > 0 {
		path = args[0]
	}
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed <= 0 {
			return failure(newError(InvalidDepth, "tree: depth must be a positive integer, got %q", args[1]))
		}
		depth = parsed
	}

	out, err := i.fs.Tree(path, depth, i.cwd)
	if err != nil {
		return failure(mapFSError(err, path))
	}
	return Result{Output: strings.TrimRight(out, "\n")}
}

func (i *Interpreter) cmdSearch(args []string) Result {
	keyword := strings.TrimSpace(strings.Join(args, " "))
	if keyword == "" {
		return failure(newError(MissingArgument, "search: missing keyword"))
	}

	matches := i.fs.Search(keyword)
	if len(matches) == 0 {
		return Result{Output: fmt.Sprintf("no results for %q", keyword)}
	}

	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%s\n    %s\n", m.Path, m.Snippet)
	}
	return Result{Output: strings.TrimRight(b.String(), "\n")}
}

// mapFSError converts a filesystem query failure into the console's
// error vocabulary.
func mapFSError(err error, path string) *CommandError {
	switch err {
	case vfs.ErrNotFound:
		return newError(PathNotFound, "no such file or directory: %s", path)
	case vfs.ErrNotADirectory:
		return newError(NotADirectory, "not a directory: %s", path)
	case vfs.ErrNotAFile:
		return newError(NotAFile, "is a directory: %s", path)
	default:
		return newError(PathNotFound, "%s: %v", path, err)
	}
}
