package console

import "sort"

// Command is the closed set of canonical command identifiers. Alias
// resolution happens before dispatch, so handlers only ever see one
// of these.
type Command int

const (
	CmdList Command = iota
	CmdOpen
	CmdRead
	CmdTree
	CmdSearch
	CmdHelp
	CmdClear
	CmdCwd
	CmdExit
)

var canonicalCommands = map[string]Command{
	"list":   CmdList,
	"open":   CmdOpen,
	"read":   CmdRead,
	"tree":   CmdTree,
	"search": CmdSearch,
	"help":   CmdHelp,
	"clear":  CmdClear,
	"cwd":    CmdCwd,
	"exit":   CmdExit,
}

// aliases map short forms to canonical command names. The table is
// static; resolution is pure name substitution.
var aliases = map[string]string{
	"ls":   "list",
	"dir":  "list",
	"cd":   "open",
	"cat":  "read",
	"pwd":  "cwd",
	"quit": "exit",
}

// resolveCommand resolves a (possibly aliased) command name to its
// canonical identifier.
func resolveCommand(name string) (Command, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	cmd, ok := canonicalCommands[name]
	return cmd, ok
}

// commandWords returns every canonical name and alias, sorted, for
// command-name completion.
func commandWords() []string {
	words := make([]string, 0, len(canonicalCommands)+len(aliases))
	for name := range canonicalCommands {
		words = append(words, name)
	}
	for name := range aliases {
		words = append(words, name)
	}
	sort.Strings(words)
	return words
}

const helpText = `Available commands:
  list [path]            list directory contents       (aliases: ls, dir)
  open [path]            open a directory, project file, or link  (alias: cd)
  read <path>            print a file                   (alias: cat)
  tree [path] [depth]    render a tree, depth defaults to 3
  search <keyword>       search file contents
  cwd                    print the working directory    (alias: pwd)
  help                   this text
  clear                  clear the screen
  exit                   close the console              (alias: quit)

Paths: / is the root, . the current directory, .. its parent.
A leading / makes a path absolute; anything else is relative.`
