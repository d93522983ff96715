package command

import (
	"strings"

	"github.com/abdul-hamid-achik/rest/packages/core/failure"
)

// Command is one of the fixed set of commands. The zero value is not a
// valid command.
type Command int

const (
	Get Command = iota + 1
	Post
	Put
	Patch
	Delete
	Help
)

// All lists every command in usage order
var All = []Command{Get, Post, Put, Patch, Delete, Help}

func (c Command) String() string {
	switch c {
	case Get:
		return "get"
	case Post:
		return "post"
	case Put:
		return "put"
	case Patch:
		return "patch"
	case Delete:
		return "delete"
	case Help:
		return "help"
	default:
		return ""
	}
}

// Method returns the HTTP method for a request command, or "" for help.
func (c Command) Method() string {
	if !c.IsRequest() {
		return ""
	}
	return strings.ToUpper(c.String())
}

// IsRequest reports whether the command issues an HTTP request.
func (c Command) IsRequest() bool {
	switch c {
	case Get, Post, Put, Patch, Delete:
		return true
	default:
		return false
	}
}

// HasBody reports whether the command prompts for a request body.
func (c Command) HasBody() bool {
	switch c {
	case Post, Put, Patch:
		return true
	default:
		return false
	}
}

// Lookup resolves a command name. Matching is exact.
func Lookup(name string) (Command, bool) {
	for _, c := range All {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Parse validates the positional arguments (program name already stripped).
func Parse(args []string) (Command, error) {
	switch {
	case len(args) == 0:
		return 0, failure.New(failure.KindArgument, "method required")
	case len(args) > 1:
		return 0, failure.New(failure.KindArgument, "only one method allowed")
	}

	c, ok := Lookup(args[0])
	if !ok {
		return 0, failure.Newf(failure.KindArgument, "command %q doesn't exist", args[0])
	}
	return c, nil
}
