package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/rest/packages/core/failure"
	"github.com/fatih/color"
)

// Console prints user-facing messages. Everything goes to one writer,
// stdout by default.
type Console struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*Console)

func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.noColor {
		color.NoColor = true
	}
	return c
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(c *Console) {
		c.noColor = nc
	}
}

func (c *Console) Writer() io.Writer {
	return c.writer
}

// Error prints err in red. Transport and prompt failures get the
// "Error occurred" banner.
func (c *Console) Error(err error) {
	red := color.New(color.FgRed).SprintFunc()

	switch failure.KindOf(err) {
	case failure.KindTransport, failure.KindPromptIO:
		fmt.Fprintln(c.writer, red(fmt.Sprintf("Error occurred:\n %v\n\n", err)))
	default:
		fmt.Fprintln(c.writer, red(err.Error()))
	}
}

func (c *Console) Usage(text string) {
	fmt.Fprintln(c.writer, text)
}

// Success prints a rendered response as-is.
func (c *Console) Success(text string) {
	fmt.Fprintln(c.writer, text)
}
