// Package prompt asks the user one question at a time on a line-based
// terminal.
package prompt

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/abdul-hamid-achik/rest/packages/core/failure"
)

type Sequencer struct {
	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer
}

func NewSequencer(in io.Reader, out io.Writer) *Sequencer {
	return &Sequencer{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt writes question and blocks until one line is submitted. The answer
// is trimmed of surrounding whitespace. End of input before any character is
// a PromptIO error; a final unterminated line is still returned.
func (s *Sequencer) Prompt(question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.out, question); err != nil {
		return "", failure.Wrap(err, failure.KindPromptIO, "failed to write prompt")
	}

	answer, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// readLine reads up to and including the next newline. Callers hold s.mu.
func (s *Sequencer) readLine() (string, error) {
	text, err := s.reader.ReadString('\n')
	if err == io.EOF && text != "" {
		return text, nil
	}
	if err != nil {
		return "", failure.Wrap(err, failure.KindPromptIO, "failed to read answer")
	}
	return text, nil
}
