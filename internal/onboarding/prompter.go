// File: internal/onboarding/prompter.go
package onboarding

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the terminal-input abstraction the session talks to. Keeping
// it behind an interface lets tests script an entire run.
type Prompter interface {
	// Ask prints the label and returns the operator's answer with
	// surrounding whitespace trimmed. An exhausted input reads as "".
	Ask(label string) string
	// Confirm asks a yes/no question. Anything other than exactly "y"
	// counts as no.
	Confirm(label string) bool
}

type stdioPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdioPrompter wraps the operator's terminal streams.
func NewStdioPrompter(in io.Reader, out io.Writer) Prompter {
	return &stdioPrompter{in: bufio.NewReader(in), out: out}
}

func (p *stdioPrompter) Ask(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (p *stdioPrompter) Confirm(label string) bool {
	return p.Ask(label+" (y/n)") == "y"
}
