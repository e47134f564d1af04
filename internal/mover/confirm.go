package mover

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Decision is the outcome of a per-item confirmation.
type Decision int

const (
	// DecisionProceed applies the move.
	DecisionProceed Decision = iota
	// DecisionSkip leaves the document where it is and continues.
	DecisionSkip
	// DecisionAbort stops processing the remaining items in the bucket.
	// Already-applied moves stay applied.
	DecisionAbort
)

// Confirmer supplies per-item confirmation for suggested moves. A
// non-interactive harness can script deterministic answers.
type Confirmer interface {
	Confirm(description string) (Decision, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(description string) (Decision, error)

func (f ConfirmerFunc) Confirm(description string) (Decision, error) {
	return f(description)
}

// AutoApprove proceeds with every move without asking.
var AutoApprove = ConfirmerFunc(func(string) (Decision, error) {
	return DecisionProceed, nil
})

// PromptConfirmer asks y/n/q on the given streams.
type PromptConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewPromptConfirmer builds a confirmer over the given streams.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: in, out: out}
}

// StdinIsInteractive reports whether stdin is a terminal a human can answer
// on. Without one, suggested moves should not block on a prompt.
func StdinIsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *PromptConfirmer) Confirm(description string) (Decision, error) {
	reader := bufio.NewReader(p.in)
	for {
		fmt.Fprintf(p.out, "Move %s? [y/n/q]: ", description)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// EOF mid-prompt: treat as quit rather than looping forever.
			return DecisionAbort, nil
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return DecisionProceed, nil
		case "n", "no", "":
			return DecisionSkip, nil
		case "q", "quit":
			return DecisionAbort, nil
		default:
			fmt.Fprintln(p.out, "answer y, n, or q")
		}
	}
}
