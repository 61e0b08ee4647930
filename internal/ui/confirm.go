package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ConfirmRequest describes a yes/no question put to the user.
type ConfirmRequest struct {
	Title       string
	Message     string
	ConfirmText string
}

// Confirmer asks the user to confirm a destructive action. Every call
// resolves exactly once; anything that is not an explicit confirmation
// (cancel, EOF, context cancellation) resolves to false.
type Confirmer interface {
	Confirm(ctx context.Context, req ConfirmRequest) (bool, error)
}

// StaticConfirmer always resolves to a fixed answer. Used for --yes runs and
// tests.
type StaticConfirmer bool

var _ Confirmer = StaticConfirmer(true)

func (c StaticConfirmer) Confirm(ctx context.Context, req ConfirmRequest) (bool, error) {
	return bool(c), nil
}

// PromptConfirmer asks on a writer and reads the answer from a reader.
type PromptConfirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPromptConfirmer creates a confirmer prompting on w and reading from r.
func NewPromptConfirmer(r io.Reader, w io.Writer) *PromptConfirmer {
	return &PromptConfirmer{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Confirm prompts the user and waits for a single y/N answer. The default
// (empty line, EOF, unrecognized input) is false, mirroring the original
// dialog where escape, backdrop click and cancel all resolve to cancellation.
func (c *PromptConfirmer) Confirm(ctx context.Context, req ConfirmRequest) (bool, error) {
	confirmText := req.ConfirmText
	if confirmText == "" {
		confirmText = "Confirm"
	}

	fmt.Fprintf(c.writer, "%s\n%s\n", req.Title, req.Message)
	fmt.Fprintf(c.writer, "%s? [y/N]: ", confirmText)

	type answer struct {
		line string
		err  error
	}
	answerC := make(chan answer, 1)
	go func() {
		line, err := c.reader.ReadString('\n')
		answerC <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.writer)
		return false, nil
	case a := <-answerC:
		if a.err != nil && a.line == "" {
			// EOF without input cancels.
			return false, nil
		}
		line := strings.ToLower(strings.TrimSpace(a.line))
		return line == "y" || line == "yes", nil
	}
}
