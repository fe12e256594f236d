package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Plain is a line-oriented console for pipes and dumb terminals. Output
// scrolls; nothing is redrawn in place.
type Plain struct {
	out io.Writer
	in  *bufio.Reader
}

// NewPlain reads lines from in and writes to out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{out: out, in: bufio.NewReader(in)}
}

// Render prints every line of v.
func (p *Plain) Render(v View) {
	for _, line := range Lines(v) {
		fmt.Fprintln(p.out, line.Text)
	}
}

// Notify prints msg on its own line.
func (p *Plain) Notify(msg string) {
	fmt.Fprintln(p.out, msg)
}

// ReadLine prints prompt and reads one line of any length. End of input
// with nothing pending returns ErrQuit.
func (p *Plain) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "\n%s\n", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrQuit
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Finish prints the final view.
func (p *Plain) Finish(_ context.Context, v View) error {
	p.Render(v)
	return nil
}

// Close is a no-op; Plain does not own its streams.
func (p *Plain) Close() error {
	return nil
}
