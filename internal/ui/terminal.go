package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

const exitPrompt = "Press any key to exit."

// footerRows is the blank row, prompt row and status row under the board.
const footerRows = 3

// Terminal is a full-screen console. The board is redrawn on every
// change; the player types a line at the bottom and submits it with Enter.
type Terminal struct {
	screen *Screen
	theme  Theme
	view   View
	prompt string
	input  []rune
	status string
}

// NewTerminal opens the terminal screen.
func NewTerminal(theme Theme) (*Terminal, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, theme: theme}, nil
}

// newTerminal wraps an existing tcell screen.
func newTerminal(s tcell.Screen, theme Theme) (*Terminal, error) {
	screen, err := newScreen(s)
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, theme: theme}, nil
}

// Render draws v and clears any pending message.
func (t *Terminal) Render(v View) {
	t.view = v
	t.status = ""
	t.draw()
}

// Notify shows msg below the input line.
func (t *Terminal) Notify(msg string) {
	t.status = msg
	t.draw()
}

// ReadLine collects typed runes until Enter. Backspace edits the line;
// Esc and Ctrl-C return ErrQuit.
func (t *Terminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	t.prompt = prompt
	t.input = t.input[:0]
	t.draw()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen was finalized.
			return "", ErrQuit
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrQuit
			case tcell.KeyEnter:
				line := string(t.input)
				t.input = t.input[:0]
				t.status = ""
				return line, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
			case tcell.KeyRune:
				t.input = append(t.input, ev.Rune())
			}
			t.draw()
		}
	}
}

// Finish draws the final view and waits for any key.
func (t *Terminal) Finish(ctx context.Context, v View) error {
	t.view = v
	t.prompt = exitPrompt
	t.input = t.input[:0]
	t.status = ""
	t.draw()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch t.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Close()
	return nil
}

// draw paints the view, the prompt line and the status message.
func (t *Terminal) draw() {
	t.screen.Clear()

	lines := Lines(t.view)
	// Keep the prompt and status rows on screen by dropping the top of the
	// board when the terminal is too short.
	if _, height := t.screen.Size(); height > 0 {
		if room := height - footerRows; room < len(lines) {
			if room < 0 {
				room = 0
			}
			lines = lines[len(lines)-room:]
		}
	}

	y := 0
	for _, line := range lines {
		t.screen.DrawText(1, y, line.Text, t.theme.style(line.Kind))
		y++
	}

	y++
	if t.prompt != "" {
		x := t.screen.DrawText(1, y, t.prompt+" ", t.theme.Text)
		x = t.screen.DrawText(x, y, string(t.input), t.theme.Accent)
		if t.prompt == exitPrompt {
			t.screen.HideCursor()
		} else {
			t.screen.ShowCursor(x, y)
		}
	}
	if t.status != "" {
		t.screen.DrawText(1, y+1, t.status, t.theme.Error)
	}

	t.screen.Show()
}
