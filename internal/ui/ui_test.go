package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestStageClamps(t *testing.T) {
	if StageCount != 7 {
		t.Fatalf("StageCount = %d, want 7", StageCount)
	}

	tests := []struct {
		wrong int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{3, 3},
		{6, 6},
		{9, 6},
	}

	for _, tt := range tests {
		got := Stage(tt.wrong)
		want := stages[tt.want]
		if strings.Join(got, "\n") != strings.Join(want, "\n") {
			t.Errorf("Stage(%d) did not return stage %d", tt.wrong, tt.want)
		}
	}
}

func TestStagesHaveEqualHeight(t *testing.T) {
	for i, s := range stages {
		if len(s) != len(stages[0]) {
			t.Errorf("stage %d has %d rows, want %d", i, len(s), len(stages[0]))
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#ffd700", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestNewThemeRejectsBadAccent(t *testing.T) {
	if _, err := NewTheme("nope"); err == nil {
		t.Error("NewTheme(\"nope\") should fail")
	}
}

func TestLines(t *testing.T) {
	v := View{
		Word:     []rune("S___T"),
		Guessed:  []rune("STZ"),
		Wrong:    3,
		MaxWrong: 6,
		Hint:     "Apple's programming language",
		Feedback: []string{"Sorry, 'Z' is not in the word."},
		Notes:    []string{"Starts with 'S', ends with 'T'"},
	}

	var texts []string
	kinds := map[string]LineKind{}
	for _, l := range Lines(v) {
		texts = append(texts, l.Text)
		kinds[l.Text] = l.Kind
	}
	out := strings.Join(texts, "\n")

	for _, want := range []string{
		Title,
		"Word: S _ _ _ T",
		"Guessed letters: S T Z",
		"Wrong guesses: 3/6",
		"Hint: Apple's programming language",
		"Sorry, 'Z' is not in the word.",
		"Starts with 'S', ends with 'T'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Lines() missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Sorry, 'Z'") > strings.Index(out, Title) {
		t.Error("feedback should be laid out above the board")
	}
	if strings.Index(out, "Starts with") < strings.Index(out, "Hint:") {
		t.Error("notes should be laid out below the hint")
	}
	if kinds["Word: S _ _ _ T"] != LineWord {
		t.Errorf("word line kind = %v, want LineWord", kinds["Word: S _ _ _ T"])
	}
}

func TestLinesOmitsEmptySections(t *testing.T) {
	out := ""
	for _, l := range Lines(View{Word: []rune("____"), MaxWrong: 6}) {
		out += l.Text + "\n"
	}
	if strings.Contains(out, "Guessed letters") {
		t.Error("Lines() should omit guessed letters when none were guessed")
	}
	if strings.Contains(out, "Hint:") {
		t.Error("Lines() should omit the hint when empty")
	}
}

func TestPlainReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPlain(strings.NewReader("a\n\nxyz\n"), &out)
	ctx := context.Background()

	for _, want := range []string{"a", "", "xyz"} {
		got, err := p.ReadLine(ctx, "Enter:")
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := p.ReadLine(ctx, "Enter:"); !errors.Is(err, ErrQuit) {
		t.Errorf("ReadLine() at EOF error = %v, want ErrQuit", err)
	}
	if strings.Count(out.String(), "Enter:") != 4 {
		t.Errorf("prompt printed %d times, want 4", strings.Count(out.String(), "Enter:"))
	}
}

func TestPlainReadLineLongAndUnterminated(t *testing.T) {
	long := strings.Repeat("x", 100000)
	p := NewPlain(strings.NewReader(long+"\r\nb"), &bytes.Buffer{})
	ctx := context.Background()

	got, err := p.ReadLine(ctx, "Enter:")
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if got != long {
		t.Errorf("ReadLine() returned %d bytes, want %d", len(got), len(long))
	}

	// A final line without a newline is still delivered.
	if got, err := p.ReadLine(ctx, "Enter:"); err != nil || got != "b" {
		t.Errorf("ReadLine() = %q, %v; want %q", got, err, "b")
	}
	if _, err := p.ReadLine(ctx, "Enter:"); !errors.Is(err, ErrQuit) {
		t.Errorf("ReadLine() at EOF error = %v, want ErrQuit", err)
	}
}

func TestPlainReadLineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPlain(strings.NewReader("a\n"), &bytes.Buffer{})
	if _, err := p.ReadLine(ctx, "Enter:"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadLine() error = %v, want context.Canceled", err)
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminal(sim, DefaultTheme())
	if err != nil {
		t.Fatalf("newTerminal() error = %v", err)
	}
	sim.SetSize(80, 60)
	t.Cleanup(func() { term.Close() })
	return term, sim
}

// screenText returns the simulated screen contents one row per line.
func screenText(sim tcell.SimulationScreen) string {
	cells, width, height := sim.GetContents()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func TestTerminalReadLine(t *testing.T) {
	term, sim := newSimTerminal(t)
	term.Render(View{Word: []rune("_____"), MaxWrong: 6})

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	line, err := term.ReadLine(context.Background(), "Enter a single letter (A-Z):")
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if line != "w" {
		t.Errorf("ReadLine() = %q, want %q", line, "w")
	}

	text := screenText(sim)
	if !strings.Contains(text, "Word: _ _ _ _ _") {
		t.Errorf("screen missing word line:\n%s", text)
	}
	if !strings.Contains(text, "Enter a single letter (A-Z):") {
		t.Errorf("screen missing prompt:\n%s", text)
	}
}

func TestTerminalNotify(t *testing.T) {
	term, sim := newSimTerminal(t)
	term.Render(View{Word: []rune("____"), MaxWrong: 6})
	term.Notify("Please enter exactly one letter!")

	if text := screenText(sim); !strings.Contains(text, "Please enter exactly one letter!") {
		t.Errorf("screen missing notification:\n%s", text)
	}
}

func TestTerminalQuit(t *testing.T) {
	term, sim := newSimTerminal(t)
	term.Render(View{Word: []rune("____"), MaxWrong: 6})

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if _, err := term.ReadLine(context.Background(), "Enter:"); !errors.Is(err, ErrQuit) {
		t.Errorf("ReadLine() error = %v, want ErrQuit", err)
	}
}

func TestTerminalFinish(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	v := View{Word: []rune("RUST"), MaxWrong: 6, Result: []string{"YOU WIN!"}}
	if err := term.Finish(context.Background(), v); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	text := screenText(sim)
	if !strings.Contains(text, "YOU WIN!") {
		t.Errorf("screen missing result:\n%s", text)
	}
	if !strings.Contains(text, exitPrompt) {
		t.Errorf("screen missing exit prompt:\n%s", text)
	}
}

func TestTerminalShortScreenKeepsPrompt(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.SetSize(80, 12)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	v := View{Word: []rune("RUST"), MaxWrong: 6, Result: []string{"YOU WIN!"}}
	if err := term.Finish(context.Background(), v); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	text := screenText(sim)
	if !strings.Contains(text, exitPrompt) {
		t.Errorf("prompt scrolled off a short screen:\n%s", text)
	}
	if !strings.Contains(text, "YOU WIN!") {
		t.Errorf("result scrolled off a short screen:\n%s", text)
	}
	if strings.Contains(text, Title) {
		t.Errorf("top of the board should be dropped on a short screen:\n%s", text)
	}
}
