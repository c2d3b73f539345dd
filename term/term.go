// Package term renders the adapter's output on a terminal screen. It
// implements the presentation capability: printing into a scrolling text
// region, clearing it, displaying a fatal-error banner, and collecting
// line input through a one-shot handler armed by the adapter.
package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Terminal is a tcell-backed presentation surface with a scrollback
// region and a single prompt line at the bottom.
type Terminal struct {
	screen tcell.Screen

	lines   []string
	input   []rune
	handler func(line string)
	errText string
}

// New creates a terminal on the default screen and initializes it.
func New() (t *Terminal, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return
	}
	err = screen.Init()
	if err != nil {
		return
	}

	t = NewWithScreen(screen)

	return
}

// NewWithScreen creates a terminal on an already-initialized screen.
func NewWithScreen(screen tcell.Screen) (t *Terminal) {
	t = &Terminal{
		screen: screen,
		lines:  []string{""},
	}

	return
}

// Print appends text to the scrollback region. Newlines break lines; the
// last line stays open for continuation.
func (t *Terminal) Print(text string) {
	parts := strings.Split(text, "\n")
	t.lines[len(t.lines)-1] += parts[0]
	t.lines = append(t.lines, parts[1:]...)
	t.draw()
}

// Clear empties the scrollback region.
func (t *Terminal) Clear() {
	t.lines = []string{""}
	t.draw()
}

// HandleError displays a fatal error banner. The session is over at this
// point; the banner stays until the terminal is closed.
func (t *Terminal) HandleError(text string) {
	t.errText = text
	t.draw()
}

// WaitForInput arms the one-shot line handler. Arming while a handler is
// already armed replaces it; only the newest handler ever fires.
func (t *Terminal) WaitForInput(handler func(line string)) {
	t.handler = handler
	t.draw()
}

// Run processes key events until Stop is called, the user interrupts, or
// the screen is closed. Submitted lines are echoed to the scrollback and
// delivered to the armed handler on the event loop's goroutine.
func (t *Terminal) Run() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return
			case tcell.KeyEnter:
				t.submit()
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
			case tcell.KeyRune:
				t.input = append(t.input, tev.Rune())
			}
			t.draw()
		}
	}
}

// Stop makes Run return.
func (t *Terminal) Stop() {
	t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Fini restores the underlying screen.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) submit() {
	if t.handler == nil {
		// No input request outstanding; drop the line.
		t.input = nil
		return
	}

	handler := t.handler
	t.handler = nil
	line := string(t.input)
	t.input = nil

	t.Print("> " + line + "\n")
	handler(line)
}

var (
	styleText   = tcell.StyleDefault
	stylePrompt = tcell.StyleDefault.Bold(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func (t *Terminal) draw() {
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	t.screen.Clear()

	// Wrap scrollback to the screen width.
	var wrapped []string
	for _, line := range t.lines {
		runes := []rune(line)
		for len(runes) > width {
			wrapped = append(wrapped, string(runes[:width]))
			runes = runes[width:]
		}
		wrapped = append(wrapped, string(runes))
	}

	region := height - 1
	start := 0
	if len(wrapped) > region {
		start = len(wrapped) - region
	}
	for y, line := range wrapped[start:] {
		putText(t.screen, 0, y, line, styleText)
	}

	switch {
	case t.errText != "":
		putText(t.screen, 0, height-1, t.errText, styleError)
	case t.handler != nil:
		prompt := "> " + string(t.input)
		putText(t.screen, 0, height-1, prompt, stylePrompt)
		t.screen.ShowCursor(len([]rune(prompt)), height-1)
	default:
		t.screen.HideCursor()
	}

	t.screen.Show()
}

func putText(screen tcell.Screen, x int, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
