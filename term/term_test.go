package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T) (term *Terminal) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	term = NewWithScreen(screen)

	return
}

func TestTerminal_PrintSplitsLines(t *testing.T) {
	assert := assert.New(t)

	term := newTestTerminal(t)

	term.Print("WEST OF HOUSE\nYou are ")
	term.Print("standing in an open field.\n")

	assert.Equal([]string{
		"WEST OF HOUSE",
		"You are standing in an open field.",
		"",
	}, term.lines)
}

func TestTerminal_Clear(t *testing.T) {
	assert := assert.New(t)

	term := newTestTerminal(t)

	term.Print("old text\n")
	term.Clear()

	assert.Equal([]string{""}, term.lines)
}

func TestTerminal_SubmitDeliversOneShot(t *testing.T) {
	assert := assert.New(t)

	term := newTestTerminal(t)

	var got []string
	term.WaitForInput(func(line string) {
		got = append(got, line)
	})

	term.input = []rune("north")
	term.submit()

	assert.Equal([]string{"north"}, got)
	assert.Nil(term.handler)
	assert.Empty(term.input)

	// The submitted line is echoed to the scrollback.
	assert.Contains(term.lines, "> north")

	// Without re-arming, a second submit is dropped.
	term.input = []rune("again")
	term.submit()
	assert.Equal([]string{"north"}, got)
	assert.Empty(term.input)
}

func TestTerminal_RearmFromHandler(t *testing.T) {
	assert := assert.New(t)

	term := newTestTerminal(t)

	var got []string
	var arm func(line string)
	arm = func(line string) {
		got = append(got, line)
		term.WaitForInput(arm)
	}
	term.WaitForInput(arm)

	term.input = []rune("one")
	term.submit()
	term.input = []rune("two")
	term.submit()

	assert.Equal([]string{"one", "two"}, got)
	assert.NotNil(term.handler)
}

func TestTerminal_HandleError(t *testing.T) {
	assert := assert.New(t)

	term := newTestTerminal(t)

	term.Print("some output\n")
	term.HandleError("interpreter fault")

	assert.Equal("interpreter fault", term.errText)
	// Output survives; the banner is additional.
	assert.Contains(term.lines, "some output")
}
