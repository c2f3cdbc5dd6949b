package viz

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/registry"
)

func trace(t *testing.T, key string, values []int) frame.Sequence {
	t.Helper()
	seq, err := registry.GenerateKey(context.Background(), key, values, registry.DefaultOptions())
	require.NoError(t, err)
	return seq
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestModelPlaysToEnd(t *testing.T) {
	seq := trace(t, "bubble_sort", []int{5, 3, 3, 1})
	var m tea.Model = NewModel("Bubble Sort", seq, 10*time.Millisecond)

	for i := 0; i < seq.Len()+5; i++ {
		m = send(m, TickMsg(time.Now()))
	}

	got := m.(Model)
	require.Equal(t, seq.Len()-1, got.PlayHead())
	require.False(t, got.Running())
	require.Contains(t, got.View(), "FINISHED")
}

func TestModelScrub(t *testing.T) {
	seq := trace(t, "insertion", []int{3, 2, 1})
	var m tea.Model = NewModel("Insertion Sort", seq, 10*time.Millisecond)

	m = send(m, key("]"), key("]"), key("["))
	got := m.(Model)
	require.Equal(t, 1, got.PlayHead())
	require.False(t, got.Running())

	m = send(m, key("["), key("["), key("["))
	require.Equal(t, 0, m.(Model).PlayHead())

	m = send(m, key(" "))
	require.True(t, m.(Model).Running())

	m = send(m, TickMsg(time.Now()), key("r"))
	require.Equal(t, 0, m.(Model).PlayHead())
}

func TestModelSpeedAndTheme(t *testing.T) {
	var m tea.Model = NewModel("x", trace(t, "heap", []int{2, 1}), 40*time.Millisecond)

	m = send(m, key("+"))
	require.Equal(t, 20*time.Millisecond, m.(Model).Interval())

	m = send(m, key("-"), key("-"))
	require.Equal(t, 80*time.Millisecond, m.(Model).Interval())

	for i := 0; i < 20; i++ {
		m = send(m, key("+"))
	}
	require.Equal(t, minInterval, m.(Model).Interval())

	before := m.(Model).Theme().Name
	m = send(m, key("t"))
	require.NotEqual(t, before, m.(Model).Theme().Name)
}

func TestModelQuit(t *testing.T) {
	m := NewModel("x", trace(t, "comb", []int{2, 1}), time.Millisecond)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestModelSingleFrame(t *testing.T) {
	m := NewModel("x", trace(t, "merge", []int{42}), time.Millisecond)
	require.False(t, m.Running())
	require.NotEmpty(t, m.View())
}

func TestGridHoldsShortTraces(t *testing.T) {
	short := trace(t, "insertion", []int{1, 2, 3})
	long := trace(t, "bubble", []int{3, 2, 1})
	var g tea.Model = NewGrid([]string{"Insertion", "Bubble"}, []frame.Sequence{short, long}, time.Millisecond)

	for i := 0; i < long.Len()+3; i++ {
		g = send(g, TickMsg(time.Now()))
	}
	got := g.(Grid)
	require.Equal(t, long.Len()-1, got.PlayHead())
	require.False(t, got.Running())

	view := got.View()
	require.Contains(t, view, "Insertion")
	require.Contains(t, view, "Bubble")
}

func TestRenderBars(t *testing.T) {
	f := frame.Frame{{Value: 1}, {Value: 2}, {Value: 4}}
	out := renderBars(f, 4, 2, ThemeMinimal)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "█")
	require.Contains(t, lines[0], "█")
}

func TestCanvasDrawBars(t *testing.T) {
	c := NewCanvas(4, 2)
	f := frame.FromValues([]int{1, 2, 3, 4, 5, 6, 7, 8})
	f[3].Role = frame.Compared
	c.DrawBars(f, 8)

	require.NotEqual(t, rune(0x2800), c.Grid[1][3], "tallest bar should reach the bottom row")
	require.Equal(t, frame.Compared, c.roles[1])
	require.Equal(t, frame.Default, c.roles[0])
}

func TestNextThemeWraps(t *testing.T) {
	last := Themes[len(Themes)-1]
	require.Equal(t, Themes[0].Name, NextTheme(last).Name)
	require.Equal(t, ThemeCyberpunk.Name, GetTheme("missing").Name)
	require.Len(t, ThemeNames(), len(Themes))
}

func TestThemeRoleColor(t *testing.T) {
	th := ThemeClassic
	require.Equal(t, th.Compared, th.RoleColor(frame.Compared))
	require.Equal(t, th.Default, th.RoleColor(frame.Role(42)))
}
