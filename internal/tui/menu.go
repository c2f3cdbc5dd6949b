package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/registry"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type state int

const (
	stateAlgorithm state = iota
	stateDataset
	stateCount
	stateDone
)

const maxMenuCount = 512

// Selection is what the menu hands back to the caller.
type Selection struct {
	Algorithm string
	Dataset   string
	Count     int
}

// Menu walks the user through algorithm, dataset and size.
type Menu struct {
	state    state
	cursor   int
	keys     []string
	labels   []string
	datasets []string
	chosen   Selection
}

func NewMenu(count int) Menu {
	keys := registry.Keys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		if e, err := registry.LookupKey(k); err == nil {
			labels[i] = e.Label()
		} else {
			labels[i] = "every algorithm side by side"
		}
	}
	return Menu{
		keys:     keys,
		labels:   labels,
		datasets: dataset.Names(),
		chosen:   Selection{Count: max(count, 1)},
	}
}

// Selection reports the choice once the user has confirmed one.
func (m Menu) Selection() (Selection, bool) {
	return m.chosen, m.state == stateDone
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if m.state == stateAlgorithm {
			return m, tea.Quit
		}
		m.state--
		m.cursor = 0
		return m, nil
	}

	switch m.state {
	case stateAlgorithm:
		m.cursor = move(m.cursor, key.String(), len(m.keys))
		if isEnter(key) {
			m.chosen.Algorithm = m.keys[m.cursor]
			m.state, m.cursor = stateDataset, 0
		}
	case stateDataset:
		m.cursor = move(m.cursor, key.String(), len(m.datasets))
		if isEnter(key) {
			m.chosen.Dataset = m.datasets[m.cursor]
			m.state = stateCount
		}
	case stateCount:
		switch key.String() {
		case "left", "h":
			m.chosen.Count = max(1, m.chosen.Count-1)
		case "right", "l":
			m.chosen.Count = min(maxMenuCount, m.chosen.Count+1)
		case "down", "j":
			m.chosen.Count = max(1, m.chosen.Count/2)
		case "up", "k":
			m.chosen.Count = min(maxMenuCount, m.chosen.Count*2)
		}
		if isEnter(key) {
			m.state = stateDone
			return m, tea.Quit
		}
	}
	return m, nil
}

func isEnter(k tea.KeyMsg) bool {
	return k.String() == "enter" || k.String() == " "
}

func move(cursor int, key string, n int) int {
	switch key {
	case "up", "k":
		return max(0, cursor-1)
	case "down", "j":
		return min(n-1, cursor+1)
	}
	return cursor
}

func (m Menu) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("s o r t v i z") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	switch m.state {
	case stateAlgorithm:
		for i, k := range m.keys {
			b.WriteString(item(i == m.cursor, k, m.labels[i]))
		}
		b.WriteString("\n" + dim.Render("      ↑↓ select   enter next   q quit") + "\n")
	case stateDataset:
		b.WriteString("      " + cyan.Render(m.chosen.Algorithm) + "\n\n")
		for i, d := range m.datasets {
			b.WriteString(item(i == m.cursor, d, ""))
		}
		b.WriteString("\n" + dim.Render("      ↑↓ select   enter next   q back") + "\n")
	case stateCount, stateDone:
		b.WriteString("      " + cyan.Render(m.chosen.Algorithm) + dim.Render(" / "+m.chosen.Dataset) + "\n\n")
		b.WriteString("      " + white.Render(fmt.Sprintf("elements  ◂ %d ▸", m.chosen.Count)) + "\n")
		b.WriteString("\n" + dim.Render("      ←→ ±1   ↑↓ ×2   enter play   q back") + "\n")
	}

	return b.String()
}

func item(selected bool, name, desc string) string {
	if selected {
		return "      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", name)) + dim.Render(desc) + "\n"
	}
	return "        " + dim.Render(fmt.Sprintf("%-16s", name)) + dimmer.Render(desc) + "\n"
}
