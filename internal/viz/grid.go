package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/frame"
)

const (
	gridColumns  = 3
	gridCellCols = 26
	gridCellRows = 6
)

// Grid plays several traces on one clock. Traces that finish early hold
// their last frame until the longest one ends.
type Grid struct {
	titles   []string
	seqs     []frame.Sequence
	hi       int
	longest  int
	playHead int
	running  bool
	interval time.Duration
	theme    Theme
	showHelp bool
}

// NewGrid pairs titles[i] with seqs[i].
func NewGrid(titles []string, seqs []frame.Sequence, interval time.Duration) Grid {
	longest := 0
	for _, s := range seqs {
		longest = max(longest, s.Len())
	}
	return Grid{
		titles:   titles,
		seqs:     seqs,
		hi:       maxValue(seqs...),
		longest:  longest,
		running:  longest > 1,
		interval: clampInterval(interval),
		theme:    CurrentTheme,
	}
}

func (g Grid) PlayHead() int { return g.playHead }

func (g Grid) Running() bool { return g.running }

func (g Grid) Init() tea.Cmd {
	return g.tick()
}

func (g Grid) tick() tea.Cmd {
	return tea.Tick(g.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (g Grid) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return g, tea.Quit
		case " ":
			if !g.running && g.playHead >= g.longest-1 {
				g.playHead = 0
			}
			g.running = !g.running
		case "r":
			g.playHead = 0
			g.running = g.longest > 1
		case "[":
			g.running = false
			g.playHead = max(0, g.playHead-1)
		case "]":
			g.running = false
			g.playHead = max(0, min(g.playHead+1, g.longest-1))
		case "+", "=":
			g.interval = clampInterval(g.interval / 2)
		case "-", "_":
			g.interval = clampInterval(g.interval * 2)
		case "t":
			g.theme = NextTheme(g.theme)
		case "?":
			g.showHelp = !g.showHelp
		}
	case TickMsg:
		if g.running {
			g.playHead++
			if g.playHead >= g.longest-1 {
				g.playHead = max(0, g.longest-1)
				g.running = false
			}
		}
		return g, g.tick()
	}
	return g, nil
}

func (g Grid) View() string {
	cells := make([]string, len(g.seqs))
	for i, seq := range g.seqs {
		c := NewCanvas(gridCellCols, gridCellRows)
		c.DrawBars(frameAt(seq, g.playHead), g.hi)

		title := lipgloss.NewStyle().Bold(true).Foreground(g.theme.Primary).Render(truncate(g.titles[i], gridCellCols))
		step := fmt.Sprintf("%d/%d", min(g.playHead+1, seq.Len()), seq.Len())
		if g.playHead >= seq.Len()-1 {
			step += " ✓"
		}
		cells[i] = cellStyle.Render(title + "\n" + c.Render(g.theme) + lipgloss.NewStyle().Foreground(g.theme.Muted).Render(step))
	}

	rows := make([]string, 0, (len(cells)+gridColumns-1)/gridColumns)
	for i := 0; i < len(cells); i += gridColumns {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:min(i+gridColumns, len(cells))]...))
	}

	status := StatusPaused.Render("PAUSED")
	if g.running {
		status = StatusRunning.Render("PLAYING")
	}
	footer := fmt.Sprintf("%s  step %d/%d  %s", status, g.playHead+1, g.longest, KeyHint.UnsetMarginTop().Render("SP:Pause R:Restart [ ]:Step +/-:Speed T:Theme Q:Quit"))

	view := lipgloss.JoinVertical(lipgloss.Left, append(rows, footer)...)
	if g.showHelp {
		return helpOverlay() + "\n\n" + view
	}
	return view
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

var (
	_ tea.Model = Model{}
	_ tea.Model = Grid{}
)

