package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/i18n"
	"github.com/san-kum/sortviz/internal/metrics"
)

const (
	chartRows   = 16
	chartCols   = 80
	minInterval = 5 * time.Millisecond
	maxInterval = 2 * time.Second
)

type TickMsg time.Time

type gifSavedMsg struct {
	path string
	err  error
}

// frameStats is the running tally shown next to frame i.
type frameStats struct {
	comparisons float64
	writes      float64
	progress    float64
}

// Model plays one trace.
type Model struct {
	title      string
	seq        frame.Sequence
	hi         int
	stats      []frameStats
	inversions []float64
	playHead   int
	running    bool
	interval   time.Duration
	theme      Theme
	printer    *message.Printer
	gifPath    string
	status     string
	showHelp   bool
}

// NewModel prepares seq for playback, advancing one frame per interval.
func NewModel(title string, seq frame.Sequence, interval time.Duration) Model {
	comparisons, writes := metrics.NewComparisons(), metrics.NewWrites()
	progress, inv := metrics.NewProgress(), metrics.NewInversions()

	stats := make([]frameStats, len(seq))
	for i, f := range seq {
		comparisons.Observe(f, i)
		writes.Observe(f, i)
		progress.Observe(f, i)
		inv.Observe(f, i)
		stats[i] = frameStats{
			comparisons: comparisons.Value(),
			writes:      writes.Value(),
			progress:    progress.Value(),
		}
	}

	return Model{
		title:      title,
		seq:        seq,
		hi:         maxValue(seq),
		stats:      stats,
		inversions: inv.History(),
		running:    len(seq) > 1,
		interval:   clampInterval(interval),
		theme:      CurrentTheme,
		printer:    i18n.Printer(language.English),
		gifPath:    export.DefaultName(title, "trace") + ".gif",
	}
}

// WithLanguage localizes the status panel.
func (m Model) WithLanguage(tag language.Tag) Model {
	m.printer = i18n.Printer(tag)
	return m
}

// WithGIFPath sets where the G key saves the animation.
func (m Model) WithGIFPath(path string) Model {
	m.gifPath = path
	return m
}

func (m Model) PlayHead() int { return m.playHead }

func (m Model) Running() bool { return m.running }

func (m Model) Interval() time.Duration { return m.interval }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.running && m.atEnd() {
				m.playHead = 0
			}
			m.running = !m.running
		case "r":
			m.playHead = 0
			m.running = len(m.seq) > 1
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "+", "=":
			m.interval = clampInterval(m.interval / 2)
		case "-", "_":
			m.interval = clampInterval(m.interval * 2)
		case "t":
			m.theme = NextTheme(m.theme)
		case "g":
			m.status = "saving " + m.gifPath
			return m, saveGIF(m.gifPath, m.seq)
		case "?":
			m.showHelp = !m.showHelp
		}
	case gifSavedMsg:
		if msg.err != nil {
			m.status = StatusError.Render(msg.err.Error())
		} else {
			m.status = "saved " + msg.path
		}
	case TickMsg:
		if m.running {
			m.playHead++
			if m.atEnd() {
				m.playHead = len(m.seq) - 1
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) atEnd() bool {
	return m.playHead >= len(m.seq)-1
}

// scrub pauses and moves the play head by dir frames.
func (m *Model) scrub(dir int) {
	m.running = false
	m.playHead = max(0, min(m.playHead+dir, len(m.seq)-1))
}

func clampInterval(d time.Duration) time.Duration {
	return max(minInterval, min(d, maxInterval))
}

func saveGIF(path string, seq frame.Sequence) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return gifSavedMsg{err: err}
		}
		defer f.Close()
		if err := export.GIF(f, seq, export.DefaultGIFOptions()); err != nil {
			return gifSavedMsg{err: err}
		}
		return gifSavedMsg{path: path, err: f.Close()}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	f := frameAt(m.seq, m.playHead)
	chart := chartStyle.Render(drawFrame(f, m.hi, chartRows, chartCols, m.theme))

	var s strings.Builder
	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Inherit(headerStyle)
	s.WriteString(title.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.seq) > 0 {
		st := m.stats[max(0, min(m.playHead, len(m.stats)-1))]
		p := m.printer
		s.WriteString(MetricLabel.Render("Frame") + MetricValue.Render(p.Sprintf("frame %d/%d", m.playHead+1, len(m.seq))) + "\n")
		s.WriteString(MetricLabel.Render("Comparisons") + MetricValue.Render(fmt.Sprintf("%.0f", st.comparisons)) + "\n")
		s.WriteString(MetricLabel.Render("Writes") + MetricValue.Render(fmt.Sprintf("%.0f", st.writes)) + "\n")
		s.WriteString(MetricLabel.Render("Inversions") + MetricValue.Render(fmt.Sprintf("%.0f", m.inversions[min(m.playHead, len(m.inversions)-1)])) + "\n")
		s.WriteString(MetricLabel.Render("Progress") + ProgressBar(st.progress, 20) + "\n")
	}

	if hist := m.inversions[:min(m.playHead+1, len(m.inversions))]; len(hist) > 1 {
		graph := asciigraph.Plot(hist, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("Inversions"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Accent).Render(graph) + "\n")
	}

	s.WriteString(m.legend() + "\n")
	s.WriteString(KeyHint.Render(fmt.Sprintf("SP:Pause R:Restart Q:Quit\n[ ]:Step +/-:Speed (%s)\nT:Theme (%s) G:GIF ?:Help", m.interval, m.theme.Name)))
	if m.status != "" {
		s.WriteString("\n" + m.status)
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, chart, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay() + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	p := m.printer
	switch {
	case m.running:
		return StatusRunning.Render(strings.ToUpper(p.Sprintf("playing")))
	case len(m.seq) > 0 && m.atEnd() && m.seq.Last().Count(frame.Sorted) == m.seq.Last().Len():
		return StatusRunning.Render(strings.ToUpper(p.Sprintf("finished")))
	case len(m.seq) > 0 && m.atEnd() && m.seq.Last().Len() > 0:
		return StatusError.Render(strings.ToUpper(p.Sprintf("did not terminate")))
	default:
		return StatusPaused.Render(strings.ToUpper(p.Sprintf("paused")))
	}
}

func (m Model) legend() string {
	parts := make([]string, 0, len(frame.Roles()))
	for _, r := range frame.Roles() {
		parts = append(parts, m.theme.RoleStyle(r).Render("█ "+r.String()))
	}
	return strings.Join(parts, " ")
}
