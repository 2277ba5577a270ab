package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/player"
	"github.com/san-kum/combviz/internal/trace"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	sideWidth     = 44
	speedStep     = 40
)

// TickMsg advances playback. ID ties a tick to the play session that
// scheduled it so stale ticks are dropped after pause and resume.
type TickMsg struct {
	ID   int
	Time time.Time
}

type ModelOption func(*Model)

func WithTheme(name string) ModelOption {
	return func(m *Model) { m.theme = GetTheme(name) }
}

// WithAutoplay starts playback as soon as the program starts.
func WithAutoplay() ModelOption {
	return func(m *Model) { m.autoplay = true }
}

// Model is the Bubble Tea model of the terminal player.
type Model struct {
	player *player.Player
	phases []metrics.Phase

	theme    Theme
	help     help.Model
	width    int
	height   int
	tickID   int
	autoplay bool
	err      error
}

// NewModel wraps p in a terminal UI.
func NewModel(p *player.Player, opts ...ModelOption) Model {
	m := Model{
		player: p,
		theme:  ThemeIndigo,
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.phases = metrics.Phases(p.Trace())
	return m
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.player.Delay(), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.autoplay {
		m.player.Play()
		return m.tick()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID || !m.player.Playing() {
			return m, nil
		}
		m.player.Advance()
		if m.player.Playing() {
			return m, m.tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.player.Pause()
		return m, tea.Quit

	case key.Matches(msg, keys.Play):
		if m.player.Toggle() {
			m.tickID++
			return m, m.tick()
		}

	case key.Matches(msg, keys.Forward):
		m.player.StepForward()

	case key.Matches(msg, keys.Backward):
		m.player.StepBackward()

	case key.Matches(msg, keys.First):
		m.player.Seek(0)

	case key.Matches(msg, keys.Last):
		m.player.Seek(m.player.Len() - 1)
		m.player.Pause()

	case key.Matches(msg, keys.Reset):
		m.err = m.player.Reset()
		m.phases = metrics.Phases(m.player.Trace())
		m.tickID++

	case key.Matches(msg, keys.Faster):
		m.player.SetSpeed(m.player.Speed() + speedStep)

	case key.Matches(msg, keys.Slower):
		m.player.SetSpeed(m.player.Speed() - speedStep)

	case key.Matches(msg, keys.Theme):
		m.theme = NextTheme(m.theme.Name)

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.player.Current()
	th := m.theme

	mainWidth := m.width - sideWidth - 6
	if mainWidth < 20 {
		mainWidth = 20
	}
	barHeight := m.height - 16
	if barHeight < 6 {
		barHeight = 6
	}

	header := m.renderHeader()
	bars := Panel("ARRAY", RenderBars(s, th, mainWidth-4, barHeight), mainWidth, th)
	desc := Panel("STEP", lipgloss.NewStyle().Foreground(th.Text).Italic(true).Width(mainWidth-4).Render(s.Description), mainWidth, th)
	left := lipgloss.JoinVertical(lipgloss.Left, bars, desc)

	side := lipgloss.JoinVertical(lipgloss.Left,
		Panel("STATUS", m.renderStatus(s), sideWidth, th),
		Panel("CODE", RenderListing(s.SourceLine, th), sideWidth, th),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", side)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.help.View(keys))
}

func (m Model) renderHeader() string {
	th := m.theme
	title := GradientText("COMB SORT STUDIO", th.Primary, th.Accent)

	var status string
	switch {
	case m.err != nil:
		status = StatusError.Render("ERROR " + m.err.Error())
	case m.player.Playing():
		status = StatusRunning.Render("▶ PLAYING")
	case m.player.Done():
		status = lipgloss.NewStyle().Bold(true).Foreground(th.Complete).Render("✓ SORTED")
	default:
		status = StatusPaused.Render("❚❚ PAUSED")
	}
	ratio := Subtle.Render(fmt.Sprintf("gap ratio %.1f  theme %s", trace.ShrinkFactor, th.Name))
	return title + "  " + status + "  " + ratio + "\n"
}

func (m Model) renderStatus(s trace.Step) string {
	idx, n := m.player.Index(), m.player.Len()
	vals := metrics.Upto(m.player.Trace(), idx, metrics.NewCompares(), metrics.NewSwaps(), metrics.NewInversions())

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	row("Step", fmt.Sprintf("%d / %d", idx+1, n))
	row("Kind", string(s.Kind))
	row("Gap", fmt.Sprintf("%d", s.Gap))
	phase := metrics.PhaseAt(m.phases, idx)
	row("Phase", fmt.Sprintf("%d / %d", phase+1, len(m.phases)))
	row("Compares", fmt.Sprintf("%.0f", vals["compares"]))
	row("Swaps", fmt.Sprintf("%.0f", vals["swaps"]))
	row("Inversions", fmt.Sprintf("%.0f", vals["inversions"]))
	row("Speed", fmt.Sprintf("%d (%dms)", m.player.Speed(), m.player.Delay().Milliseconds()))

	progress := 1.0
	if n > 1 {
		progress = float64(idx) / float64(n-1)
	}
	b.WriteString(ProgressBar(progress, sideWidth-6) + "\n")

	if chart := PlotSwaps(m.phases, sideWidth-14, 4); chart != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(chart))
	} else {
		b.WriteString(KeyHint.Render("one gap phase only"))
	}
	return b.String()
}

// Run starts the terminal player on p.
func Run(p *player.Player, opts ...ModelOption) error {
	prog := tea.NewProgram(NewModel(p, opts...), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
