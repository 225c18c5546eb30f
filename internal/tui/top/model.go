package top

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/imbinder/internal/binder"
	"github.com/leg100/imbinder/internal/logging"
	"github.com/leg100/imbinder/internal/pubsub"
	"github.com/leg100/imbinder/internal/tui"
)

const (
	// DefaultFPS is the default frame rate.
	DefaultFPS = 60

	footerHeight = 1
	logTitle     = "Log"
	// maxLogs is the maximum number of log messages retained for display.
	maxLogs = 1000
)

// frameMsg triggers a frame.
type frameMsg time.Time

type model struct {
	ctx      *tui.Context
	registry *binder.Registry

	interval time.Duration

	// most recent log messages, oldest first
	logs []logging.Message
	// serial of the next log message expected
	nextSerial uint

	width  int
	height int

	dump io.Writer
}

type Options struct {
	Registry *binder.Registry
	Logger   *logging.Logger
	// FPS defaults to DefaultFPS.
	FPS int
	// HoldTimeout defaults to tui.DefaultHoldTimeout.
	HoldTimeout time.Duration
	// Debug dumps every message received to messages.log.
	Debug bool
}

// New constructs the top-level TUI model.
func New(opts Options) (model, error) {
	var dump io.Writer
	if opts.Debug {
		f, err := os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, err
		}
		dump = f
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	m := model{
		ctx:      tui.New(tui.Options{HoldTimeout: opts.HoldTimeout}),
		registry: opts.Registry,
		interval: time.Second / time.Duration(fps),
		dump:     dump,
	}
	if opts.Logger != nil {
		m.logs = opts.Logger.List()
		m.nextSerial = uint(len(m.logs))
		m.trimLogs()
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.ctx.Feed(msg)
	case tea.MouseMsg:
		m.ctx.Feed(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Leave room for the footer.
		m.ctx.Feed(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-footerHeight, 0),
		})
	case pubsub.Event[logging.Message]:
		if msg.Payload.Serial >= m.nextSerial {
			m.logs = append(m.logs, msg.Payload)
			m.nextSerial = msg.Payload.Serial + 1
			m.trimLogs()
		}
	case frameMsg:
		m.frame(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m *model) trimLogs() {
	if n := len(m.logs); n > maxLogs {
		m.logs = slices.Clone(m.logs[n-maxLogs:])
	}
}

// frame renders the bindings editor, dispatches actions and then renders the
// log.
func (m model) frame(now time.Time) {
	m.ctx.NewFrame(now)
	if m.registry != nil {
		m.registry.RenderEditorWindow(m.ctx)
		m.registry.Update(m.ctx)
	}
	m.logWindow(now)
	m.ctx.EndFrame()
}

// logWindow renders the most recent log messages that fit, newest first.
func (m model) logWindow(now time.Time) {
	if m.ctx.Begin(logTitle) {
		_, height := m.ctx.ContentRegionAvail()

		recent := slices.Clone(m.logs)
		slices.SortFunc(recent, logging.BySerialDesc)
		if len(recent) > height {
			recent = recent[:height]
		}
		if len(recent) == 0 && height > 0 {
			m.ctx.Text("No log messages")
		}
		for _, msg := range recent {
			m.ctx.Text("%-7s", tui.Ago(now, msg.Time))
			m.ctx.SameLine()
			m.ctx.TextColored(levelColor(msg.Level), "%-5s", msg.Level)
			m.ctx.SameLine()
			m.ctx.Text("%s", formatMessage(msg))
		}
	}
	m.ctx.End()
}

func levelColor(level string) lipgloss.TerminalColor {
	switch level {
	case "ERROR":
		return tui.ErrorLogLevel
	case "WARN":
		return tui.WarnLogLevel
	case "DEBUG":
		return tui.DebugLogLevel
	default:
		return tui.InfoLogLevel
	}
}

func formatMessage(msg logging.Message) string {
	var b strings.Builder
	b.WriteString(msg.Message)
	for _, attr := range msg.Attributes {
		fmt.Fprintf(&b, " %s=%s", attr.Key, attr.Value)
	}
	return b.String()
}

func (m model) View() string {
	var status string
	if m.registry != nil {
		if name, ok := m.registry.Rebinding(); ok {
			status = tui.Bold.Render(fmt.Sprintf("Press a key to bind to %q ", name))
		}
	}
	help := helpView(
		[]key.Binding{keys.Quit, clickBinding, dragBinding, abortBinding},
		m.width-lipgloss.Width(status),
	)
	footer := lipgloss.NewStyle().
		Inline(true).
		MaxWidth(m.width).
		Render(status + help)
	return lipgloss.JoinVertical(lipgloss.Left, m.ctx.View(), footer)
}
