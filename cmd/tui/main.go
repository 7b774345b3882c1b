package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ledmatrix/internal/app"
	"ledmatrix/internal/core"
	"ledmatrix/internal/display"
	"ledmatrix/internal/input"
	"ledmatrix/internal/render"
	_ "ledmatrix/internal/sims/briansbrain"
	_ "ledmatrix/internal/sims/elementary"
	_ "ledmatrix/internal/sims/life"
	_ "ledmatrix/internal/sims/pattern"
	_ "ledmatrix/internal/sims/ripples"
	_ "ledmatrix/internal/sims/snake"
)

type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type model struct {
	session  *app.Session
	renderer *render.Renderer
	strip    *display.Buffer
	layout   render.Layout
	keys     *input.ChanSource
	poller   *input.Poller
	lip      *lipgloss.Renderer
	status   lipgloss.Style
	err      error
}

func (m *model) Init() tea.Cmd {
	now := time.Now()
	m.session.Begin(now)
	if err := m.renderer.Show(m.session.Frame(now)); err != nil {
		m.err = err
		return tea.Quit
	}
	return tickCmd(m.session.Interval())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "q":
			if _, ok := m.session.Sim().(core.KeyHandler); !ok {
				return m, tea.Quit
			}
		}
		for _, r := range msg.Runes {
			m.keys.Send(r)
		}
	case TickMsg:
		if key, ok := m.poller.TakeKey(); ok && m.session.HandleKey(key) {
			return m, tea.Quit
		}
		now := time.Time(msg)
		m.session.Tick(now)
		if err := m.renderer.Show(m.session.Frame(now)); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, tickCmd(m.session.Interval())
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(display.Grid(m.lip, m.layout, m.strip.Shown()))
	b.WriteString("\n\n")
	line := m.session.Sim().Name()
	if p, ok := m.session.Sim().(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			for _, param := range g.Params {
				line += fmt.Sprintf("  %s %s", param.Label, param.Value)
			}
		}
	}
	b.WriteString(m.status.Render(line))
	b.WriteString("\n")
	b.WriteString(m.status.Render("esc to quit"))
	return b.String()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log-file", "ledmatrix-tui.log", "file receiving logs while the TUI owns the terminal")
	flag.Parse()

	if _, err := cfg.LoadFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := tea.LogToFile(*logPath, "")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	logger, err := app.NewLogger(logFile, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := app.NewSession(sim, seed, logger)
	if cfg.ConfigPath != "" {
		go func() {
			if err := cfg.WatchFile(ctx, session, logger); err != nil {
				logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	keys := input.NewChanSource(8)
	defer keys.Close()
	poller := input.NewPoller(keys)
	poller.Start(ctx)

	strip := display.NewBuffer(layout.Cells())
	lip := lipgloss.NewRenderer(os.Stdout)
	m := &model{
		session:  session,
		renderer: render.NewRenderer(layout, strip),
		strip:    strip,
		layout:   layout,
		keys:     keys,
		poller:   poller,
		lip:      lip,
		status:   lip.NewStyle().Foreground(lipgloss.Color("241")),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
	if m.err != nil {
		log.Fatal(m.err)
	}
}
