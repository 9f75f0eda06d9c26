package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/showrank/internal/router"
	"github.com/abhisek/showrank/internal/screen"
	"github.com/abhisek/showrank/internal/screens/home"
	quizscreen "github.com/abhisek/showrank/internal/screens/quiz"
	"github.com/abhisek/showrank/internal/screens/welcome"
	"github.com/abhisek/showrank/internal/session"
	"github.com/abhisek/showrank/internal/share"
	"github.com/abhisek/showrank/internal/ui/layout"
)

// Options holds dependencies for the application.
type Options struct {
	Session     *session.Session
	Sharer      share.Sharer
	Logger      *zap.Logger
	NoticeDelay time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	deps := quizscreen.Deps{
		Session:     opts.Session,
		Sharer:      opts.Sharer,
		Logger:      opts.Logger,
		NoticeDelay: opts.NoticeDelay,
	}
	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(deps)
	})
	return AppModel{
		router:  router.New(welcomeScreen),
		session: opts.Session,
		logger:  opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case tea.MouseClickMsg:
		return m, m.router.Update(toPointer(screen.PointerPress, msg.Mouse()))
	case tea.MouseMotionMsg:
		return m, m.router.Update(toPointer(screen.PointerMotion, msg.Mouse()))
	case tea.MouseReleaseMsg:
		return m, m.router.Update(toPointer(screen.PointerRelease, msg.Mouse()))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toPointer converts terminal coordinates into content-local ones.
func toPointer(kind screen.PointerKind, mouse tea.Mouse) screen.PointerMsg {
	return screen.PointerMsg{
		Kind: kind,
		X:    mouse.X,
		Y:    mouse.Y - layout.HeaderHeight,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var highScore, games int
	if m.session != nil {
		st := m.session.Stats()
		highScore, games = st.HighScore, st.GamesPlayed
	}
	header := layout.RenderHeader(title, highScore, games, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		m.logger.Error("program exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
