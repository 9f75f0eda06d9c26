// Package quiz is the screen where a round is arranged, submitted and scored.
package quiz

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/showrank/internal/reorder"
	"github.com/abhisek/showrank/internal/screen"
	"github.com/abhisek/showrank/internal/session"
	"github.com/abhisek/showrank/internal/share"
	"github.com/abhisek/showrank/internal/ui/components"
	"github.com/abhisek/showrank/internal/ui/layout"
)

const (
	toastDuration = 3 * time.Second
	shareTimeout  = 5 * time.Second
)

const (
	noticeShared      = "Score copied to clipboard!"
	noticeUnsupported = "Share functionality is not supported on your device."
	noticeShareFailed = "Failed to share results."
)

// Deps are the collaborators a quiz screen needs.
type Deps struct {
	Session     *session.Session
	Sharer      share.Sharer
	Logger      *zap.Logger
	NoticeDelay time.Duration
}

// QuizScreen implements screen.Screen for one round at a time.
type QuizScreen struct {
	deps     Deps
	keys     keyMap
	round    *session.Round
	cursor   int
	submit   components.Button
	summary  *session.Summary
	toast    string
	toastSeq int
	// compact packs the list into one line per item for short terminals.
	compact bool

	toastDuration time.Duration
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen and deals its first round.
func New(deps Deps) *QuizScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &QuizScreen{
		deps:          deps,
		keys:          defaultKeyMap(),
		toastDuration: toastDuration,
	}
	s.startRound()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.deps.Session.Quiz().Title()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.summary != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Close"},
		}
	}
	if s.round.Submitted() {
		return []layout.KeyHint{
			hint(s.keys.NewRound),
			hint(s.keys.Share),
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		hint(s.keys.Up),
		hint(s.keys.Grab),
		{Key: "Mouse", Description: "Drag"},
		hint(s.keys.Submit),
		hint(s.keys.Share),
		{Key: "Esc", Description: "Back"},
	}
}

// Round returns the round on screen.
func (s *QuizScreen) Round() *session.Round {
	return s.round
}

func (s *QuizScreen) startRound() {
	s.round = s.deps.Session.NewRound()
	s.cursor = 0
	s.summary = nil
	s.submit = components.NewOneShotButton("SUBMIT", func() tea.Cmd {
		return func() tea.Msg { return submitMsg{} }
	})
}

// listTop is the content row of the first item. The rows above it hold a
// spacer (full layout only), the instructions and a blank line.
func (s *QuizScreen) listTop() int {
	if s.compact {
		return 2
	}
	return 3
}

func (s *QuizScreen) rowHeight() int {
	if s.compact {
		return 1
	}
	return 2
}

// fullHeight is the tallest the full layout gets: the scored results with
// total, bar and button.
func (s *QuizScreen) fullHeight() int {
	return 3 + 2*s.round.Surface.Len() + 4
}

func (s *QuizScreen) geometry() reorder.Rows {
	return reorder.Rows{Top: s.listTop(), Height: s.rowHeight()}
}

// pointerY maps a terminal cell row to a pointer position at the cell's
// vertical center.
func pointerY(row int) float64 {
	return float64(row) + 0.5
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.compact = layout.ContentHeight(msg.Height) < s.fullHeight()
		return s, nil

	case screen.PointerMsg:
		return s.handlePointer(msg)

	case styleTickMsg:
		s.round.Apply(s.geometry(), reorder.StyleTick{})
		return s, nil

	case submitMsg:
		return s.handleSubmit()

	case noticeDueMsg:
		if msg.roundID == s.round.ID && s.round.Submitted() {
			sum := session.BuildSummary(s.deps.Session)
			s.summary = &sum
		}
		return s, nil

	case shareDoneMsg:
		return s.handleShareDone(msg)

	case toastExpiredMsg:
		if msg.seq == s.toastSeq {
			s.toast = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handlePointer(msg screen.PointerMsg) (screen.Screen, tea.Cmd) {
	if s.round.Submitted() || s.summary != nil {
		return s, nil
	}

	g := s.geometry()
	y := pointerY(msg.Y)

	switch msg.Kind {
	case screen.PointerPress:
		if !s.round.Apply(g, reorder.Start{Y: y, Backend: reorder.BackendMouse}) {
			return s, nil
		}
		s.cursor = s.round.Surface.Moving()
		return s, func() tea.Msg { return styleTickMsg{} }

	case screen.PointerMotion:
		s.round.Apply(g, reorder.Move{Y: y})
		if m := s.round.Surface.Moving(); m >= 0 {
			s.cursor = m
		}

	case screen.PointerRelease:
		s.round.Apply(g, reorder.End{})
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// The result notice swallows the key that closes it.
	if s.summary != nil {
		s.summary = nil
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Share):
		return s, s.shareCmd()

	case key.Matches(msg, s.keys.NewRound):
		if s.round.Submitted() {
			s.startRound()
		}
		return s, nil

	case key.Matches(msg, s.keys.Submit):
		var cmd tea.Cmd
		s.submit, cmd = s.submit.Update(msg)
		return s, cmd
	}

	if s.round.Submitted() {
		return s, nil
	}

	g := s.geometry()
	n := s.round.Surface.Len()
	moving := s.round.Surface.Moving()

	switch {
	case key.Matches(msg, s.keys.Up):
		if moving >= 0 {
			s.round.Apply(g, reorder.Move{Y: reorder.StepUp(g, moving)})
			s.cursor = s.round.Surface.Moving()
		} else if s.cursor > 0 {
			s.cursor--
		}

	case key.Matches(msg, s.keys.Down):
		if moving >= 0 {
			s.round.Apply(g, reorder.Move{Y: reorder.StepDown(g, moving, n)})
			s.cursor = s.round.Surface.Moving()
		} else if s.cursor < n-1 {
			s.cursor++
		}

	case key.Matches(msg, s.keys.Grab):
		if moving >= 0 {
			s.round.Apply(g, reorder.End{})
		} else {
			s.round.Apply(g, reorder.Start{Y: g.Box(s.cursor).Mid(), Backend: reorder.BackendKeyboard})
		}
	}
	return s, nil
}

func (s *QuizScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	_, err := s.deps.Session.Submit(context.Background(), s.round)
	if err != nil {
		if !errors.Is(err, session.ErrAlreadySubmitted) {
			s.deps.Logger.Error("submit failed", zap.String("round_id", s.round.ID), zap.Error(err))
		}
		return s, nil
	}

	roundID := s.round.ID
	return s, tea.Tick(s.deps.NoticeDelay, func(time.Time) tea.Msg {
		return noticeDueMsg{roundID: roundID}
	})
}

func (s *QuizScreen) shareCmd() tea.Cmd {
	if s.deps.Sharer == nil {
		return s.setToast(noticeUnsupported)
	}
	sharer := s.deps.Sharer
	payload := s.deps.Session.SharePayload()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
		defer cancel()
		return shareDoneMsg{err: sharer.Share(ctx, payload)}
	}
}

func (s *QuizScreen) handleShareDone(msg shareDoneMsg) (screen.Screen, tea.Cmd) {
	switch {
	case msg.err == nil:
		s.deps.Logger.Info("share successful", zap.Int("high_score", s.deps.Session.Stats().HighScore))
		return s, s.setToast(noticeShared)
	case errors.Is(msg.err, share.ErrUnsupported):
		return s, s.setToast(noticeUnsupported)
	default:
		s.deps.Logger.Error("share failed", zap.Error(msg.err))
		return s, s.setToast(noticeShareFailed)
	}
}

func (s *QuizScreen) setToast(text string) tea.Cmd {
	s.toast = text
	s.toastSeq++
	seq := s.toastSeq
	return tea.Tick(s.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
