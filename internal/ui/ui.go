// Package ui is the terminal front end: it asks for a secret, collects
// guesses, runs them through a game.Session and draws the result.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/wordle/internal/apperrors"
	"github.com/palemoky/wordle/internal/game"
	"github.com/palemoky/wordle/internal/logger"
	"github.com/palemoky/wordle/internal/sound"
	"github.com/palemoky/wordle/internal/ui/model"
	"github.com/palemoky/wordle/internal/ui/view"
	"github.com/palemoky/wordle/internal/words"
)

const (
	defaultRequestTimeout = 10 * time.Second
	noticeDuration        = 3 * time.Second
)

// Deps are the collaborators the UI drives.
type Deps struct {
	Source      words.Source
	Checker     words.Checker // nil skips the dictionary check
	Sound       sound.Player     // nil plays nothing
	MaxAttempts int
	Scoring     game.Scoring
	// Timeout bounds each call to Source or Checker.
	Timeout time.Duration
}

// Model is the bubbletea model for one terminal window.
type Model struct {
	deps Deps

	phase      model.GamePhase
	session    *game.Session
	loadFailed bool

	notice    string
	noticeSeq int

	input   textinput.Model
	spinner spinner.Model
	width   int
	height  int
}

// New creates the model. The first secret is fetched by Init.
func New(deps Deps) *Model {
	if deps.Timeout <= 0 {
		deps.Timeout = defaultRequestTimeout
	}

	ti := textinput.New()
	ti.Placeholder = "type a 5-letter word..."
	ti.CharLimit = game.WordLength
	ti.Width = 20
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		deps:    deps,
		phase:   model.PhaseLoading,
		input:   ti,
		spinner: sp,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchSecret(),
		textinput.Blink,
		m.spinner.Tick,
	)
}

// fetchSecret asks the word source for a new secret.
func (m *Model) fetchSecret() tea.Cmd {
	src, timeout := m.deps.Source, m.deps.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		secret, err := src.RandomWord(ctx)
		if err != nil {
			return model.SecretErrorMsg{Err: err}
		}
		return model.SecretMsg{Secret: secret}
	}
}

// submitGuess runs the guess through the session off the event loop.
func (m *Model) submitGuess(guess string) tea.Cmd {
	s, timeout := m.session, m.deps.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ev, err := s.Evaluate(ctx, guess)
		return model.EvaluatedMsg{SessionID: s.ID(), Guess: guess, Evaluation: ev, Err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if handled, cmd := m.handleKeyPress(msg); handled {
			return m, cmd
		}

	case model.SecretMsg:
		cmds = append(cmds, m.startSession(msg.Secret))

	case model.SecretErrorMsg:
		logger.LogError("could not get a secret word: %v", msg.Err)
		m.failLoading(msg.Err)

	case model.EvaluatedMsg:
		cmds = append(cmds, m.handleEvaluated(msg))

	case model.ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.phase == model.PhasePlaying {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startSession replaces the current session with one for secret.
func (m *Model) startSession(secret string) tea.Cmd {
	opts := []game.Option{
		game.WithMaxAttempts(m.deps.MaxAttempts),
		game.WithScoring(m.deps.Scoring),
	}
	if m.deps.Checker != nil {
		opts = append(opts, game.WithChecker(m.deps.Checker))
	}

	s, err := game.NewSession(secret, opts...)
	if err != nil {
		logger.LogError("rejected secret from word source: %v", err)
		m.failLoading(err)
		return nil
	}

	m.session = s
	m.phase = model.PhasePlaying
	m.loadFailed = false
	m.notice = ""
	m.input.Reset()
	logger.Logger().Info().
		Str("session", s.ID()).
		Int("max_attempts", s.MaxAttempts()).
		Str("scoring", s.Scoring().String()).
		Msg("game started")
	return m.input.Focus()
}

// handleEvaluated applies the outcome of a submitted guess.
func (m *Model) handleEvaluated(msg model.EvaluatedMsg) tea.Cmd {
	if m.session == nil || msg.SessionID != m.session.ID() {
		return nil
	}

	if msg.Err != nil {
		m.phase = model.PhasePlaying
		m.play(sound.CueReject)
		if apperrors.Code(msg.Err) == apperrors.CodeValidationUnavailable {
			logger.Logger().Warn().Err(msg.Err).Str("session", msg.SessionID).Str("guess", msg.Guess).Msg("validation failed")
		}
		return tea.Batch(m.input.Focus(), m.setNotice(apperrors.Message(msg.Err)))
	}

	ev := msg.Evaluation
	logger.Logger().Debug().
		Str("session", msg.SessionID).
		Str("guess", ev.Guess).
		Int("attempts_used", ev.AttemptsUsed).
		Str("status", ev.Status.String()).
		Msg("guess evaluated")

	switch ev.Status {
	case game.StatusWon:
		m.finish(sound.CueWin, ev)
		return nil
	case game.StatusLost:
		m.finish(sound.CueLose, ev)
		return nil
	}

	m.phase = model.PhasePlaying
	m.play(sound.CueSubmit)
	return m.input.Focus()
}

func (m *Model) finish(cue sound.Cue, ev *game.Evaluation) {
	m.phase = model.PhaseGameOver
	m.input.Blur()
	m.play(cue)
	logger.Logger().Info().
		Str("session", m.session.ID()).
		Str("status", ev.Status.String()).
		Int("attempts_used", ev.AttemptsUsed).
		Msg("game over")
}

// failLoading keeps the loading screen with a persistent error until the
// player retries.
func (m *Model) failLoading(err error) {
	m.loadFailed = true
	m.noticeSeq++
	m.notice = "Could not start a game: " + apperrors.Message(err)
}

// newGame drops the current session and fetches a new secret.
func (m *Model) newGame() tea.Cmd {
	m.session = nil
	m.phase = model.PhaseLoading
	m.loadFailed = false
	m.notice = ""
	m.input.Reset()
	m.input.Blur()
	return m.fetchSecret()
}

// setNotice shows a temporary message.
func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return model.ClearNoticeMsg{Seq: seq}
	})
}

func (m *Model) play(cue sound.Cue) {
	if m.deps.Sound != nil {
		m.deps.Sound.Play(cue)
	}
}

func (m *Model) View() string {
	d := view.Data{
		Width:   m.width,
		Height:  m.height,
		Phase:   m.phase,
		Input:   m.input.View(),
		Spinner: m.spinner.View(),
		Notice:  m.notice,
	}
	if m.session != nil {
		d.History = m.session.History()
		d.MaxAttempts = m.session.MaxAttempts()
		d.Status = m.session.Status()
		d.Board = m.session.Board()
		if d.Status.IsTerminal() {
			d.Secret = m.session.Secret()
		}
	}
	return view.Render(d)
}

// Phase returns the current phase.
func (m *Model) Phase() model.GamePhase { return m.phase }

// Session returns the active session, or nil while loading.
func (m *Model) Session() *game.Session { return m.session }

// Notice returns the message currently shown to the player.
func (m *Model) Notice() string { return m.notice }
