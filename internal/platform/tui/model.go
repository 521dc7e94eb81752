package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/storage"
)

// Model is the Bubble Tea model for running a lightcycle match.
type Model struct {
	session     *arena.Session
	screen      *core.Screen
	store       *storage.Store
	gameCfg     config.GameConfig
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	paused      bool
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the match result has been saved for current game over
	startedAt   time.Time
	lastFrame   time.Time
}

// NewModel creates a new Bubble Tea model for a match with the given setup.
func NewModel(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session, err := arena.NewSession(gameCfg.ToArena(), cfg.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("cannot create session: %w", err)
	}
	if err := session.StartDefault(); err != nil {
		return Model{}, fmt.Errorf("cannot start match: %w", err)
	}

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		gameCfg:    gameCfg,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "q", "esc":
		m.backToMenu = true
		return m, tea.Quit
	}

	// Everything else goes through the input frame and is applied on
	// the next render frame, so a key can never act mid-tick.
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The arena keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame applies buffered input and advances the simulation by the
// wall time elapsed since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.startedAt.IsZero() {
		m.startedAt = now
		m.lastFrame = now
	}

	over, _ := m.session.Ended()

	if m.inputFrame.Has(core.ActionPause) && !over {
		m.paused = !m.paused
	}
	if m.inputFrame.Has(core.ActionRestart) && over {
		return m.restart(now)
	}

	if !m.paused {
		if m.inputFrame.Has(core.ActionTurnLeft) {
			m.session.QueueControlledTurn(arena.TurnLeft)
		} else if m.inputFrame.Has(core.ActionTurnRight) {
			m.session.QueueControlledTurn(arena.TurnRight)
		}
		if m.inputFrame.Has(core.ActionJump) {
			m.session.QueueControlledJump()
		}

		elapsed := now.Sub(m.lastFrame)
		if elapsed < 0 {
			elapsed = 0
		}
		m.session.AdvanceTime(elapsed)
	}
	m.lastFrame = now
	m.inputFrame.Clear()

	if over, winner := m.session.Ended(); over && !m.resultSaved {
		m.saveResult(winner)
		m.resultSaved = true
	}

	return m, frameCmd(m.config.FrameRate)
}

// restart tears down the finished match and starts a fresh one with a new seed.
func (m Model) restart(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Teardown()
	m.config.Seed = time.Now().UnixNano()

	session, err := arena.NewSession(m.gameCfg.ToArena(), m.config.Seed)
	if err == nil {
		if startErr := session.StartDefault(); startErr == nil {
			m.session = session
		}
	}

	m.paused = false
	m.resultSaved = false
	m.startedAt = now
	m.lastFrame = now
	m.inputFrame.Clear()
	return m, frameCmd(m.config.FrameRate)
}

// saveResult records the finished match, best-effort.
func (m *Model) saveResult(winner int) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the match screen continues regardless
	m.store.SaveMatch(storage.MatchResult{
		WinnerID:   winner,
		PlayerWon:  winner == arena.ControlledID,
		RiderCount: m.gameCfg.Arena.Riders,
		Ticks:      int(m.session.Tick()),
		DurationMs: int(time.Since(m.startedAt).Milliseconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()
	m.drawArena()

	if over, winner := m.session.Ended(); over {
		m.drawOverlay(winner)
	} else if m.paused {
		m.screen.DrawTextCentered(m.config.ScreenH/2, " PAUSED - press p to resume ")
	}

	return RenderScreen(m.screen)
}

// headingRune maps a rider heading to its head glyph.
func headingRune(d arena.Direction) rune {
	switch d {
	case arena.North:
		return '^'
	case arena.East:
		return '>'
	case arena.South:
		return 'v'
	default:
		return '<'
	}
}

// controlledView returns the view of the controlled rider.
func (m Model) controlledView() arena.RiderView {
	for _, r := range m.session.Riders() {
		if r.ID == arena.ControlledID {
			return r
		}
	}
	return arena.RiderView{}
}

// drawHUD renders the status line and the key hints.
func (m Model) drawHUD() {
	me := m.controlledView()
	status := fmt.Sprintf(" LIGHTCYCLE  riders %d/%d  jumps %d  tick %d",
		m.session.AliveCount(), len(m.session.Riders()), me.JumpCharges, m.session.Tick())
	if me.Airborne {
		status += "  [airborne]"
	}
	if !me.Alive && m.session.Running() {
		status += "  wrecked - watching the finish"
	}
	m.screen.DrawText(0, 0, status)

	hints := " a/left  d/right  space jump  p pause  q menu"
	if over, _ := m.session.Ended(); over {
		hints = " r restart  q menu"
	}
	m.screen.DrawTextColored(0, m.config.ScreenH-1, hints, core.ColorGray)
}

// drawArena renders a viewport of the grid centered on the controlled rider.
func (m Model) drawArena() {
	const top = 1
	viewW := m.config.ScreenW - 2
	viewH := m.config.ScreenH - top - 3
	if viewW < 8 || viewH < 4 {
		m.screen.DrawTextCentered(m.config.ScreenH/2, "terminal too small")
		return
	}

	n := m.session.GridSize()
	focus := m.controlledView().Pos
	camX := core.Clamp(focus.X-viewW/2, 0, core.Max(0, n-viewW))
	camZ := core.Clamp(focus.Z-viewH/2, 0, core.Max(0, n-viewH))

	m.screen.DrawBox(core.NewRect(0, top, viewW+2, viewH+2))

	for vy := 0; vy < viewH; vy++ {
		for vx := 0; vx < viewW; vx++ {
			gx, gz := camX+vx, camZ+vy
			sx, sy := 1+vx, top+1+vy
			if gx >= n || gz >= n {
				m.screen.SetColored(sx, sy, '.', core.ColorGray)
				continue
			}
			owner := m.session.Owner(arena.Cell{X: gx, Z: gz})
			if owner > 0 {
				m.screen.SetColored(sx, sy, '#', core.RiderColor(owner))
			}
		}
	}

	// Heads on top of trails
	for _, r := range m.session.Riders() {
		if !r.Alive {
			continue
		}
		vx, vy := r.Pos.X-camX, r.Pos.Z-camZ
		if vx < 0 || vy < 0 || vx >= viewW || vy >= viewH {
			continue
		}
		glyph := headingRune(r.Heading)
		if r.Airborne {
			glyph = 'o'
		}
		m.screen.SetColored(1+vx, top+1+vy, glyph, core.RiderColor(r.ID))
	}
}

// drawOverlay renders the end-of-match banner.
func (m Model) drawOverlay(winner int) {
	var msg string
	switch {
	case winner == 0:
		msg = "DRAW - everyone wrecked"
	case winner == arena.ControlledID:
		msg = "YOU WIN"
	default:
		msg = fmt.Sprintf("RIDER %d WINS", winner)
	}

	boxW := core.Max(len(msg)+6, 28)
	boxH := 5
	x := (m.config.ScreenW - boxW) / 2
	y := (m.config.ScreenH - boxH) / 2
	if x < 0 || y < 0 {
		m.screen.DrawTextCentered(m.config.ScreenH/2, msg)
		return
	}

	// Clear the interior so the arena does not bleed through
	for dy := 1; dy < boxH-1; dy++ {
		for dx := 1; dx < boxW-1; dx++ {
			m.screen.Set(x+dx, y+dy, ' ')
		}
	}
	m.screen.DrawBox(core.NewRect(x, y, boxW, boxH))
	m.screen.DrawTextCentered(y+1, msg)
	m.screen.DrawTextCentered(y+3, "press r to ride again")
}

// WantsMenu returns true if the user left the match to go back to the menu.
func (m Model) WantsMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// RunGame starts the Bubble Tea program for a single local match.
func RunGame(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(gameCfg, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
