// Package viewer is the interactive terminal cube viewer.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/notation"
)

// Service supplies scan data and solutions.
type Service interface {
	gocube.ColorSource
	FetchSolution(ctx context.Context) (string, error)
}

// Recorder persists scans and solves. Failures are logged, never shown as
// fatal.
type Recorder interface {
	RecordScan(c *gocube.Cube) error
	RecordSolveStart(solution string) error
	RecordMove(m gocube.Move) error
	RecordSolveEnd(final gocube.Phase) error
}

// Config wires a Model.
type Config struct {
	Service  Service
	Recorder Recorder // optional
	Camera   Camera
	Timeout  time.Duration // per network round trip
	Options  []gocube.Option
	Logger   *slog.Logger
}

type frameMsg time.Time
type moveTickMsg time.Time

type scanMsg struct {
	records []gocube.FaceRecord
	err     error
}

type solutionMsg struct {
	solution string
	err      error
}

// Model is the bubbletea model. All cube state is mutated from Update only;
// commands do network I/O and hand results back as messages.
type Model struct {
	store     *gocube.Store
	presenter *gocube.Presenter
	player    *gocube.Player
	importer  *gocube.Importer
	tracker   *gocube.Tracker

	service  Service
	recorder Recorder
	timeout  time.Duration
	logger   *slog.Logger

	camera    Camera
	fetching  bool
	animating bool
	played    []gocube.Move
	status    string
	err       error
	quitting  bool
}

// New creates a viewer model.
func New(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opts := append([]gocube.Option{gocube.WithLogger(logger)}, cfg.Options...)

	store := gocube.NewStore(opts...)
	presenter := gocube.NewPresenter(opts...)
	player := gocube.NewPlayer(store, presenter, opts...)
	importer := gocube.NewImporter(store, opts...)
	importer.SetPlayer(player)
	importer.SetPresenter(presenter)
	tracker := gocube.NewTracker()
	player.SetTracker(tracker)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	m := &Model{
		store:     store,
		presenter: presenter,
		player:    player,
		importer:  importer,
		tracker:   tracker,
		service:   cfg.Service,
		recorder:  cfg.Recorder,
		timeout:   timeout,
		logger:    logger,
		camera:    cfg.Camera,
		status:    "Press s to scan the cube",
	}

	player.OnMove(m.onMove)
	player.OnDone(m.onDone)
	tracker.SetPhaseCallback(func(p gocube.Phase) {
		m.status = "Reached " + p.DisplayName()
	})
	return m
}

// Store exposes the logical cube.
func (m *Model) Store() *gocube.Store { return m.store }

// Presenter exposes the visual cube.
func (m *Model) Presenter() *gocube.Presenter { return m.presenter }

// Player exposes the move interpreter.
func (m *Model) Player() *gocube.Player { return m.player }

// Camera returns the current camera.
func (m *Model) Camera() Camera { return m.camera }

// Err returns the last error shown, or nil.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case scanMsg:
		m.fetching = false
		return m, m.applyScan(msg)

	case solutionMsg:
		m.fetching = false
		return m, m.startSolve(msg)

	case moveTickMsg:
		if _, ok := m.player.Step(time.Time(msg)); ok {
			return m, tea.Batch(m.startFrames(), m.nextMoveTick())
		}
		if m.player.Running() {
			return m, m.nextMoveTick()
		}
		return m, nil

	case frameMsg:
		if m.presenter.Advance(time.Time(msg)) > 0 {
			return m, m.frameTick()
		}
		m.animating = false
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case "s":
		if m.player.Running() {
			m.setError(gocube.ErrSolveInProgress)
			return nil
		}
		if m.fetching {
			return nil
		}
		m.fetching = true
		m.err = nil
		m.status = "Scanning..."
		return m.fetchScan()

	case "enter":
		if m.player.Running() {
			m.setError(gocube.ErrSolveInProgress)
			return nil
		}
		if !m.store.Colored() {
			m.setError(gocube.ErrNotColored)
			return nil
		}
		if m.fetching {
			return nil
		}
		m.fetching = true
		m.err = nil
		m.status = "Fetching solution..."
		return m.fetchSolution()

	case "1", "2", "3", "4", "5", "6":
		m.camera = Presets[key[0]-'1'].Camera

	case "left":
		m.camera = m.camera.Orbit(-OrbitStep, 0)
	case "right":
		m.camera = m.camera.Orbit(OrbitStep, 0)
	case "up":
		m.camera = m.camera.Orbit(0, OrbitStep)
	case "down":
		m.camera = m.camera.Orbit(0, -OrbitStep)
	}
	return nil
}

// fetchScan fetches all six faces sequentially; the first failure stops
// the fetch and is reported along with the faces already received.
func (m *Model) fetchScan() tea.Cmd {
	svc, timeout := m.service, m.timeout
	return func() tea.Msg {
		var records []gocube.FaceRecord
		for _, f := range gocube.Faces {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			rec, err := svc.FetchFace(ctx, int(f))
			cancel()
			if err != nil {
				return scanMsg{records: records, err: fmt.Errorf("%w: face %d: %w", gocube.ErrNetwork, int(f), err)}
			}
			if rec.Face != int(f) {
				return scanMsg{records: records, err: fmt.Errorf("%w: asked for face %d, got %d", gocube.ErrMalformedColorData, int(f), rec.Face)}
			}
			records = append(records, rec)
		}
		return scanMsg{records: records}
	}
}

func (m *Model) fetchSolution() tea.Cmd {
	svc, timeout := m.service, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		solution, err := svc.FetchSolution(ctx)
		return solutionMsg{solution: solution, err: err}
	}
}

func (m *Model) applyScan(msg scanMsg) tea.Cmd {
	for _, rec := range msg.records {
		if err := m.importer.ImportFace(rec.Face, rec.Colors); err != nil {
			m.setError(err)
			return nil
		}
	}
	if msg.err != nil {
		m.setError(msg.err)
		return nil
	}

	m.played = nil
	m.tracker.Start(m.store)
	m.status = fmt.Sprintf("Scanned: %s", m.store.Cube().DetectPhase().DisplayName())
	if m.recorder != nil {
		if err := m.recorder.RecordScan(m.store.Cube()); err != nil {
			m.logger.Error("record scan failed", "error", err)
		}
	}
	return nil
}

func (m *Model) startSolve(msg solutionMsg) tea.Cmd {
	if msg.err != nil {
		m.setError(msg.err)
		return nil
	}
	// Only a solve the player will accept gets recorded; an empty one ends
	// inside Solve, so the record must be open by then.
	if _, err := gocube.ParseMoves(msg.solution); err != nil {
		m.setError(err)
		return nil
	}
	if !m.store.Colored() {
		m.setError(gocube.ErrNotColored)
		return nil
	}
	if m.recorder != nil {
		if err := m.recorder.RecordSolveStart(msg.solution); err != nil {
			m.logger.Error("record solve failed", "error", err)
		}
	}
	m.played = nil
	if err := m.player.Solve(msg.solution); err != nil {
		m.setError(err)
		return nil
	}
	if !m.player.Running() {
		return nil
	}
	m.status = fmt.Sprintf("Solving: %d moves", len(m.player.Remaining()))
	return m.nextMoveTick()
}

func (m *Model) onMove(mv gocube.Move) {
	m.played = append(m.played, mv)
	if m.recorder != nil {
		if err := m.recorder.RecordMove(mv); err != nil {
			m.logger.Error("record move failed", "error", err)
		}
	}
}

func (m *Model) onDone(played int) {
	final := m.store.Cube().DetectPhase()
	m.status = fmt.Sprintf("Done: %d moves, %s", played, final.DisplayName())
	if m.recorder != nil {
		if err := m.recorder.RecordSolveEnd(final); err != nil {
			m.logger.Error("record solve end failed", "error", err)
		}
	}
}

func (m *Model) setError(err error) {
	m.err = err
	m.logger.Error("viewer", "error", err)
	switch {
	case errors.Is(err, gocube.ErrNotColored):
		m.status = "Scan the cube first"
	case errors.Is(err, gocube.ErrSolveInProgress):
		m.status = "A solve is in progress"
	case errors.Is(err, gocube.ErrNetwork):
		m.status = "Service unreachable"
	default:
		m.status = "Error"
	}
}

func (m *Model) nextMoveTick() tea.Cmd {
	return tea.Tick(m.player.MoveInterval(), func(t time.Time) tea.Msg {
		return moveTickMsg(t)
	})
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.player.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// startFrames begins the frame loop unless it is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return m.frameTick()
}

func (m *Model) View() string {
	if m.quitting {
		return "Viewer closed.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GoCube Viewer"))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	face := m.camera.NearestFace()
	b.WriteString(fmt.Sprintf("Camera: %s  Facing: %s\n\n", m.camera.Name(), face.DisplayName()))
	b.WriteString(renderGrid(ProjectFace(m.store, m.presenter, face), 4))
	b.WriteString("\n")

	b.WriteString(renderNet(m.store.Cube()))
	b.WriteString("\n")

	phase := m.store.Cube().DetectPhase()
	b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(phase.DisplayName())))

	if len(m.played) > 0 {
		start := 0
		prefix := ""
		if len(m.played) > 20 {
			start = len(m.played) - 20
			prefix = "... "
		}
		b.WriteString("Moves: " + prefix)
		b.WriteString(moveStyle.Render(gocube.FormatMoves(m.played[start:])))
		b.WriteString("\n")
		last := m.played[len(m.played)-1]
		b.WriteString(fmt.Sprintf("Last: %s (%s)\n", last.Notation(), notation.Describe(last)))
	}
	if m.player.Running() {
		b.WriteString(fmt.Sprintf("Remaining: %d\n", len(m.player.Remaining())))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s=scan  enter=solve  1-6=camera  arrows=orbit  q=quit"))
	b.WriteString("\n")

	return b.String()
}
