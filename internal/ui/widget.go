package ui

import (
	"embed"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cubenav/cubenav"
	"github.com/cubenav/cubenav/internal/recorder"
)

//go:embed content/*.md
var contentFS embed.FS

const (
	frameInterval = 33 * time.Millisecond
	demoPause     = 600 * time.Millisecond
	demoRotation  = 400 * time.Millisecond
	spinNudge     = 2.5 // rad/s added per arrow press
	dragRate      = 2.0 // rad/s per cell of mouse movement
	chromeRows    = 6   // header, buttons, status and help lines
)

// Options configure a widget Model.
type Options struct {
	// Demo runs the looping auto-shuffle showcase: plain sub-cubes, no
	// markers, no input beyond quit, a random slice turn after every pause.
	Demo bool

	// Intro plays the assemble-and-spin tween before input is accepted.
	Intro         bool
	IntroDuration time.Duration

	// RotationDuration overrides the slice turn duration when positive.
	RotationDuration time.Duration

	// Session, when non-nil, records every performed move, face selection
	// and solved event. The caller owns Start and End.
	Session *recorder.Session
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the interactive cube widget. Keys 1-6 select a section face,
// arrows spin the whole cube, a repeat selection of the displayed face (or
// "o") opens the content overlay.
type Model struct {
	opts    Options
	cube    *cubenav.Cube
	engine  *cubenav.Engine
	scene   *cubenav.Scene
	tracker *cubenav.Tracker
	nav     *cubenav.Navigator

	cols, rows int

	overlayOpen bool
	overlayText string
	background  lipgloss.Style

	pending      *cubenav.Rotation
	rng          *rand.Rand
	nextDemoMove time.Time
	lastDemo     cubenav.Move

	dragX, dragY int

	quitting bool
}

// NewModel builds the widget over a fresh solved cube.
func NewModel(opts Options) *Model {
	cfg := cubenav.DefaultConfig()
	if opts.Demo {
		cfg.Markers = false
	}
	cube := cubenav.NewCube(cfg)

	engineOpts := []cubenav.Option{
		cubenav.WithMoveHistory(!opts.Demo),
	}
	if opts.Demo {
		engineOpts = append(engineOpts,
			cubenav.WithEasing(cubenav.EaseInOutCubic),
			cubenav.WithRotationDuration(demoRotation),
		)
	}
	if opts.RotationDuration > 0 {
		engineOpts = append(engineOpts, cubenav.WithRotationDuration(opts.RotationDuration))
	}
	engine := cubenav.NewEngine(cube, engineOpts...)
	scene := cubenav.NewScene()

	m := &Model{
		opts:       opts,
		cube:       cube,
		engine:     engine,
		scene:      scene,
		cols:       80,
		rows:       24,
		background: lipgloss.NewStyle(),
	}

	if opts.Demo {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		return m
	}

	m.tracker = cubenav.NewTracker(cube)
	m.tracker.SetSolvedCallback(func(alt bool) {
		if alt && opts.Session != nil {
			opts.Session.RecordSolved(cube.Fingerprint())
		}
	})
	m.nav = cubenav.NewNavigator(engine, scene, m.tracker)
	m.nav.SetPresetCallback(func(fa cubenav.FaceAssignment) {
		m.background = backgroundStyle(fa)
		if opts.Session != nil {
			opts.Session.RecordFace(fa.Index, cube.Fingerprint())
		}
	})
	m.nav.SetOverlayCallback(func(fa cubenav.FaceAssignment) {
		m.openOverlay(fa)
	})

	if opts.Intro {
		d := opts.IntroDuration
		if d <= 0 {
			d = 2 * time.Second
		}
		scene.StartIntro(d)
	}
	return m
}

// Cube exposes the model's cube so the caller can snapshot the final state
// when the program exits.
func (m *Model) Cube() *cubenav.Cube {
	return m.cube
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tickMsg:
		m.step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.opts.Demo {
		return m, nil
	}

	if m.overlayOpen {
		// Any key dismisses the overlay; the backdrop click of the site
		// maps here to esc and friends alike.
		m.overlayOpen = false
		return m, nil
	}

	switch key {
	case "1", "2", "3", "4", "5", "6":
		face := int(key[0] - '1')
		if rot := m.nav.Select(face, time.Now()); rot != nil {
			m.pending = rot
		}

	case "o", "enter":
		if face := m.nav.CurrentFace(); face != cubenav.FaceNone {
			m.openOverlay(cubenav.Faces[face])
		}

	case "left":
		m.scene.Spin(spinNudge, 0)
	case "right":
		m.scene.Spin(-spinNudge, 0)
	case "up":
		m.scene.Spin(0, spinNudge)
	case "down":
		m.scene.Spin(0, -spinNudge)
	}
	return m, nil
}

// handleMouse maps a left-button drag onto the scene's whole-cube spin. The
// release hands the last velocity off as momentum.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.opts.Demo || m.overlayOpen {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.scene.StartDrag()
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case tea.MouseActionMotion:
		if m.scene.Dragging() {
			dx := float64(msg.X - m.dragX)
			dy := float64(msg.Y - m.dragY)
			// Cells are taller than wide, so vertical motion counts double.
			m.scene.Spin(dx*dragRate, -dy*dragRate*2)
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		m.scene.EndDrag()
	}
}

// step drives both clocks and flushes a completed rotation to the recorder.
func (m *Model) step(now time.Time) {
	if m.opts.Demo {
		// A fixed gentle spin, reasserted every frame so it never decays.
		m.scene.Spin(0.5, 0.18)
	}
	m.scene.Step(now)
	m.engine.Step(now)

	if m.pending != nil && !m.pending.Active() {
		rot := m.pending
		m.pending = nil
		if rot.Performed() && m.opts.Session != nil {
			m.opts.Session.RecordMove(rot.Move(), m.cube.Fingerprint())
		}
		if m.opts.Demo {
			m.nextDemoMove = now.Add(demoPause)
		}
	}

	if m.opts.Demo && !m.engine.Busy() {
		if m.nextDemoMove.IsZero() {
			m.nextDemoMove = now.Add(demoPause)
		}
		if !now.Before(m.nextDemoMove) {
			mv := m.randomDemoMove()
			m.pending = m.engine.Rotate(mv, false)
			m.lastDemo = mv
		}
	}
}

// randomDemoMove picks the next shuffle move, re-rolling any move that
// exactly undoes the previous one so the shuffle drifts instead of
// oscillating.
func (m *Model) randomDemoMove() cubenav.Move {
	for {
		mv := cubenav.Move{
			Axis:  m.randomAxis(),
			Slice: m.rng.Intn(3),
			Dir:   m.randomDir(),
		}
		if mv != m.lastDemo.Inverse() {
			return mv
		}
	}
}

func (m *Model) randomAxis() cubenav.Axis {
	return []cubenav.Axis{cubenav.AxisX, cubenav.AxisY, cubenav.AxisZ}[m.rng.Intn(3)]
}

func (m *Model) randomDir() int {
	if m.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

// openOverlay shows the face's content panel. A face without a content
// template is a no-op.
func (m *Model) openOverlay(fa cubenav.FaceAssignment) {
	text := faceContent(fa.Key)
	if text == "" {
		return
	}
	m.overlayOpen = true
	m.overlayText = text
}

// faceContent looks the face's template up by naming convention.
func faceContent(key string) string {
	data, err := contentFS.ReadFile("content/" + key + ".md")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	cubeRows := m.rows - chromeRows
	if cubeRows < 3 {
		cubeRows = 3
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubenav"))
	b.WriteString("\n")
	if !m.opts.Demo {
		b.WriteString(m.buttonRow())
		b.WriteString("\n")
	}

	if m.overlayOpen {
		panel := overlayStyle.Width(min(m.cols-6, 56)).Render(m.overlayText)
		b.WriteString(lipgloss.Place(m.cols, cubeRows, lipgloss.Center, lipgloss.Center, panel))
		b.WriteString("\n")
	} else {
		alt := m.tracker != nil && m.tracker.DisplayAlt()
		cells := projectCube(m.cube, m.scene.Orientation(), m.scene.Spread(), alt, m.cols, cubeRows)
		b.WriteString(renderCells(cells, m.background, m.cols, cubeRows))
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) buttonRow() string {
	current := m.nav.CurrentFace()
	parts := make([]string, 0, len(cubenav.Faces))
	for i, fa := range cubenav.Faces {
		label := fmt.Sprintf("%d %s", i+1, fa.Label)
		if i == current {
			parts = append(parts, activeButtonStyle(fa).Render(label))
		} else {
			parts = append(parts, buttonStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) statusLine() string {
	if m.opts.Demo {
		return statusStyle.Render("demo: shuffling")
	}
	status := fmt.Sprintf("moves: %d", m.tracker.MoveCount())
	if hist := m.engine.History(); len(hist) > 0 {
		status += "  last: " + hist[len(hist)-1].Notation()
	}
	if m.tracker.DisplayAlt() {
		return statusStyle.Render(status) + "  " + solvedStyle.Render("solved!")
	}
	return statusStyle.Render(status)
}

func (m *Model) helpLine() string {
	if m.opts.Demo {
		return "q: quit"
	}
	if m.overlayOpen {
		return "any key: close"
	}
	return "1-6: faces (twice: open)  arrows/drag: spin  o: open  q: quit"
}
