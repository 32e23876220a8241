package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/tileworld/cmd/explorer/components"
	"github.com/VoidMesh/tileworld/internal/config"
	"github.com/VoidMesh/tileworld/internal/logging"
	"github.com/VoidMesh/tileworld/services/chunk"
	"github.com/VoidMesh/tileworld/services/entity"
	"github.com/VoidMesh/tileworld/services/render"
	"github.com/VoidMesh/tileworld/services/world"
)

const (
	// holdDuration keeps a key press steering the player between terminal
	// key repeats, which arrive without release events.
	holdDuration = 150 * time.Millisecond
	maxFrameTime = 0.25
	minZoom      = 0.125
	maxZoom      = 8
	zoomStep     = 1.25
	// statusLines is the terminal height taken by the status and help bars.
	statusLines = 2
)

type frameMsg time.Time

// Explorer is the bubbletea model that runs the frame loop over one world
// and one player.
type Explorer struct {
	world  *world.World
	player *entity.Player
	canvas *render.Canvas
	cfg    config.ExplorerConfig

	camera   mgl64.Vec2
	zoom     float64
	follow   bool
	generate bool
	mapMode  bool
	outline  bool

	moveUntil time.Time
	lastFrame time.Time
	frames    int
	destroyed int
	lastChunk chunk.Position

	width, height int
	now           func() time.Time
}

// NewExplorer creates an explorer drawing a cols by rows canvas.
func NewExplorer(w *world.World, p *entity.Player, cfg config.ExplorerConfig, cols, rows int) *Explorer {
	return &Explorer{
		world:     w,
		player:    p,
		canvas:    render.NewCanvas(cols, rows, components.Background),
		cfg:       cfg,
		camera:    p.Position(),
		zoom:      cfg.Zoom,
		follow:    true,
		generate:  true,
		outline:   true,
		lastChunk: chunk.PositionFromCoords(chunk.CoordsFromPosition(p.Position())),
		width:     cols,
		height:    (rows+1)/2 + statusLines,
		now:       time.Now,
	}
}

func (m *Explorer) Init() tea.Cmd {
	logging.GetLogger().Debug("Starting explorer", "fps", m.cfg.FPS, "zoom", m.zoom)
	return m.frameCmd()
}

func (m *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.handleKey(msg.String())
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		dt := 1 / float64(m.cfg.FPS)
		if !m.lastFrame.IsZero() {
			dt = min(now.Sub(m.lastFrame).Seconds(), maxFrameTime)
		}
		m.lastFrame = now
		m.Step(dt)
		return m, m.frameCmd()
	}

	return m, nil
}

func (m *Explorer) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.String())
	b.WriteByte('\n')
	b.WriteString(m.renderStatusBar())
	b.WriteByte('\n')
	b.WriteString(components.HelpStyle.Render("arrows move • space dig • wasd pan • f follow • g generate • m map • o outline • q/e zoom • ctrl+c quit"))
	return b.String()
}

// Resize fits the canvas to a terminal of width by height cells. Every text
// line carries two canvas rows.
func (m *Explorer) Resize(width, height int) {
	m.width = width
	m.height = height
	rows := max(height-statusLines, 1) * 2
	m.canvas = render.NewCanvas(width, rows, components.Background)
}

// viewRect returns the world rectangle shown in normal mode.
func (m *Explorer) viewRect() render.Rect {
	return render.NewRectAround(m.camera.X(), m.camera.Y(),
		float64(m.canvas.Cols())*m.zoom, float64(m.canvas.Rows())*m.zoom)
}

// activeRect returns the part of view that is generated and drawn. Past
// MaxActiveZoom it stops growing with the view.
func (m *Explorer) activeRect(view render.Rect) render.Rect {
	if m.zoom <= m.cfg.MaxActiveZoom {
		return view
	}
	return view.Zoom(m.cfg.MaxActiveZoom / m.zoom)
}

// Step advances one frame: generate around the view, draw the terrain, move
// the player, apply its terrain events, then draw the player on top.
func (m *Explorer) Step(dt float64) {
	if !m.moveUntil.IsZero() && m.now().After(m.moveUntil) {
		m.player.SetVelocity(mgl64.Vec2{})
		m.moveUntil = time.Time{}
	}
	if m.follow {
		m.camera = m.player.Position()
	}

	view := m.viewRect()
	active := m.activeRect(view)
	mapZone := active.Zoom(m.cfg.MapZoneFactor)
	if m.generate {
		m.world.GenerateAt(active.Grow(m.cfg.RenderPadding), mapZone)
	}

	mapView := mapZone.Scale(1 / float64(chunk.Size))
	if m.mapMode {
		m.canvas.Reset(mapView)
		m.world.RenderMap(m.canvas, mapView)
	} else {
		m.canvas.Reset(view)
		m.world.Render(m.canvas, active)
		if m.outline && active != view {
			m.drawOutline(active)
		}
	}

	m.world.UpdateEntity(m.player, dt)
	if n := m.world.UpdateWorldByEntity(m.player); n > 0 {
		m.destroyed += n
		pos := chunk.CoordsFromPosition(m.player.Position())
		logging.WithCoords(pos.X, pos.Y).Debug("Player dug", "tiles", n, "total", m.destroyed)
	}
	m.trackChunk()

	m.drawPlayer()
	m.frames++
}

// drawOutline frames r with a one cell border just outside it.
func (m *Explorer) drawOutline(r render.Rect) {
	vp := m.canvas.Viewport()
	cw := vp.W / float64(m.canvas.Cols())
	ch := vp.H / float64(m.canvas.Rows())
	col := components.OutlineColor

	m.canvas.FillRect(r.X-cw, r.Y-ch, r.W+2*cw, ch, col)
	m.canvas.FillRect(r.X-cw, r.Y+r.H, r.W+2*cw, ch, col)
	m.canvas.FillRect(r.X-cw, r.Y, cw, r.H, col)
	m.canvas.FillRect(r.X+r.W, r.Y, cw, r.H, col)
}

func (m *Explorer) trackChunk() {
	pos := chunk.PositionFromCoords(chunk.CoordsFromPosition(m.player.Position()))
	if pos == m.lastChunk {
		return
	}
	m.lastChunk = pos
	logging.WithChunkCoords(pos.X, pos.Y).Debug("Player entered chunk", "generated", m.world.HasChunk(pos))
}

func (m *Explorer) drawPlayer() {
	col := components.PlayerColor
	if m.player.State() == entity.StateDying {
		col = components.DyingColor
	}
	pos := m.player.Position()
	if m.mapMode {
		pos = pos.Mul(1 / float64(chunk.Size))
	}
	m.canvas.Mark(pos.X(), pos.Y(), col)
}

func (m *Explorer) handleKey(key string) {
	switch key {
	case "up", "down", "left", "right":
		m.player.SetVelocity(keyDirection(key).Vec().Mul(m.cfg.PlayerSpeed))
		m.moveUntil = m.now().Add(holdDuration)

	case " ":
		m.player.TryAttack()

	case "w", "a", "s", "d":
		m.follow = false
		step := float64(m.canvas.Cols()) * m.zoom / 8
		m.camera = m.camera.Add(keyDirection(key).Vec().Mul(step))

	case "f":
		m.follow = !m.follow

	case "g":
		m.generate = !m.generate

	case "m":
		m.mapMode = !m.mapMode

	case "o":
		m.outline = !m.outline

	case "q":
		m.zoom = min(m.zoom*zoomStep, maxZoom)

	case "e":
		m.zoom = max(m.zoom/zoomStep, minZoom)
	}
}

func keyDirection(key string) entity.Direction {
	switch key {
	case "up", "w":
		return entity.Up
	case "down", "s":
		return entity.Down
	case "left", "a":
		return entity.Left
	default:
		return entity.Right
	}
}

func (m *Explorer) renderStatusBar() string {
	pos := m.player.Position()
	stats := m.world.Stats()

	status := []string{
		components.TitleStyle.Render("tileworld"),
		fmt.Sprintf("(%.1f, %.1f)", pos.X(), pos.Y()),
		fmt.Sprintf("%s %s", m.player.State(), m.player.Direction()),
		m.terrainStatus(),
		m.digStatus(),
		fmt.Sprintf("Deaths: %d", m.player.Deaths()),
		components.CountStyle.Render(fmt.Sprintf("Dug: %d", m.destroyed)),
		fmt.Sprintf("Chunks: %d/%d", stats.Chunks, stats.MapChunks),
		fmt.Sprintf("Zoom: %.2f", m.zoom),
		components.Toggle("Follow", m.follow),
		components.Toggle("Gen", m.generate),
		components.Toggle("Map", m.mapMode),
		components.Toggle("Outline", m.outline),
	}
	if m.player.State() == entity.StateDying {
		status = append(status, components.AlertStyle.Render("You died"))
	}

	return components.StatusBarStyle.Width(m.width).MaxHeight(1).Render(strings.Join(status, " • "))
}

// terrainStatus names the tile under the player, or how much of its chunk is
// known when the tile itself is not generated.
func (m *Explorer) terrainStatus() string {
	c := chunk.CoordsFromPosition(m.player.Position())
	if t, ok := m.world.Tile(c); ok {
		return "on " + t.Texture.String()
	}
	if m.world.HasMapChunk(chunk.PositionFromCoords(c)) {
		return "on unexplored ground"
	}
	return "off the map"
}

func (m *Explorer) digStatus() string {
	if cd := m.player.Cooldown(); cd > 0 {
		return fmt.Sprintf("Dig in %.1fs", cd)
	}
	return "Dig ready"
}

func (m *Explorer) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Frames returns how many frames have been stepped.
func (m *Explorer) Frames() int {
	return m.frames
}
