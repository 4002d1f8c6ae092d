package tui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
	"github.com/vovakirdan/colorbubble/internal/sim"
)

// Half-block rendering: each terminal cell shows two vertically stacked
// virtual pixels, the top one as foreground and the bottom one as background.
const halfBlock = '▀'

// Sprite sizes in level pixels.
const (
	playerRadius = 4
	bubbleRadius = 5
	portalRadius = 9
	paintRadius  = 3
)

var (
	colorVoid       = core.RGBA{R: 0.02, G: 0.02, B: 0.04, A: 1}
	colorPortalIdle = core.RGBA{R: 0.35, G: 0.1, B: 0.5, A: 1}
	colorPortalLit  = core.RGBA{R: 1, G: 0.85, B: 1, A: 1}
)

// Renderer draws simulation snapshots into a Screen.
//
// It keeps a persistent paint layer per level: particles that despawn leave
// their color on nearby solid pixels, so walls slowly pick up the colors of
// the bubbles popped against them.
type Renderer struct {
	scale int // level pixels per virtual pixel

	level *level.Oracle
	paint *image.RGBA

	pixels []core.RGBA // virtual pixel buffer, row 0 at the top
	vw, vh int
}

// NewRenderer creates a renderer. scale is the number of level pixels per
// virtual pixel; values below 1 are treated as 1.
func NewRenderer(scale int) *Renderer {
	return &Renderer{scale: max(scale, 1)}
}

// SetLevel switches to a new level and clears the paint layer.
func (r *Renderer) SetLevel(l *level.Oracle) {
	if r.level == l {
		return
	}
	r.level = l
	size := l.Size()
	r.paint = image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
}

// Paint stamps despawned particles onto the paint layer.
func (r *Renderer) Paint(despawned []sim.Splash) {
	if r.level == nil {
		return
	}
	for _, s := range despawned {
		center := s.Pos.Trunc()
		cr, cg, cb := s.Color.Bytes()
		c := color.RGBA{R: cr, G: cg, B: cb, A: 255}
		for dy := -paintRadius; dy <= paintRadius; dy++ {
			for dx := -paintRadius; dx <= paintRadius; dx++ {
				if dx*dx+dy*dy > paintRadius*paintRadius {
					continue
				}
				p := core.IVec2{X: center.X + dx, Y: center.Y + dy}
				if r.level.IsHit(p) {
					r.paint.SetRGBA(p.X, p.Y, c)
				}
			}
		}
	}
}

// PaintAt returns the paint color at a level pixel and whether any was applied.
func (r *Renderer) PaintAt(p core.IVec2) (core.RGBA, bool) {
	if r.paint == nil || !r.level.Bounds().Contains(p.X, p.Y) {
		return core.RGBA{}, false
	}
	c := r.paint.RGBAAt(p.X, p.Y)
	if c.A == 0 {
		return core.RGBA{}, false
	}
	return rgbaFrom(c), true
}

// Camera returns the level coordinate of the bottom-left corner of a
// viewport of w x h level pixels centered on focus. The viewport is clamped
// to the level, and centered when the level is smaller than the viewport.
func Camera(focus core.Vec2, w, h int, size core.IVec2) core.IVec2 {
	return core.IVec2{
		X: cameraAxis(focus.X, w, size.X),
		Y: cameraAxis(focus.Y, h, size.Y),
	}
}

func cameraAxis(focus float64, view, extent int) int {
	if view >= extent {
		return -(view - extent) / 2
	}
	return core.Clamp(int(focus)-view/2, 0, extent-view)
}

// Draw renders snap into the rows [top, top+rows) of dst.
func (r *Renderer) Draw(dst *core.Screen, top, rows int, snap sim.Snapshot) {
	if r.level == nil || rows <= 0 {
		return
	}
	r.vw = dst.Width()
	r.vh = rows * 2
	if cap(r.pixels) < r.vw*r.vh {
		r.pixels = make([]core.RGBA, r.vw*r.vh)
	}
	r.pixels = r.pixels[:r.vw*r.vh]

	focus := snap.PlayerPos
	cam := Camera(focus, r.vw*r.scale, r.vh*r.scale, r.level.Size())

	r.drawLevel(cam)
	r.drawPortal(cam, snap)
	for _, s := range snap.Splashes {
		r.stamp(cam, s.Pos, 0, s.Color)
	}
	if snap.HasBubble {
		r.stamp(cam, snap.BubblePos, bubbleRadius, snap.BubbleColor.Lerp(core.White, 0.35))
	}
	if !snap.PlayerHidden {
		r.stamp(cam, snap.PlayerPos, playerRadius, snap.PlayerColor)
	}

	for row := 0; row < rows; row++ {
		for x := 0; x < r.vw; x++ {
			dst.SetCell(x, top+row, core.Cell{
				Rune: halfBlock,
				FG:   r.pixels[(row*2)*r.vw+x],
				BG:   r.pixels[(row*2+1)*r.vw+x],
			})
		}
	}
}

// levelPoint returns the level pixel sampled by virtual pixel (vx, vy).
func (r *Renderer) levelPoint(cam core.IVec2, vx, vy int) core.IVec2 {
	half := r.scale / 2
	return core.IVec2{
		X: cam.X + vx*r.scale + half,
		Y: cam.Y + (r.vh-1-vy)*r.scale + half,
	}
}

// virtualPoint maps a level position to virtual pixel coordinates.
func (r *Renderer) virtualPoint(cam core.IVec2, p core.Vec2) (int, int) {
	vx := int(math.Floor((p.X - float64(cam.X)) / float64(r.scale)))
	vy := r.vh - 1 - int(math.Floor((p.Y-float64(cam.Y))/float64(r.scale)))
	return vx, vy
}

func (r *Renderer) drawLevel(cam core.IVec2) {
	art := r.level.Art()
	bounds := r.level.Bounds()
	for vy := 0; vy < r.vh; vy++ {
		for vx := 0; vx < r.vw; vx++ {
			p := r.levelPoint(cam, vx, vy)
			c := colorVoid
			if bounds.Contains(p.X, p.Y) {
				c = rgbaFrom(art.RGBAAt(p.X, p.Y))
				if painted := r.paint.RGBAAt(p.X, p.Y); painted.A != 0 {
					c = c.Lerp(rgbaFrom(painted), 0.8)
				}
			}
			r.pixels[vy*r.vw+vx] = c
		}
	}
}

func (r *Renderer) drawPortal(cam core.IVec2, snap sim.Snapshot) {
	c := colorPortalIdle
	switch snap.PortalState {
	case sim.PortalCounting:
		c = colorPortalIdle.Lerp(colorPortalLit, snap.PortalGlow)
	case sim.PortalReady, sim.PortalSpent:
		c = colorPortalIdle.Lerp(colorVoid, 0.5)
	}
	r.stamp(cam, snap.PortalPos, portalRadius, c)
}

// stamp fills a disc of radius level pixels around pos. A radius of 0 sets
// the single virtual pixel containing pos.
func (r *Renderer) stamp(cam core.IVec2, pos core.Vec2, radius int, c core.RGBA) {
	cx, cy := r.virtualPoint(cam, pos)
	vr := radius / r.scale
	for dy := -vr; dy <= vr; dy++ {
		for dx := -vr; dx <= vr; dx++ {
			if dx*dx+dy*dy > vr*vr {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= r.vw || y < 0 || y >= r.vh {
				continue
			}
			r.pixels[y*r.vw+x] = c
		}
	}
}

func rgbaFrom(c color.RGBA) core.RGBA {
	return core.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: 1,
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// cellStyle maps a cell's colors to a lipgloss style.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.FG.A > 0 {
		style = style.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if c.BG.A > 0 {
		style = style.Background(lipgloss.Color(c.BG.Hex()))
	}
	return style
}
