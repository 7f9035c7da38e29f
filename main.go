package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/preview"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/ride/multidim"
	"coasterpaint/internal/threading/core"
	"coasterpaint/internal/track"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sidebarWidth = 300
	padding      = 16
	lineHeight   = 14
)

var allDirections = []paint.Direction{
	paint.DirectionWest, paint.DirectionNorth, paint.DirectionEast, paint.DirectionSouth,
}

// tileView is one rendered direction of the selected tile.
type tileView struct {
	rgba    *image.RGBA
	image   *ebiten.Image
	summary []string
	err     error
}

type viewer struct {
	cfg    *config.Config
	styles *track.StyleRegistry
	ride   *ride.Ride
	cache  *preview.Cache
	pieces []track.ElemType

	pieceIndex int
	sequence   uint8
	inverted   bool
	chain      bool
	closed     bool

	views []tileView
	dirty bool
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	styles := track.NewStyleRegistry()
	if err := styles.LoadStyleFile(cfg.Paint.StyleFile); err != nil {
		log.Fatal(err)
	}

	r, err := ride.NewFromConfig(0, styles.Name(), cfg.Paint)
	if err != nil {
		log.Fatal(err)
	}
	// The entrance on the north side leaves that platform unfenced.
	r.AddStation(ride.Station{
		Start:     paint.CoordsXY{X: cfg.Paint.MapX, Y: cfg.Paint.MapY},
		Direction: paint.DirectionEast,
		Height:    cfg.GetBaseHeight(),
		Length:    1,
		Entrance:  &paint.CoordsXY{X: cfg.Paint.MapX, Y: cfg.Paint.MapY + 32},
	})

	v := &viewer{
		cfg:    cfg,
		styles: styles,
		ride:   r,
		cache:  preview.NewCache(cfg.Preview.CacheSize),
		pieces: styles.Pieces(),
		dirty:  true,
	}
	log.Printf("Loaded %s with %d pieces", styles.Name(), len(v.pieces))

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if len(v.pieces) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.selectPiece(v.pieceIndex + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.selectPiece(v.pieceIndex - 1)
	}

	count := track.SequenceCount(v.piece())
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.sequence = (v.sequence + 1) % count
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.sequence = (v.sequence + count - 1) % count
		v.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		v.inverted = !v.inverted
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.chain = !v.chain
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.closed = !v.closed
		v.dirty = true
	}

	if v.dirty {
		v.refresh()
		v.dirty = false
	}
	return nil
}

func (v *viewer) piece() track.ElemType {
	return v.pieces[v.pieceIndex]
}

func (v *viewer) selectPiece(i int) {
	n := len(v.pieces)
	v.pieceIndex = (i%n + n) % n
	v.sequence = 0
	v.dirty = true
}

// element builds the selected element. Flags the style cannot draw for the
// piece are left off.
func (v *viewer) element() *track.Element {
	t := v.piece()
	el := track.NewElement(t)
	el.SetSequenceIndex(v.sequence)
	el.SetInverted(v.inverted && v.styles.IsInvertible(t))
	el.SetHasChain(v.chain && v.styles.HasChainVariant(t))
	el.SetBlockBrakeClosed(v.closed)
	el.SetTakingPhoto(v.closed && t == track.OnRidePhoto)
	return el
}

// refresh renders the selected tile in all four directions in parallel.
// Previews come from the cache when they have been drawn before.
func (v *viewer) refresh() {
	el := v.element()
	opts := preview.OptionsFromConfig(v.cfg.Preview, v.cfg.GetBaseHeight()-32)

	v.replaceViews(core.ParallelMap(allDirections, func(dir paint.Direction) tileView {
		s := paint.NewSession(paint.CoordsXY{X: v.cfg.Paint.MapX, Y: v.cfg.Paint.MapY})
		v.ride.ApplyColours(s)
		if err := multidim.Paint(s, v.ride, el, v.sequence, dir, v.cfg.GetBaseHeight()); err != nil {
			return tileView{err: err}
		}

		key := preview.Key{
			Piece:     el.GetTrackType(),
			Sequence:  v.sequence,
			Direction: dir,
			Inverted:  el.IsInverted(),
			Chain:     el.HasChain(),
			Closed:    el.BlockBrakeClosed(),
		}
		rgba := v.cache.GetOrCreate(key, func() *image.RGBA {
			o := opts
			o.Label = fmt.Sprintf("direction %d", dir)
			return preview.Render(s, o)
		})
		return tileView{rgba: rgba, summary: summarize(s)}
	}))
}

// replaceViews installs freshly rendered views and frees the textures
// uploaded for the previous ones.
func (v *viewer) replaceViews(views []tileView) {
	for i := range v.views {
		if img := v.views[i].image; img != nil {
			img.Deallocate()
			v.views[i].image = nil
		}
	}
	v.views = views
}

func summarize(s *paint.Session) []string {
	lines := []string{
		fmt.Sprintf("images %d  supports %d", s.CountOp(paint.OpImage), s.CountOp(paint.OpMetalA)+s.CountOp(paint.OpMetalB)),
		fmt.Sprintf("tunnels L%d R%d", len(s.LeftTunnels), len(s.RightTunnels)),
		fmt.Sprintf("clearance %d", s.GeneralSupport.Height),
	}
	if s.VerticalTunnelHeight != 0 {
		lines = append(lines, fmt.Sprintf("vertical tunnel %d", s.VerticalTunnelHeight))
	}
	return lines
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorFromRGB(v.cfg.Preview.Background, 255))

	if len(v.pieces) == 0 {
		ebitenutil.DebugPrintAt(screen, "style has no pieces", padding, padding)
		return
	}

	x := padding
	for i, view := range v.views {
		if view.err != nil {
			ebitenutil.DebugPrintAt(screen, view.err.Error(), x, padding)
			x += sidebarWidth
			continue
		}
		img := v.viewImage(i)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(padding))
		screen.DrawImage(img, op)

		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		drawRectBorder(screen, x, padding, w, h, 1, colorFromRGB(v.cfg.Preview.OtherBox, 255))
		for j, line := range view.summary {
			ebitenutil.DebugPrintAt(screen, line, x+4, padding+h+4+j*lineHeight)
		}
		x += w + padding
	}

	v.drawSidebar(screen, x)
}

// viewImage uploads the preview of direction i the first time it is drawn
// and reuses the texture until the views are replaced.
func (v *viewer) viewImage(i int) *ebiten.Image {
	view := &v.views[i]
	if view.image == nil {
		view.image = ebiten.NewImageFromImage(view.rgba)
	}
	return view.image
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x int) {
	el := v.element()
	t := v.piece()
	lines := []string{
		v.styles.Name(),
		"",
		fmt.Sprintf("piece %d/%d", v.pieceIndex+1, len(v.pieces)),
		t.String(),
		fmt.Sprintf("sequence %d/%d", v.sequence+1, track.SequenceCount(t)),
		fmt.Sprintf("inverted %v  chain %v", el.IsInverted(), el.HasChain()),
		fmt.Sprintf("brake closed %v", el.BlockBrakeClosed()),
		"",
		"Up/Down: piece",
		"Left/Right: sequence",
		"I: invert  C: chain",
		"B: close brake / flash photo",
		"Esc: quit",
	}
	drawFilledRect(screen, x, padding, sidebarWidth, len(lines)*lineHeight+padding, color.RGBA{30, 30, 44, 255})
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+8, padding+8+i*lineHeight)
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.cfg.GetScreenWidth(), v.cfg.GetScreenHeight()
}

func colorFromRGB(rgb [3]int, a uint8) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), a}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
