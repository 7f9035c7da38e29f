// Package preview draws a recorded paint session as an isometric wireframe,
// one box per sprite, so a piece can be inspected without the sprite sheets.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
)

// Canvas size and tile origin before scaling.
const (
	canvasWidth  = 128
	canvasHeight = 192
	originX      = 64
	originY      = 150
)

// Options controls how a session is drawn. GroundZ is the height drawn as
// the tile floor; support posts start there.
type Options struct {
	Scale      int
	GroundZ    int32
	Background color.RGBA
	TrackBox   color.RGBA
	OtherBox   color.RGBA
	Label      string
}

// OptionsFromConfig converts the preview section of the configuration.
func OptionsFromConfig(pc config.PreviewConfig, groundZ int32) Options {
	return Options{
		Scale:      pc.Scale,
		GroundZ:    groundZ,
		Background: rgb(pc.Background),
		TrackBox:   rgb(pc.TrackBox),
		OtherBox:   rgb(pc.OtherBox),
	}
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

// supportPlaceXY is where each support place sits on the tile floor.
var supportPlaceXY = [paint.NumSupportPlaces]paint.CoordsXYZ{
	paint.SupportPlaceTopCorner:    {X: 0, Y: 0},
	paint.SupportPlaceLeftCorner:   {X: 32, Y: 0},
	paint.SupportPlaceRightCorner:  {X: 0, Y: 32},
	paint.SupportPlaceBottomCorner: {X: 32, Y: 32},
	paint.SupportPlaceCentre:       {X: 16, Y: 16},
	paint.SupportPlaceTopLeftSide:  {X: 16, Y: 0},
	paint.SupportPlaceTopRightSide: {X: 0, Y: 16},
	paint.SupportPlaceBottomLeft:   {X: 32, Y: 16},
	paint.SupportPlaceBottomRight:  {X: 16, Y: 32},
}

// Render draws the tile floor, every image's sorting box and every support
// post recorded on s. Each colour is stroked into one rasterizer pass and
// composited over the background.
func Render(s *paint.Session, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	r := newRenderer(image.Rect(0, 0, canvasWidth*opts.Scale, canvasHeight*opts.Scale), opts.Scale, opts.GroundZ)
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	r.begin()
	r.box(paint.BoundBoxXYZ{Offset: paint.CoordsXYZ{Z: opts.GroundZ}, Length: paint.CoordsXYZ{X: 32, Y: 32}})
	r.flush(colornames.Dimgray)

	r.begin()
	for _, c := range s.Calls {
		if c.Op == paint.OpImage {
			_, bb := c.Resolved()
			r.box(bb)
		}
	}
	r.flush(opts.TrackBox)

	r.begin()
	for _, c := range s.Calls {
		switch c.Op {
		case paint.OpStationCover:
			r.box(c.BoundBox)
		case paint.OpMetalA, paint.OpMetalB:
			base := supportPlaceXY[c.Place]
			top := base
			base.Z = opts.GroundZ
			top.Z = c.Height + c.Special
			r.line(base, top)
		}
	}
	r.flush(opts.OtherBox)

	if opts.Label != "" {
		d := &font.Drawer{
			Dst:  r.img,
			Src:  image.NewUniform(colornames.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, 13),
		}
		d.DrawString(opts.Label)
	}
	return r.img
}

type renderer struct {
	img       *image.RGBA
	ras       *vector.Rasterizer
	scale     int
	halfWidth float32
	z         int32
}

func newRenderer(bounds image.Rectangle, scale int, groundZ int32) *renderer {
	return &renderer{
		img:       image.NewRGBA(bounds),
		ras:       vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
		scale:     scale,
		halfWidth: float32(scale) / 2,
		z:         groundZ,
	}
}

// project maps a world point onto the canvas: X runs down-left, Y runs
// down-right and Z straight up, two pixels across per pixel down.
func (r *renderer) project(p paint.CoordsXYZ) (float32, float32) {
	sx := int(p.Y - p.X)
	sy := int(p.X+p.Y)/2 - int(p.Z-r.z)
	return float32((originX + sx) * r.scale), float32((originY + sy - 16) * r.scale)
}

// boxEdges indexes the corners returned by BoundBoxXYZ.GetCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (r *renderer) begin() {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
}

// flush composites everything stroked since begin in col.
func (r *renderer) flush(col color.Color) {
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (r *renderer) box(bb paint.BoundBoxXYZ) {
	corners := bb.GetCorners()
	for _, e := range boxEdges {
		r.line(corners[e[0]], corners[e[1]])
	}
}

func (r *renderer) line(a, b paint.CoordsXYZ) {
	x0, y0 := r.project(a)
	x1, y1 := r.project(b)
	r.stroke(x0, y0, x1, y1)
}

// stroke adds the outline of a segment as a quad extended by the half width
// at both ends, so box corners join. All quads wind the same way and
// overlapping strokes do not cancel. Zero-length segments add nothing.
func (r *renderer) stroke(x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	tx, ty := dx/l*r.halfWidth, dy/l*r.halfWidth
	nx, ny := -ty, tx
	r.ras.MoveTo(x0-tx+nx, y0-ty+ny)
	r.ras.LineTo(x1+tx+nx, y1+ty+ny)
	r.ras.LineTo(x1+tx-nx, y1+ty-ny)
	r.ras.LineTo(x0-tx-nx, y0-ty-ny)
	r.ras.ClosePath()
}
