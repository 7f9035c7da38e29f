package preview

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/ride/multidim"
	"coasterpaint/internal/threading/core"
	"coasterpaint/internal/track"
)

var testRide = ride.New(1, "Preview Coaster", ride.TrackColour{
	Main:       paint.ColourBrightRed,
	Additional: paint.ColourYellow,
	Supports:   paint.ColourDarkBrown,
})

var testOptions = OptionsFromConfig(config.PreviewConfig{
	Scale:      2,
	Background: [3]int{15, 15, 22},
	TrackBox:   [3]int{230, 80, 80},
	OtherBox:   [3]int{90, 160, 230},
}, 48)

func paintTile(t *testing.T, typ track.ElemType, dir paint.Direction) *paint.Session {
	t.Helper()
	s := paint.NewSession(paint.CoordsXY{X: 64, Y: 64})
	testRide.ApplyColours(s)
	if err := multidim.Paint(s, testRide, track.NewElement(typ), 0, dir, 80); err != nil {
		t.Fatalf("Failed to paint %s: %v", typ, err)
	}
	return s
}

// countColour counts pixels within a rounding step of col. Fully covered
// stroke pixels can come out one unit off after compositing.
func countColour(img *image.RGBA, col color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if near(img.RGBAAt(x, y), col) {
				n++
			}
		}
	}
	return n
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderEmptySession(t *testing.T) {
	img := Render(paint.NewSession(paint.CoordsXY{}), testOptions)

	if img.Bounds().Dx() != canvasWidth*2 || img.Bounds().Dy() != canvasHeight*2 {
		t.Fatalf("Unexpected image size %v", img.Bounds())
	}
	if img.RGBAAt(0, 0) != testOptions.Background {
		t.Errorf("Expected background at the corner, got %v", img.RGBAAt(0, 0))
	}
	if countColour(img, colornames.Dimgray) == 0 {
		t.Errorf("Expected the tile floor to be drawn")
	}
	if countColour(img, testOptions.TrackBox) != 0 || countColour(img, testOptions.OtherBox) != 0 {
		t.Errorf("Expected no boxes for an empty session")
	}
}

func TestRenderDrawsBoxesAndSupports(t *testing.T) {
	s := paintTile(t, track.Flat, paint.DirectionWest)
	if s.CountOp(paint.OpMetalA) == 0 {
		t.Fatalf("Expected the flat tile to have a support")
	}

	img := Render(s, testOptions)
	if countColour(img, testOptions.TrackBox) == 0 {
		t.Errorf("Expected track boxes")
	}
	if countColour(img, testOptions.OtherBox) == 0 {
		t.Errorf("Expected a support post")
	}

	labelled := testOptions
	labelled.Label = "flat"
	if countColour(Render(s, labelled), colornames.White) == 0 {
		t.Errorf("Expected the label to be drawn")
	}
}

func TestRenderRotations(t *testing.T) {
	west := Render(paintTile(t, track.LeftQuarterTurn3Tiles, paint.DirectionWest), testOptions)
	north := Render(paintTile(t, track.LeftQuarterTurn3Tiles, paint.DirectionNorth), testOptions)
	if string(west.Pix) == string(north.Pix) {
		t.Errorf("Expected different previews for different rotations")
	}
}

func TestStrokeClipsToCanvas(t *testing.T) {
	r := newRenderer(image.Rect(0, 0, 8, 8), 2, 0)
	r.begin()
	r.stroke(-10, 4, 20, 4)
	r.stroke(2, 2, 2, 2)
	r.flush(colornames.Red)

	if n := countColour(r.img, colornames.Red); n != 16 {
		t.Errorf("Expected two clipped rows of 8 pixels, got %d", n)
	}
	if !near(r.img.RGBAAt(0, 3), colornames.Red) || !near(r.img.RGBAAt(7, 4), colornames.Red) {
		t.Errorf("Expected the stroke to reach both canvas edges")
	}
	if r.img.RGBAAt(2, 1) != (color.RGBA{}) {
		t.Errorf("Expected a zero-length stroke to draw nothing, got %v", r.img.RGBAAt(2, 1))
	}
}

func TestStrokeOverlapDoesNotCancel(t *testing.T) {
	r := newRenderer(image.Rect(0, 0, 16, 16), 2, 0)
	r.begin()
	r.stroke(0, 8, 16, 8)
	r.stroke(16, 8, 0, 8)
	r.stroke(8, 0, 8, 16)
	r.flush(colornames.Red)

	for _, p := range []image.Point{{2, 8}, {8, 8}, {8, 2}, {13, 7}} {
		if !near(r.img.RGBAAt(p.X, p.Y), colornames.Red) {
			t.Errorf("Expected %v to be covered, got %v", p, r.img.RGBAAt(p.X, p.Y))
		}
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	cache := NewCache(4)
	created := 0
	create := func() *image.RGBA {
		created++
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	key := Key{Piece: track.Flat, Direction: paint.DirectionEast}
	first := cache.GetOrCreate(key, create)
	second := cache.GetOrCreate(key, create)
	if first != second || created != 1 {
		t.Errorf("Expected one render for a repeated key, got %d", created)
	}
	if _, ok := cache.Get(Key{Piece: track.Flat, Inverted: true}); ok {
		t.Errorf("Expected a miss for a different key")
	}
}

func TestCacheEviction(t *testing.T) {
	cache := NewCache(4)
	for dir := paint.Direction(0); dir < 4; dir++ {
		cache.GetOrCreate(Key{Piece: track.Up25, Direction: dir}, func() *image.RGBA { return image.NewRGBA(image.Rect(0, 0, 1, 1)) })
	}
	cache.GetOrCreate(Key{Piece: track.Up60}, func() *image.RGBA { return image.NewRGBA(image.Rect(0, 0, 1, 1)) })

	if cache.Len() != 4 {
		t.Errorf("Expected 4 cached previews, got %d", cache.Len())
	}
	if _, ok := cache.Get(Key{Piece: track.Up25, Direction: 0}); ok {
		t.Errorf("Expected the oldest preview to be evicted")
	}
	if _, ok := cache.Get(Key{Piece: track.Up60}); !ok {
		t.Errorf("Expected the newest preview to be cached")
	}
}

func TestCacheConcurrentRenders(t *testing.T) {
	cache := NewCache(16)
	dirs := []paint.Direction{0, 1, 2, 3, 0, 1, 2, 3}
	imgs := core.ParallelMap(dirs, func(dir paint.Direction) *image.RGBA {
		key := Key{Piece: track.Flat, Direction: dir}
		return cache.GetOrCreate(key, func() *image.RGBA {
			s := paint.NewSession(paint.CoordsXY{X: 64, Y: 64})
			testRide.ApplyColours(s)
			multidim.GetTrackPaintFunction(track.Flat)(s, testRide, 0, dir, 80, track.NewElement(track.Flat))
			return Render(s, testOptions)
		})
	})

	for i := 0; i < 4; i++ {
		if imgs[i] != imgs[i+4] {
			t.Errorf("Expected direction %d to share one cached preview", i)
		}
	}
	if cache.Len() != 4 {
		t.Errorf("Expected 4 cached previews, got %d", cache.Len())
	}
}
