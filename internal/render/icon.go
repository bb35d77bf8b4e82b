package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/golang/freetype/raster"
	"github.com/rook-computer/checkicons/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSize is returned when an icon size is not a positive pixel count.
var ErrInvalidSize = errors.New("icon size must be positive")

// IconGeometry holds the size-dependent drawing parameters of one icon.
type IconGeometry struct {
	Size        int
	Radius      int
	StrokeWidth int
	Check       [3]layout.Point
}

// Geometry derives the drawing parameters for a size×size icon.
func Geometry(size int) IconGeometry {
	g := IconGeometry{
		Size:        size,
		Radius:      size / 5,
		StrokeWidth: max(2, size/16),
	}
	for i, f := range checkFractions {
		g.Check[i] = layout.Scale(size, f[0], f[1])
	}
	return g
}

// DrawIcon renders the checkmark icon onto a fresh transparent canvas.
func DrawIcon(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("draw icon %d: %w", size, ErrInvalidSize)
	}
	g := Geometry(size)
	canvas := image.NewRGBA(layout.Square(size))
	fillRoundedRect(canvas, layout.RoundedRect{Rect: layout.FitSquare(canvas.Bounds()), Radius: float64(g.Radius)}, Background)
	strokePolyline(canvas, g.Check[:], g.StrokeWidth, Foreground)
	return canvas, nil
}

// fillRoundedRect paints every pixel whose centre falls inside shape.
// Coverage is binary so the corners stay fully transparent.
func fillRoundedRect(dst *image.RGBA, shape layout.RoundedRect, c color.Color) {
	mask := shapeMask{shape: shape}
	xdraw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, dst.Bounds().Min, xdraw.Over)
}

type shapeMask struct {
	shape layout.RoundedRect
}

func (m shapeMask) ColorModel() color.Model { return color.AlphaModel }
func (m shapeMask) Bounds() image.Rectangle { return layout.Normalize(m.shape.Rect) }
func (m shapeMask) At(x, y int) color.Color {
	if m.shape.Contains(float64(x)+0.5, float64(y)+0.5) {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

// strokePolyline draws connected segments through pts with butt ends and a
// bevel at each interior vertex. Pixels at least half covered by the stroke
// take c outright; the rest are left untouched.
func strokePolyline(dst *image.RGBA, pts []layout.Point, widthPx int, c color.Color) {
	if len(pts) < 2 || widthPx <= 0 {
		return
	}
	var path raster.Path
	path.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		path.Add1(toFixed(p))
	}

	b := dst.Bounds()
	r := raster.NewRasterizer(b.Dx(), b.Dy())
	r.UseNonZeroWinding = true
	raster.Stroke(r, path, fixed.I(widthPx), raster.ButtCapper, raster.BevelJoiner)

	r.Rasterize(&thresholdPainter{dst: dst, c: color.RGBAModel.Convert(c).(color.RGBA)})
}

// thresholdPainter is a raster.Painter that paints without blending.
type thresholdPainter struct {
	dst *image.RGBA
	c   color.RGBA
}

func (p *thresholdPainter) Paint(ss []raster.Span, done bool) {
	b := p.dst.Bounds()
	for _, s := range ss {
		if s.Alpha < 0x8000 {
			continue
		}
		y := b.Min.Y + s.Y
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		x0 := max(b.Min.X+s.X0, b.Min.X)
		x1 := min(b.Min.X+s.X1, b.Max.X)
		for x := x0; x < x1; x++ {
			p.dst.SetRGBA(x, y, p.c)
		}
	}
}

// toFixed moves a pixel-centre coordinate onto the rasterizer grid, where
// pixel (x, y) spans [x, x+1).
func toFixed(p layout.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round((p.X + 0.5) * 64)),
		Y: fixed.Int26_6(math.Round((p.Y + 0.5) * 64)),
	}
}

// WriteIcon renders a size×size icon and stores it as dir/icon{size}.png,
// replacing any existing file. It returns the path written.
func WriteIcon(dir string, size int) (string, error) {
	img, err := DrawIcon(size)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(size))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
