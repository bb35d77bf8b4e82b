package layout

import (
	"image"
	"math"
)

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Square returns the sizePx×sizePx rectangle anchored at the origin.
// Negative sizes yield an empty rectangle.
func Square(sizePx int) image.Rectangle {
	if sizePx < 0 {
		sizePx = 0
	}
	return image.Rect(0, 0, sizePx, sizePx)
}

// FitSquare returns the largest square that fits into rect, anchored at the top-left.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+size, rect.Min.Y+size)
}

// Point is a position in canvas coordinates where integer values name pixel centres.
type Point struct {
	X, Y float64
}

// Scale maps a fractional position (0..1 on each axis) onto a sizePx canvas.
func Scale(sizePx int, fx, fy float64) Point {
	return Point{X: float64(sizePx) * fx, Y: float64(sizePx) * fy}
}

// RoundedRect is a rectangle whose corners are quarter circles of Radius.
type RoundedRect struct {
	Rect   image.Rectangle
	Radius float64
}

// Contains reports whether (x, y) lies inside the shape. Coordinates are
// continuous: the pixel (px, py) spans [px, px+1) on each axis.
func (rr RoundedRect) Contains(x, y float64) bool {
	rect := Normalize(rr.Rect)
	minX, minY := float64(rect.Min.X), float64(rect.Min.Y)
	maxX, maxY := float64(rect.Max.X), float64(rect.Max.Y)
	if x < minX || x > maxX || y < minY || y > maxY {
		return false
	}

	radius := rr.Radius
	if limit := math.Min(maxX-minX, maxY-minY) / 2; radius > limit {
		radius = limit
	}
	if radius <= 0 {
		return true
	}

	// Nearest corner centre; points between the centres on either axis are
	// inside the straight edges.
	cx := math.Max(minX+radius, math.Min(x, maxX-radius))
	cy := math.Max(minY+radius, math.Min(y, maxY-radius))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}
