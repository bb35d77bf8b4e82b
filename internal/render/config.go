package render

import (
	"fmt"
	"image/color"
)

// Icon palette.
var (
	// Background fills the rounded square, #667eea.
	Background = color.RGBA{R: 102, G: 126, B: 234, A: 0xFF}
	// Foreground strokes the checkmark.
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Sizes lists the icon edge lengths written by a full run, in pixels.
var Sizes = []int{16, 48, 128}

// Checkmark vertices as fractions of the icon size.
var checkFractions = [3][2]float64{
	{0.3, 0.5},
	{0.45, 0.65},
	{0.7, 0.35},
}

// FileName returns the output file name for an icon of the given size.
func FileName(size int) string { return fmt.Sprintf("icon%d.png", size) }
