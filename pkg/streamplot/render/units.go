// Package render draws axis series as scatter plots.
package render

import "gonum.org/v1/plot/vg"

// DPI is the raster resolution used for plot images.
// vgimg canvases default to the same resolution.
const DPI = 96

// PixelsToLength converts a pixel count to a vg.Length at DPI.
// 1 inch = 72 points, and at 96 DPI 1 inch = 96 pixels.
func PixelsToLength(px int) vg.Length {
	return vg.Length(px) * vg.Inch / DPI
}
