// Package chart composes the renderable scene for a depth profile chart.
// Composition is pure: the same field always yields the same scene, and no
// drawing or I/O happens here.
package chart

import (
	"image/color"

	"geoprofile/internal/interp"
	"geoprofile/internal/profile"
)

// LevelCount is the number of contour level values spanning the field range,
// giving LevelCount-1 filled bands.
const LevelCount = 15

// Annotation is a fixed text caption placed at domain coordinates. Positions
// may sit just outside the depth range so captions frame the map.
type Annotation struct {
	X, Z    float64
	Text    string
	Rotated bool
}

// LegendEntry anchors a category label at a representative field value on the
// shared color scale.
type LegendEntry struct {
	Label string
	Value float64
}

// Scene is the immutable description of one chart: the interpolated field
// plus every plotting directive the encoders need. It carries no drawing
// surface and is consumed exactly once per request.
type Scene struct {
	Field *interp.Field

	Title  string
	XLabel string
	ZLabel string

	// Levels are the ascending contour values; Ramp maps each band between
	// consecutive levels to its fill color.
	Levels []float64
	Ramp   []color.RGBA

	XTicks []float64
	ZTicks []float64

	Annotations []Annotation

	LegendTitle string
	Legend      []LegendEntry
	// LegendTicks mark the band boundaries on the legend color strip.
	LegendTicks []float64

	Caption string
}

// Compose builds the scene for an interpolated field using the fixed chart
// configuration.
func Compose(field *interp.Field) Scene {
	return Scene{
		Field:       field,
		Title:       "Earth Depth Profile",
		XLabel:      "Surface-X (m/f)",
		ZLabel:      "Depth-Z (m/f)",
		Levels:      Levels(),
		Ramp:        Ramp(LevelCount - 1),
		XTicks:      seq(1, 6, 1),
		ZTicks:      seq(0, 80, 10),
		Annotations: annotations(),
		LegendTitle: "Legend",
		Legend:      legendEntries(),
		LegendTicks: []float64{55, 71, 93, 121, 157, 205, 267, 348, 453, 590, 768, 1000},
		Caption: "The Earth Depth Profile describes the spread of Soft rock, " +
			"Hard rock and the Water Bearing Porous rock information.",
	}
}

// Levels returns the fixed ascending level set spanning the clamped field
// range.
func Levels() []float64 {
	levels := make([]float64, LevelCount)
	span := float64(profile.ValueMax - profile.ValueMin)
	for i := range levels {
		levels[i] = profile.ValueMin + span*float64(i)/float64(LevelCount-1)
	}
	return levels
}

// Ramp returns the fixed n-band color ramp for the contour fill: a
// piecewise-linear blue-to-red spectrum sampled at band midpoints, low values
// cold and high values hot.
func Ramp(n int) []color.RGBA {
	ramp := make([]color.RGBA, n)
	for i := range ramp {
		ramp[i] = spectrum((float64(i) + 0.5) / float64(n))
	}
	return ramp
}

// spectrum maps t in [0,1] onto the blue-cyan-yellow-red ramp.
func spectrum(t float64) color.RGBA {
	r := channel(minf(4*t-1.5, -4*t+4.5))
	g := channel(minf(4*t-0.5, -4*t+3.5))
	b := channel(minf(4*t+0.5, -4*t+2.5))
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func channel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

func annotations() []Annotation {
	return []Annotation{
		{X: 2.0, Z: -5, Text: "Soft Rock\nAnd Dry Sand"},
		{X: 5.0, Z: -5, Text: "Wet Nature"},
		{X: 0.7, Z: 20, Text: "More Hard", Rotated: true},
		{X: 2.0, Z: 85, Text: "Most Hard\nStructure"},
		{X: 3.5, Z: 85, Text: "Wet Condition"},
		{X: 5.0, Z: 85, Text: "Water Bearing Rock"},
	}
}

func legendEntries() []LegendEntry {
	return []LegendEntry{
		{Label: "Hard Rock", Value: 900},
		{Label: "Medium Hard Rock", Value: 750},
		{Label: "Less Medium Rock, Below Soft Rock", Value: 650},
		{Label: "Rock, Soil and Wet Nature", Value: 350},
		{Label: "Less Dense Porous Rock", Value: 190},
		{Label: "Little More Dense Porous Rock", Value: 130},
		{Label: "More Dense Porous Rock (Water Bearing Rock Layer)", Value: 85},
	}
}

func seq(lo, hi, step float64) []float64 {
	var out []float64
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	return out
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
