package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"

	"geoprofile/internal/chart"
	"geoprofile/internal/interp"
)

// Figure geometry in millimetres: a 12x8 inch page split 4:1 between the
// contour map and the legend panel, with a caption band along the bottom.
const (
	figWidth    = 304.8
	figHeight   = 203.2
	legendFrac  = 0.2
	captionFrac = 0.09

	// annotationMargin widens the depth range so the zone captions placed
	// just outside the field stay inside the axes.
	annotationMargin = 10
)

var fontFamily = loadFont()

func loadFont() *canvas.FontFamily {
	family := canvas.NewFontFamily("liberation")
	if err := family.LoadFont(liberationsansregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil
	}
	return family
}

// drawScene renders a scene onto a fresh canvas: the contour map through the
// gonum plot adapter, then the legend panel and caption with canvas
// primitives sharing the scene's color mapping.
func drawScene(scene chart.Scene) (*canvas.Canvas, error) {
	if scene.Field == nil {
		return nil, fmt.Errorf("%w: scene has no field", ErrRendering)
	}
	if len(scene.Levels) < 2 || len(scene.Ramp) != len(scene.Levels)-1 {
		return nil, fmt.Errorf("%w: level set and ramp are inconsistent", ErrRendering)
	}
	if fontFamily == nil {
		return nil, fmt.Errorf("%w: legend font unavailable", ErrRendering)
	}

	p, err := buildPlot(scene)
	if err != nil {
		return nil, err
	}

	c := canvas.New(figWidth, figHeight)
	gc := renderers.NewGonumPlot(c)
	size := gc.Rectangle.Size()
	mapArea := draw.Crop(gc, 0, -size.X*legendFrac, size.Y*captionFrac, 0)
	p.Draw(mapArea)

	drawLegend(c, scene)
	drawCaption(c, scene)
	return c, nil
}

// buildPlot assembles the gonum plot for the contour map: filled bands,
// contour lines at the level set, inverted depth axis, and the fixed zone
// captions.
func buildPlot(scene chart.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = scene.Title
	p.X.Label.Text = scene.XLabel
	p.Y.Label.Text = scene.ZLabel
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.X.Tick.Marker = plot.ConstantTicks(constantTicks(scene.XTicks))
	p.Y.Tick.Marker = plot.ConstantTicks(constantTicks(scene.ZTicks))

	grid := gridXYZ{scene.Field}
	heat := plotter.NewHeatMap(grid, scenePalette{scene.Ramp})
	heat.Min = scene.Levels[0]
	heat.Max = scene.Levels[len(scene.Levels)-1]

	contours := plotter.NewContour(grid, scene.Levels, scenePalette{scene.Ramp})

	labels, err := annotationLabels(scene.Annotations)
	if err != nil {
		return nil, fmt.Errorf("%w: annotations: %v", ErrRendering, err)
	}

	p.Add(heat, contours, labels)

	p.X.Min = scene.Field.Domain.XMin
	p.X.Max = scene.Field.Domain.XMax
	p.Y.Min = scene.Field.Domain.ZMin - annotationMargin
	p.Y.Max = scene.Field.Domain.ZMax + annotationMargin
	return p, nil
}

func annotationLabels(anns []chart.Annotation) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(anns))
	texts := make([]string, len(anns))
	for i, a := range anns {
		xys[i] = plotter.XY{X: a.X, Y: a.Z}
		texts[i] = a.Text
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i, a := range anns {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		if a.Rotated {
			labels.TextStyle[i].Rotation = math.Pi / 2
		}
	}
	return labels, nil
}

// drawLegend paints the discrete legend panel: the shared color strip, the
// band boundary ticks, and one anchored tick-plus-label per category.
func drawLegend(c *canvas.Canvas, scene chart.Scene) {
	ctx := canvas.NewContext(c)

	panelX := figWidth * (1 - legendFrac)
	bottom := figHeight * captionFrac
	stripX := panelX + 4
	stripW := 7.0
	stripBottom := bottom + 18
	stripTop := figHeight - 22

	titleFace := fontFamily.Face(12, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	ctx.DrawText(stripX+stripW/2, figHeight-14,
		canvas.NewTextLine(titleFace, scene.LegendTitle, canvas.Center))

	for i, col := range scene.Ramp {
		y0 := legendY(scene, scene.Levels[i], stripBottom, stripTop)
		y1 := legendY(scene, scene.Levels[i+1], stripBottom, stripTop)
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(stripX, y0, canvas.Rectangle(stripW, y1-y0))
	}

	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(0.25)
	for _, v := range scene.LegendTicks {
		y := legendY(scene, v, stripBottom, stripTop)
		ctx.DrawPath(0, 0, line(stripX+stripW, y, stripX+stripW+1.5, y))
	}

	labelFace := fontFamily.Face(7, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	for _, e := range scene.Legend {
		y := legendY(scene, e.Value, stripBottom, stripTop)
		ctx.SetStrokeWidth(0.5)
		ctx.DrawPath(0, 0, line(stripX-3, y, stripX-1, y))
		ctx.SetStrokeWidth(0.25)
		ctx.DrawPath(0, 0, line(stripX+stripW, y, stripX+stripW+2.5, y))
		ctx.DrawText(stripX+stripW+3.5, y-1,
			canvas.NewTextLine(labelFace, e.Label, canvas.Left))
	}
}

func drawCaption(c *canvas.Canvas, scene chart.Scene) {
	ctx := canvas.NewContext(c)
	face := fontFamily.Face(9.5, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	ctx.DrawText(figWidth/2, figHeight*captionFrac/2,
		canvas.NewTextLine(face, scene.Caption, canvas.Center))
}

// legendY maps a field value onto the vertical extent of the legend strip.
func legendY(scene chart.Scene, v, bottom, top float64) float64 {
	lo := scene.Levels[0]
	hi := scene.Levels[len(scene.Levels)-1]
	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return bottom + t*(top-bottom)
}

func line(x0, y0, x1, y1 float64) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}

func constantTicks(values []float64) []plot.Tick {
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return ticks
}

// gridXYZ adapts the interpolated field to gonum's grid interface. Undefined
// nodes surface as NaN, which the heat map leaves unfilled.
type gridXYZ struct {
	field *interp.Field
}

func (g gridXYZ) Dims() (int, int)   { return g.field.Grid.W, g.field.Grid.H }
func (g gridXYZ) Z(c, r int) float64 { return g.field.Value(c, r) }
func (g gridXYZ) X(c int) float64    { return g.field.X(c) }
func (g gridXYZ) Y(r int) float64    { return g.field.Depth(r) }

// scenePalette exposes a scene ramp as a gonum palette.
type scenePalette struct {
	ramp []color.RGBA
}

func (p scenePalette) Colors() []color.Color {
	colors := make([]color.Color, len(p.ramp))
	for i, c := range p.ramp {
		colors[i] = c
	}
	return colors
}
