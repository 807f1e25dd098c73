package render

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"geoprofile/internal/chart"
)

// pngResolution is the raster density in dots per millimetre (4 dpmm is
// roughly 100 DPI).
const pngResolution = 4.0

// PNGEncoder rasterizes scenes to PNG bytes.
type PNGEncoder struct{}

func (PNGEncoder) Format() string      { return "png" }
func (PNGEncoder) ContentType() string { return "image/png" }

// Encode draws the scene and rasterizes the canvas at the fixed resolution.
func (PNGEncoder) Encode(scene chart.Scene) ([]byte, error) {
	c, err := drawScene(scene)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	write := rasterizer.PNGWriter(canvas.DPMM(pngResolution))
	if err := write(&buf, c); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrRendering, err)
	}
	return buf.Bytes(), nil
}

func init() {
	Register(PNGEncoder{})
}
