package render

import (
	"bytes"
	"fmt"

	pdfrender "github.com/tdewolff/canvas/renderers/pdf"

	"geoprofile/internal/chart"
)

// PDFEncoder encodes scenes as a single-page PDF document.
type PDFEncoder struct{}

func (PDFEncoder) Format() string      { return "pdf" }
func (PDFEncoder) ContentType() string { return "application/pdf" }

// Encode draws the scene and serializes the canvas to PDF bytes.
func (PDFEncoder) Encode(scene chart.Scene) ([]byte, error) {
	c, err := drawScene(scene)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdfrender.Writer(&buf, c); err != nil {
		return nil, fmt.Errorf("%w: encode pdf: %v", ErrRendering, err)
	}
	return buf.Bytes(), nil
}

func init() {
	Register(PDFEncoder{})
}
