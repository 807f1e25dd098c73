package render

import (
	"bytes"
	"errors"
	"testing"

	"geoprofile/internal/chart"
	"geoprofile/internal/interp"
	"geoprofile/internal/profile"
)

func testScene(t *testing.T) chart.Scene {
	t.Helper()
	d := profile.Domain{XMin: 1, XMax: 6, ZMin: 0, ZMax: 80}
	samples := []profile.Sample{
		{X: 1, Z: 0, Value: 900},
		{X: 6, Z: 0, Value: 850},
		{X: 1, Z: 80, Value: 700},
		{X: 6, Z: 80, Value: 650},
		{X: 3.5, Z: 40, Value: 200},
	}
	field, err := interp.Interpolate(samples, d, 8)
	if err != nil {
		t.Fatalf("build field: %v", err)
	}
	return chart.Compose(field)
}

func TestEncoderRegistry(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
	}{
		{format: "pdf", contentType: "application/pdf"},
		{format: "png", contentType: "image/png"},
	}
	for _, tc := range tests {
		enc, ok := Encoders()[tc.format]
		if !ok {
			t.Fatalf("encoder %q not registered", tc.format)
		}
		if enc.ContentType() != tc.contentType {
			t.Fatalf("encoder %q content type %q, want %q",
				tc.format, enc.ContentType(), tc.contentType)
		}
	}
}

func TestDrawSceneRejectsEmptyScene(t *testing.T) {
	if _, err := drawScene(chart.Scene{}); !errors.Is(err, ErrRendering) {
		t.Fatalf("drawScene(empty) error = %v, want ErrRendering", err)
	}
}

func TestGridAdapter(t *testing.T) {
	scene := testScene(t)
	grid := gridXYZ{scene.Field}

	cols, rows := grid.Dims()
	if cols != 8 || rows != 8 {
		t.Fatalf("adapter dims %dx%d, want 8x8", cols, rows)
	}
	if grid.X(0) != 1 || grid.X(cols-1) != 6 {
		t.Fatalf("adapter x spans [%v,%v], want [1,6]", grid.X(0), grid.X(cols-1))
	}
	if grid.Y(0) != 0 || grid.Y(rows-1) != 80 {
		t.Fatalf("adapter y spans [%v,%v], want [0,80]", grid.Y(0), grid.Y(rows-1))
	}
	if grid.Z(0, 0) != scene.Field.Value(0, 0) {
		t.Fatal("adapter z does not match the field")
	}
}

func TestPDFEncodeProducesDocument(t *testing.T) {
	payload, err := PDFEncoder{}.Encode(testScene(t))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Fatalf("payload does not start with a PDF header (got % x)", payload[:4])
	}
}

func TestPNGEncodeProducesImage(t *testing.T) {
	payload, err := PNGEncoder{}.Encode(testScene(t))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("\x89PNG")) {
		t.Fatalf("payload does not start with a PNG header (got % x)", payload[:4])
	}
}
