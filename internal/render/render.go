// Package render encodes composed chart scenes into transferable bytes.
package render

import (
	"errors"

	"geoprofile/internal/chart"
)

// ErrRendering indicates a failure while drawing or encoding a scene.
var ErrRendering = errors.New("render scene")

// Encoder turns a composed scene into one concrete byte format.
type Encoder interface {
	Format() string
	ContentType() string
	Encode(scene chart.Scene) ([]byte, error)
}

var encoders = map[string]Encoder{}

// Register adds an encoder under its format name.
func Register(e Encoder) {
	if e == nil || e.Format() == "" {
		return
	}
	encoders[e.Format()] = e
}

// Encoders exposes the registry of available encoders.
func Encoders() map[string]Encoder {
	return encoders
}
