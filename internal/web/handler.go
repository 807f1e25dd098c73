package web

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"geoprofile/internal/chart"
	"geoprofile/internal/interp"
	"geoprofile/internal/profile"
	"geoprofile/internal/render"
)

const (
	downloadFilename = "earth_depth_profile.pdf"
	healthMessage    = "Earth depth profile generator is running."

	// maxBodyBytes caps how much of a request body is read for validation.
	maxBodyBytes = 1 << 20
)

// genericFailure is the only failure detail exposed to callers; internal
// error text stays in the server log.
const genericFailure = "failed to generate plot"

var errInvalidJSON = errors.New("invalid JSON data")

// Pipeline produces the chart scene for one request. Every call must be
// self-contained: its own RNG, no shared mutable state.
type Pipeline func() (chart.Scene, error)

// GenerateScene runs the full generation pipeline with the fixed default
// configuration. Each call constructs a fresh seeded RNG, so concurrent
// requests cannot interleave draws.
func GenerateScene() (chart.Scene, error) {
	cfg := profile.DefaultConfig()
	samples := profile.Generate(cfg)
	field, err := interp.Interpolate(samples, cfg.Domain, cfg.Resolution)
	if err != nil {
		return chart.Scene{}, fmt.Errorf("interpolate profile: %w", err)
	}
	return chart.Compose(field), nil
}

// Handler routes profile generation requests.
type Handler struct {
	mux      *http.ServeMux
	pipeline Pipeline
	pdf      render.Encoder
	png      render.Encoder
}

// NewHandler builds the HTTP routes around the default generation pipeline
// and the registered encoders.
func NewHandler() (*Handler, error) {
	pdfEnc, ok := render.Encoders()["pdf"]
	if !ok {
		return nil, errors.New("pdf encoder is not registered")
	}
	pngEnc, ok := render.Encoders()["png"]
	if !ok {
		return nil, errors.New("png encoder is not registered")
	}
	return newHandler(GenerateScene, pdfEnc, pngEnc), nil
}

func newHandler(pipeline Pipeline, pdfEnc, pngEnc render.Encoder) *Handler {
	h := &Handler{pipeline: pipeline, pdf: pdfEnc, png: pngEnc}
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-pdf", h.generatePDF)
	mux.HandleFunc("/generate-image", h.generateImage)
	mux.HandleFunc("/", h.health)
	h.mux = mux
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// health answers the liveness probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, healthMessage)
}

// generatePDF returns the chart as a downloadable PDF attachment.
func (h *Handler) generatePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := readRequest(r); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON.Error())
		return
	}

	payload, err := h.encode(h.pdf)
	if err != nil {
		log.Printf("generate pdf: %v", err)
		writeError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	w.Header().Set("Content-Type", h.pdf.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", downloadFilename))
	if _, err := w.Write(payload); err != nil {
		log.Printf("write pdf response: %v", err)
	}
}

// generateImage returns the chart as a base64 PNG wrapped in JSON.
func (h *Handler) generateImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := readRequest(r); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON.Error())
		return
	}

	payload, err := h.encode(h.png)
	if err != nil {
		log.Printf("generate image: %v", err)
		writeError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"image": base64.StdEncoding.EncodeToString(payload),
	})
}

// encode runs the pipeline and hands the scene to one encoder.
func (h *Handler) encode(enc render.Encoder) ([]byte, error) {
	scene, err := h.pipeline()
	if err != nil {
		return nil, err
	}
	return enc.Encode(scene)
}

// readRequest validates the optional JSON body. An empty body is accepted;
// anything present must be well-formed JSON. The content is otherwise
// ignored, matching the generation contract.
func readRequest(r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if !json.Valid(body) {
		return errInvalidJSON
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write json response: %v", err)
	}
}
