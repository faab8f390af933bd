package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rozicdejan/keyence-iv-calculator/internal/catalog"
	"github.com/rozicdejan/keyence-iv-calculator/internal/logic/optics"
	"github.com/rozicdejan/keyence-iv-calculator/internal/logic/target"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	catalog     *catalog.Catalog
	picturesDir string
	staticFS    fs.FS
}

// NewHandlers creates handlers over the given catalog. picturesDir is
// the directory camera pictures are served from; a missing picture is
// a display-only 404 and never affects numeric results.
func NewHandlers(cat *catalog.Catalog, picturesDir string, staticFS fs.FS) *Handlers {
	return &Handlers{
		catalog:     cat,
		picturesDir: picturesDir,
		staticFS:    staticFS,
	}
}

// EstimateRequest asks for the FOV and resolution at a mounting distance.
type EstimateRequest struct {
	Model      string  `json:"model"`
	DistanceMm float64 `json:"distance_mm"`
}

// EstimateResponse carries the computed FOV and per-axis resolution.
// DistanceMm is the distance actually used, after clamping to the
// camera's supported range.
type EstimateResponse struct {
	Model      string            `json:"model"`
	DistanceMm float64           `json:"distance_mm"`
	FovXMm     float64           `json:"fov_x_mm"`
	FovYMm     float64           `json:"fov_y_mm"`
	Horizontal optics.Resolution `json:"horizontal"`
	Vertical   optics.Resolution `json:"vertical"`
}

// DistanceRequest asks for the mounting distance that yields a target
// FOV on one axis. Axis defaults to horizontal.
type DistanceRequest struct {
	Model       string      `json:"model"`
	Axis        target.Axis `json:"axis"`
	TargetFovMm float64     `json:"target_fov_mm"`
}

// DistanceResponse carries the required mounting distance.
type DistanceResponse struct {
	Model       string      `json:"model"`
	Axis        target.Axis `json:"axis"`
	TargetFovMm float64     `json:"target_fov_mm"`
	DistanceMm  float64     `json:"distance_mm"`
}

// TargetRequest applies one edit to a target-FOV state. When Coupled
// is set, the other axis is derived through the sensor aspect ratio.
type TargetRequest struct {
	Model      string       `json:"model"`
	State      target.State `json:"state"`
	EditedAxis target.Axis  `json:"edited_axis"`
	Value      float64      `json:"value"`
	Coupled    bool         `json:"coupled"`
}

// TargetResponse carries the next state and the mounting distance each
// axis would require on its own.
type TargetResponse struct {
	State       target.State `json:"state"`
	DistanceXMm float64      `json:"distance_x_mm"`
	DistanceYMm float64      `json:"distance_y_mm"`
}

// HandleCameras returns the sorted list of camera models.
func (h *Handlers) HandleCameras(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string][]string{"models": h.catalog.Models()})
}

// HandleCamera returns the full profile of one camera model.
func (h *Handlers) HandleCamera(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r.PathValue("model"))
	if !ok {
		return
	}
	h.writeJSON(w, p)
}

// HandleEstimate computes FOV and resolution at a mounting distance.
func (h *Handlers) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := validateNumber("distance_mm", req.DistanceMm); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, ok := h.lookup(w, req.Model)
	if !ok {
		return
	}

	calc := optics.NewCalculator(p)
	hRes, vRes := calc.ResolutionAtDistance(req.DistanceMm)
	h.writeJSON(w, EstimateResponse{
		Model:      p.Model,
		DistanceMm: calc.ClampDistance(req.DistanceMm),
		FovXMm:     calc.EstimatedFovX(req.DistanceMm),
		FovYMm:     calc.EstimatedFovY(req.DistanceMm),
		Horizontal: hRes,
		Vertical:   vRes,
	})
}

// HandleDistance computes the mounting distance for a target FOV on
// one axis. Axes are independent; there is no cross-axis solve here.
func (h *Handlers) HandleDistance(w http.ResponseWriter, r *http.Request) {
	var req DistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateNumber("target_fov_mm", req.TargetFovMm); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, ok := h.lookup(w, req.Model)
	if !ok {
		return
	}

	calc := optics.NewCalculator(p)
	resp := DistanceResponse{Model: p.Model, Axis: req.Axis}
	switch req.Axis {
	case target.AxisY:
		resp.TargetFovMm = optics.Clamp(req.TargetFovMm, p.MinFovY, p.MaxFovY)
		resp.DistanceMm = calc.DistanceForFovY(req.TargetFovMm)
	default:
		resp.TargetFovMm = optics.Clamp(req.TargetFovMm, p.MinFovX, p.MaxFovX)
		resp.DistanceMm = calc.DistanceForFovX(req.TargetFovMm)
	}
	h.writeJSON(w, resp)
}

// HandleTarget applies one target-FOV edit and returns the next state.
func (h *Handlers) HandleTarget(w http.ResponseWriter, r *http.Request) {
	var req TargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateNumber("value", req.Value); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, ok := h.lookup(w, req.Model)
	if !ok {
		return
	}

	var next target.State
	if req.Coupled {
		next = target.ApplyEdit(p, req.State, req.EditedAxis, req.Value)
	} else {
		next = target.ApplyEditIndependent(p, req.State, req.EditedAxis, req.Value)
	}

	calc := optics.NewCalculator(p)
	h.writeJSON(w, TargetResponse{
		State:       next,
		DistanceXMm: calc.DistanceForFovX(next.FovX),
		DistanceYMm: calc.DistanceForFovY(next.FovY),
	})
}

// HandleImage serves the camera picture from the pictures directory.
func (h *Handlers) HandleImage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r.PathValue("model"))
	if !ok {
		return
	}
	if p.Image == "" {
		http.Error(w, "no picture for model", http.StatusNotFound)
		return
	}

	path := filepath.Join(h.picturesDir, filepath.Base(p.Image))
	if _, err := os.Stat(path); err != nil {
		slog.Warn("camera picture missing", "model", p.Model, "path", path)
		http.Error(w, "picture not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, path)
}

// ServeIndex serves the main HTML page (root path only).
func (h *Handlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.staticFS, "index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// lookup resolves a model name, writing a 404 on unknown models.
func (h *Handlers) lookup(w http.ResponseWriter, model string) (catalog.Profile, bool) {
	p, err := h.catalog.Lookup(model)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownModel) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return catalog.Profile{}, false
	}
	return p, true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode JSON response", "err", err)
	}
}

// validateNumber rejects NaN, infinities and negative values — a
// negative distance or FOV extent is meaningless. Upper-range handling
// is left to clamping.
func validateNumber(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s must be a non-negative finite number", name)
	}
	return nil
}
