package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozicdejan/keyence-iv-calculator/internal/catalog"
)

func newTestServer(t *testing.T, picturesDir string) http.Handler {
	t.Helper()
	return NewServer(":0", catalog.Default(), picturesDir).Mux()
}

func doJSON(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandleCameras(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodGet, "/api/cameras", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string][]string](t, rec)
	assert.Equal(t, []string{"IV3-G500CA", "IV3-G600MA"}, got["models"])
}

func TestHandleCamera(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodGet, "/api/cameras/IV3-G500CA", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[catalog.Profile](t, rec)
	assert.Equal(t, "IV3-G500CA", p.Model)
	assert.Equal(t, 1184.0, p.MaxFovX)
	assert.NotEmpty(t, p.Specs)
}

func TestHandleCamera_Unknown(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodGet, "/api/cameras/IV3-NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleEstimate(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodPost, "/api/estimate",
		EstimateRequest{Model: "IV3-G500CA", DistanceMm: 150})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[EstimateResponse](t, rec)
	assert.Equal(t, 150.0, got.DistanceMm)
	assert.InDelta(t, 61.39, got.FovXMm, 0.01)
	assert.InDelta(t, 45.56, got.FovYMm, 0.01)
	assert.InDelta(t, 0.04796, got.Horizontal.MmPerPx, 0.0001)
	assert.InDelta(t, 20.85, got.Horizontal.PxPerMm, 0.01)
}

func TestHandleEstimate_ClampsDistance(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodPost, "/api/estimate",
		EstimateRequest{Model: "IV3-G500CA", DistanceMm: 9999})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[EstimateResponse](t, rec)
	assert.Equal(t, 3000.0, got.DistanceMm)
	assert.Equal(t, 1184.0, got.FovXMm)
}

func TestHandleEstimate_BadRequests(t *testing.T) {
	mux := newTestServer(t, t.TempDir())

	rec := doJSON(t, mux, http.MethodPost, "/api/estimate",
		EstimateRequest{Model: "IV3-NOPE", DistanceMm: 100})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNegativeInputsRejected(t *testing.T) {
	mux := newTestServer(t, t.TempDir())

	cases := []struct {
		name string
		path string
		body map[string]any
	}{
		{"estimate_distance", "/api/estimate",
			map[string]any{"model": "IV3-G500CA", "distance_mm": -5}},
		{"distance_fov", "/api/distance",
			map[string]any{"model": "IV3-G500CA", "axis": "x", "target_fov_mm": -100}},
		{"target_value", "/api/target", map[string]any{
			"model":       "IV3-G500CA",
			"state":       map[string]any{"fov_x": 22, "fov_y": 16, "driving": "x"},
			"edited_axis": "x",
			"value":       -1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, mux, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "non-negative")
		})
	}
}

func TestHandleDistance(t *testing.T) {
	mux := newTestServer(t, t.TempDir())

	// Horizontal axis is the default; inverse endpoint is exact.
	rec := doJSON(t, mux, http.MethodPost, "/api/distance",
		map[string]any{"model": "IV3-G500CA", "target_fov_mm": 22})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[DistanceResponse](t, rec)
	assert.Equal(t, 50.0, got.DistanceMm)
	assert.Equal(t, 22.0, got.TargetFovMm)

	rec = doJSON(t, mux, http.MethodPost, "/api/distance",
		map[string]any{"model": "IV3-G500CA", "axis": "y", "target_fov_mm": 888})
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[DistanceResponse](t, rec)
	assert.Equal(t, 3000.0, got.DistanceMm)
}

func TestHandleDistance_InvalidAxis(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodPost, "/api/distance",
		map[string]any{"model": "IV3-G500CA", "axis": "q", "target_fov_mm": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTarget_Coupled(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodPost, "/api/target", map[string]any{
		"model":       "IV3-G500CA",
		"state":       map[string]any{"fov_x": 22, "fov_y": 16, "driving": "x"},
		"edited_axis": "x",
		"value":       400,
		"coupled":     true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[TargetResponse](t, rec)
	assert.Equal(t, 400.0, got.State.FovX)
	assert.InDelta(t, 300.0, got.State.FovY, 1e-9)
	assert.InDelta(t, 1009.64, got.DistanceXMm, 0.01)
	assert.InDelta(t, 1010.78, got.DistanceYMm, 0.01)
}

func TestHandleTarget_Independent(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodPost, "/api/target", map[string]any{
		"model":       "IV3-G500CA",
		"state":       map[string]any{"fov_x": 100, "fov_y": 75, "driving": "x"},
		"edited_axis": "y",
		"value":       200,
		"coupled":     false,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[TargetResponse](t, rec)
	assert.Equal(t, 100.0, got.State.FovX) // untouched
	assert.Equal(t, 200.0, got.State.FovY)
}

func TestHandleImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iv4-g500ca.png"), []byte("PNGDATA"), 0o644))
	mux := newTestServer(t, dir)

	rec := doJSON(t, mux, http.MethodGet, "/images/IV3-G500CA", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PNGDATA", rec.Body.String())
}

func TestHandleImage_MissingFileIs404(t *testing.T) {
	mux := newTestServer(t, t.TempDir())

	rec := doJSON(t, mux, http.MethodGet, "/images/IV3-G500CA", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/images/IV3-NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeIndex(t *testing.T) {
	mux := newTestServer(t, t.TempDir())
	rec := doJSON(t, mux, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Calculator")
}
