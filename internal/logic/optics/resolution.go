package optics

// Resolution describes pixel density along one axis.
type Resolution struct {
	MmPerPx float64 `json:"mm_per_px"`
	PxPerMm float64 `json:"px_per_mm"`
}

// ResolutionMetrics computes millimeters per pixel and its reciprocal
// for a FOV extent and the sensor pixel count along the same axis.
//
// A zero pixel count yields (0, 0): the sentinel for "undefined
// sensor", not a valid reading of zero resolution. A zero FOV extent
// likewise yields PxPerMm 0 instead of dividing by zero.
func ResolutionMetrics(fovMm float64, pixels int) Resolution {
	if pixels == 0 {
		return Resolution{}
	}
	mmPerPx := fovMm / float64(pixels)
	if mmPerPx == 0 {
		return Resolution{}
	}
	return Resolution{MmPerPx: mmPerPx, PxPerMm: 1 / mmPerPx}
}
