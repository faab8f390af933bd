package optics

import (
	"github.com/rozicdejan/keyence-iv-calculator/internal/catalog"
)

// Calculator converts between mounting distance and field of view for
// one camera profile, and derives pixel resolution. All methods are
// pure; profiles are validated when the catalog is loaded.
type Calculator struct {
	p catalog.Profile
}

// NewCalculator binds a calculator to a camera profile.
func NewCalculator(p catalog.Profile) *Calculator {
	return &Calculator{p: p}
}

// Profile returns the bound camera profile.
func (c *Calculator) Profile() catalog.Profile {
	return c.p
}

// ClampDistance limits a mounting distance to the supported range.
func (c *Calculator) ClampDistance(distMm float64) float64 {
	return Clamp(distMm, c.p.MinDist, c.p.MaxDist)
}

// EstimatedFovX returns the horizontal FOV in mm at the given mounting
// distance. Distances outside the supported range are clamped.
func (c *Calculator) EstimatedFovX(distMm float64) float64 {
	return Interpolate(distMm, c.p.MinDist, c.p.MaxDist, c.p.MinFovX, c.p.MaxFovX)
}

// EstimatedFovY returns the vertical FOV in mm at the given mounting
// distance. Distances outside the supported range are clamped.
func (c *Calculator) EstimatedFovY(distMm float64) float64 {
	return Interpolate(distMm, c.p.MinDist, c.p.MaxDist, c.p.MinFovY, c.p.MaxFovY)
}

// DistanceForFovX returns the mounting distance in mm that yields the
// given horizontal FOV. Target FOVs outside the achievable range are
// clamped, so the result is not an exact inverse once clamping occurs.
func (c *Calculator) DistanceForFovX(fovMm float64) float64 {
	return Interpolate(fovMm, c.p.MinFovX, c.p.MaxFovX, c.p.MinDist, c.p.MaxDist)
}

// DistanceForFovY returns the mounting distance in mm that yields the
// given vertical FOV.
func (c *Calculator) DistanceForFovY(fovMm float64) float64 {
	return Interpolate(fovMm, c.p.MinFovY, c.p.MaxFovY, c.p.MinDist, c.p.MaxDist)
}

// ResolutionAtDistance returns the horizontal and vertical pixel
// resolution at the given mounting distance.
func (c *Calculator) ResolutionAtDistance(distMm float64) (h, v Resolution) {
	h = ResolutionMetrics(c.EstimatedFovX(distMm), c.p.ResolutionH)
	v = ResolutionMetrics(c.EstimatedFovY(distMm), c.p.ResolutionV)
	return h, v
}

// AspectRatio returns the sensor pixel aspect ratio (H over V).
func (c *Calculator) AspectRatio() float64 {
	return c.p.AspectRatio()
}
