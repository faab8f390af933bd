package optics

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Interpolate maps value from the input range [inMin, inMax] onto the
// output range [outMin, outMax] with an affine map, clamping value to
// the input range first.
//
// A degenerate input range (inMax == inMin) returns outMin. That is a
// fallback meaning "no information to extrapolate from", not a
// computed answer; catalog validation keeps ranges non-degenerate so
// this never triggers for real profiles.
//
// The same function serves both conversion directions: distance→FOV
// passes distance bounds as the input range, FOV→distance swaps them.
// The map is exactly invertible only when no clamping occurred.
func Interpolate(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	v := Clamp(value, inMin, inMax)
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
