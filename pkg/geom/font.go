package geom

// fontStep is how much smaller the reduced size is, in points.
const fontStep = 2.0

// AdaptiveFontSize returns the point size for a group of elements.
// Below densityThreshold elements the base size is used; at or above
// it, one step smaller. The result is monotonically non-increasing in
// elementCount.
func AdaptiveFontSize(elementCount, densityThreshold int, base float64) float64 {
	if densityThreshold > 0 && elementCount >= densityThreshold {
		return base - fontStep
	}
	return base
}
