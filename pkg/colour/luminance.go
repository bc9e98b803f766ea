package colour

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0:
// CIE Y under D65, between 0 (darkest) and 1 (lightest) for in-gamut colours.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c Colour) (float64, error) {
	xyz, err := c.ToXYZ(D65)
	if err != nil {
		return 0, err
	}
	return xyz.Y, nil
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Colour) (float64, error) {
	l1, err := RelativeLuminance(c1)
	if err != nil {
		return 0, err
	}
	l2, err := RelativeLuminance(c2)
	if err != nil {
		return 0, err
	}

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (max(l1, 0) + 0.05) / (max(l2, 0) + 0.05), nil
}
