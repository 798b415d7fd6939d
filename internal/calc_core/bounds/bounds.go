// Package bounds holds the IAPWS auxiliary boundary equations used by the
// region classifiers: the region2/region3 B23 curve, the region2 2bc split
// used by the T(p,h)/T(p,s) backward dispatch, and the region3 3ab split
// used by the region3 backward dispatch. Grounded on
// internal/calc_core/bounds/b23.go from the teacher, generalized from a
// go:embed CSV loader to compile-time coefficient literals (see DESIGN.md).
package bounds

import "math"

// B23 boundary (p, T) separating region 2 from region 3 on
// 623.15 K <= T <= 863.15 K. IAPWS-IF97 Table 1 / Eq 5.
const (
	b23n1 = 0.34805185628969e3
	b23n2 = -0.11671859879975e1
	b23n3 = 0.10192970039326e-2
	b23n4 = 0.57254459862746e3
	b23n5 = 0.13918839778870e2
)

// B23T returns the temperature (K) on the B23 boundary for pressure p
// (MPa), per IAPWS-IF97 Eq 6.
func B23T(pMPa float64) float64 {
	return b23n4 + math.Sqrt((pMPa-b23n5)/b23n3)
}

// B23P returns the pressure (MPa) on the B23 boundary for temperature T
// (K), per IAPWS-IF97 Eq 5.
func B23P(tK float64) float64 {
	theta := tK
	return b23n1 + b23n2*theta + b23n3*theta*theta
}

// Region 2 "2bc" boundary, separating subregions 2b and 2c in the
// backward T(p,h) dispatch (used at p > 4 MPa). IAPWS-IF97 Eq 20-21,
// p*=1 MPa, h*=1 kJ/kg.
const (
	p2bcN1 = 0.90584278514723e3
	p2bcN2 = -0.67955786399241
	p2bcN3 = 0.12809002730136e-3
	h2bcN4 = 0.26526571908428e4
	h2bcN5 = 0.45257578905948e1
)

// P2bc returns the pressure (MPa) on the 2b/2c boundary for enthalpy h
// (kJ/kg).
func P2bc(h float64) float64 {
	eta := h
	return p2bcN1 + p2bcN2*eta + p2bcN3*eta*eta
}

// H2bc returns the enthalpy (kJ/kg) on the 2b/2c boundary for pressure p
// (MPa), the inverse of P2bc.
func H2bc(p float64) float64 {
	return h2bcN4 + math.Sqrt((p-h2bcN5)/p2bcN3)
}

// Region3 3a/3b split boundary in (p,h) coordinates, IAPWS-IF97
// Eq 1 (Supplementary Release SR3-03), p*=1 MPa, h*=1 kJ/kg.
var h3abCoeff = [5]float64{
	0.201464004206875e4,
	0.374696550136983e1,
	-0.219921901054187e-1,
	0.870511619372199e-4,
}

// H3ab returns the enthalpy (kJ/kg) separating subregions 3a and 3b for
// pressure p (MPa).
func H3ab(p float64) float64 {
	return h3abCoeff[0] + h3abCoeff[1]*p + h3abCoeff[2]*p*p + h3abCoeff[3]*p*p*p
}
