// Package classify dispatches a state point to the IAPWS-IF97 region
// that governs it, for each of the three native input pairs the standard
// defines regions over: (T,p), (p,h) and (p,s). It replaces the
// teacher's dropped RegionFromTP/RegionFactory (calc_core/interfaces.go)
// with a version generalized to all three dispatch pairs and to region
// 3's 3a/3b and region 2's 2a/2b/2c sub-splits.
package classify

import (
	"github.com/somepgs/steamprops/internal/calc_core"
	"github.com/somepgs/steamprops/internal/calc_core/bounds"
	"github.com/somepgs/steamprops/internal/calc_core/region4"
)

// Sub2 names the region 2 backward-equation sub-region (2a, 2b or 2c),
// used only by the T(p,h)/T(p,s) backward dispatch; the region 2 basic
// equation itself has no sub-split.
type Sub2 int

const (
	Sub2None Sub2 = iota
	Sub2A
	Sub2B
	Sub2C
)

// Sub3 names the region 3 sub-region (3a liquid-like or 3b vapor-like),
// used by both the region 3 backward equations and by density-solve
// seeding.
type Sub3 int

const (
	Sub3None Sub3 = iota
	Sub3A
	Sub3B
)

// TP classifies a (T, p) point into basic-equation region 1, 2, 3 or 5.
// Region 4 is never returned: a point exactly on the saturation curve
// (p == psat(T)) is classified as region 1; callers supplying an exact
// two-phase point should use region4 directly rather than this
// classifier.
func TP(T, pMPa float64) (calc_core.Region, error) {
	switch {
	case T < 273.15:
		return calc_core.RegionUnknown, &calc_core.RangeError{Reason: "T below 273.15 K"}
	case T <= 623.15:
		psat, err := region4.SaturationPressure(T)
		if err != nil {
			return calc_core.RegionUnknown, err
		}
		if pMPa >= psat {
			return calc_core.Region1, nil
		}
		return calc_core.Region2, nil
	case T <= 863.15:
		if pMPa > bounds.B23P(T) {
			return calc_core.Region3, nil
		}
		return calc_core.Region2, nil
	case T <= 1073.15:
		return calc_core.Region2, nil
	case T <= 2273.15:
		return calc_core.Region5, nil
	default:
		return calc_core.RegionUnknown, &calc_core.RangeError{Reason: "T above 2273.15 K"}
	}
}

// Sub2FromPH returns the region 2 backward sub-region for a (p,h) point,
// per IAPWS-IF97's T(p,h) dispatch: 2a below 4 MPa, 2b/2c above split by
// the 2bc boundary in h.
func Sub2FromPH(pMPa, h float64) Sub2 {
	if pMPa <= 4.0 {
		return Sub2A
	}
	if h >= bounds.H2bc(pMPa) {
		return Sub2B
	}
	return Sub2C
}

// Sub2FromPS mirrors Sub2FromPH for the T(p,s) dispatch, which splits on
// entropy directly rather than via the 2bc boundary.
func Sub2FromPS(pMPa, s float64) Sub2 {
	switch {
	case pMPa <= 4.0:
		return Sub2A
	case s >= 5.85:
		return Sub2B
	default:
		return Sub2C
	}
}

// Sub3FromPH returns the region 3 sub-region for a (p,h) point, split by
// the h3ab boundary (IAPWS SR3-03).
func Sub3FromPH(pMPa, h float64) Sub3 {
	if h <= bounds.H3ab(pMPa) {
		return Sub3A
	}
	return Sub3B
}

// Sub3FromPS returns the region 3 sub-region for a (p,s) point, split at
// the critical entropy.
func Sub3FromPS(s float64) Sub3 {
	const sc = 4.41202148223476 // kJ/(kg*K), entropy at the critical point
	if s <= sc {
		return Sub3A
	}
	return Sub3B
}
