// Package region1 implements the IAPWS-IF97 basic equation for region 1
// (liquid water, T <= 623.15 K, p >= psat(T)): the dimensionless Gibbs
// free energy gamma(pi,tau) and the properties derived from it.
//
// Grounded on the teacher's internal/calc_core/region1/region1.go, with
// the cp/cv mixup in the teacher's formula corrected (both used the cv
// expression there) and the go:embed CSV coefficient loader replaced by
// the compile-time table in coeffs.go (see DESIGN.md).
package region1

import (
	"errors"
	"math"
)

const (
	referP = 16.53    // MPa
	referT = 1386.0   // K
	referR = 0.461526 // kJ/(kg*K)
)

// Reduced computes the reduced variables (pi, tau) for region 1 from
// temperature T (K) and pressure p (MPa).
func Reduced(T, pMPa float64) (pi, tau float64) {
	return pMPa / referP, referT / T
}

// Derivatives evaluates gamma and its first/second partials at the given
// reduced variables. Terms are summed in published table order (coeffs.go)
// per spec.md §4.2's determinism rule.
func Derivatives(pi, tau float64) (g, gPi, gPiPi, gTau, gTauTau, gPiTau float64) {
	base := 7.1 - pi
	shift := tau - 1.222
	for _, c := range coeffs {
		pPow := math.Pow(base, c.I)
		tPow := math.Pow(shift, c.J)
		g += c.N * pPow * tPow
		gPi += -c.N * c.I * math.Pow(base, c.I-1) * tPow
		gPiPi += c.N * c.I * (c.I - 1) * math.Pow(base, c.I-2) * tPow
		gTau += c.N * c.J * pPow * math.Pow(shift, c.J-1)
		gTauTau += c.N * c.J * (c.J - 1) * pPow * math.Pow(shift, c.J-2)
		gPiTau += -c.N * c.I * c.J * math.Pow(base, c.I-1) * math.Pow(shift, c.J-1)
	}
	return
}

// Properties bundles the eight scalar properties IF97 derives from the
// region 1 Gibbs equation, in industrial units.
type Properties struct {
	V, Rho, U, S, H, Cv, Cp, W float64
}

// Evaluate derives the full property set at temperature T (K) and
// pressure p (MPa) using the standard IF97 identities (spec.md §4.3).
func Evaluate(T, pMPa float64) (Properties, error) {
	if T <= 0 || pMPa <= 0 {
		return Properties{}, errors.New("region1: T and p must be positive")
	}
	pi, tau := Reduced(T, pMPa)
	g, gPi, gPiPi, gTau, gTauTau, gPiTau := Derivatives(pi, tau)

	v := pi * gPi * (referR * T) / (pMPa * 1000.0)
	rho := 1.0 / v
	u := referR * T * (tau*gTau - pi*gPi)
	s := referR * (tau*gTau - g)
	h := referR * T * tau * gTau
	cp := referR * (-tau * tau * gTauTau)
	cv := referR * (-tau*tau*gTauTau + (gPi-tau*gPiTau)*(gPi-tau*gPiTau)/gPiPi)

	denom := (gPi-tau*gPiTau)*(gPi-tau*gPiTau)/(tau*tau*gTauTau) - gPiPi
	if denom <= 0 || math.IsNaN(denom) {
		return Properties{}, errors.New("region1: speed-of-sound denominator is non-positive")
	}
	w := math.Sqrt(referR * 1000.0 * T * gPi * gPi / denom)

	out := Properties{V: v, Rho: rho, U: u, S: s, H: h, Cv: cv, Cp: cp, W: w}
	if !finite(out) {
		return Properties{}, errors.New("region1: non-finite result")
	}
	return out, nil
}

func finite(p Properties) bool {
	for _, x := range []float64{p.V, p.Rho, p.U, p.S, p.H, p.Cv, p.Cp, p.W} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
