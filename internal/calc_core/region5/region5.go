// Package region5 implements the IAPWS-IF97 basic equation for region 5
// (high-temperature dry gas, 1073.15 K to 2273.15 K, p <= 50 MPa):
// gamma = gamma0(ideal) + gammaR(residual), and the properties derived
// from it.
//
// Grounded on the teacher's internal/calc_core/region5/region5.go, with
// the cp/cv mixup corrected (both used the cv expression there) and the
// go:embed CSV coefficient loaders replaced by coeffs.go (see DESIGN.md).
// The residual part uses tau unshifted, unlike region 2's tau-0.5.
package region5

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	referP = 1.0      // MPa
	referT = 1000.0   // K
	referR = 0.461526 // kJ/(kg*K)

	tMin = 1073.15
	tMax = 2273.15
	pMax = 50.0
)

// Reduced computes the reduced variables (pi, tau) for region 5 from
// temperature T (K) and pressure p (MPa).
func Reduced(T, pMPa float64) (pi, tau float64) {
	return pMPa / referP, referT / T
}

// Derivatives evaluates gamma = gamma0 + gammaR and its first/second
// partials at the given reduced variables.
func Derivatives(pi, tau float64) (g, gPi, gPiPi, gTau, gTauTau, gPiTau float64) {
	idealTerms := make([]float64, len(idealCoeffs))
	idealTauTerms := make([]float64, len(idealCoeffs))
	idealTauTauTerms := make([]float64, len(idealCoeffs))
	for i, c := range idealCoeffs {
		idealTerms[i] = c.N * math.Pow(tau, c.J)
		idealTauTerms[i] = c.N * c.J * math.Pow(tau, c.J-1)
		idealTauTauTerms[i] = c.N * c.J * (c.J - 1) * math.Pow(tau, c.J-2)
	}
	g0 := math.Log(pi) + floats.Sum(idealTerms)
	g0Tau := floats.Sum(idealTauTerms)
	g0TauTau := floats.Sum(idealTauTauTerms)

	g0Pi := 1.0 / pi
	g0PiPi := -1.0 / (pi * pi)

	var gr, grPi, grPiPi, grTau, grTauTau, grPiTau float64
	shift := tau
	for _, r := range residualCoeffs {
		piPow := math.Pow(pi, r.I)
		tPow := math.Pow(shift, r.J)
		gr += r.N * piPow * tPow
		grPi += r.N * r.I * math.Pow(pi, r.I-1) * tPow
		grPiPi += r.N * r.I * (r.I - 1) * math.Pow(pi, r.I-2) * tPow
		grTau += r.N * r.J * piPow * math.Pow(shift, r.J-1)
		grTauTau += r.N * r.J * (r.J - 1) * piPow * math.Pow(shift, r.J-2)
		grPiTau += r.N * r.I * r.J * math.Pow(pi, r.I-1) * math.Pow(shift, r.J-1)
	}

	g = g0 + gr
	gPi = g0Pi + grPi
	gPiPi = g0PiPi + grPiPi
	gTau = g0Tau + grTau
	gTauTau = g0TauTau + grTauTau
	gPiTau = grPiTau
	return
}

// Properties bundles the eight scalar properties IF97 derives from the
// region 5 Gibbs equation, in industrial units.
type Properties struct {
	V, Rho, U, S, H, Cv, Cp, W float64
}

// Evaluate derives the full property set at temperature T (K) and
// pressure p (MPa). Applicability is restricted to region 5's own
// validity range; callers outside it should dispatch elsewhere.
func Evaluate(T, pMPa float64) (Properties, error) {
	if T < tMin || T > tMax {
		return Properties{}, errors.New("region5: T out of [1073.15, 2273.15] K")
	}
	if pMPa <= 0 || pMPa > pMax {
		return Properties{}, errors.New("region5: p out of (0, 50] MPa")
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
		return Properties{}, errors.New("region5: speed-of-sound denominator is non-positive")
	}
	w := math.Sqrt(referR * 1000.0 * T * gPi * gPi / denom)

	out := Properties{V: v, Rho: rho, U: u, S: s, H: h, Cv: cv, Cp: cp, W: w}
	if !finite(out) {
		return Properties{}, errors.New("region5: non-finite result")
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
