// Package region3 implements the IAPWS-IF97 basic equation for region 3
// (near-critical liquid/vapor): the dimensionless Helmholtz free energy
// phi(delta, tau) = n1*ln(delta) + sum n_i delta^I_i tau^J_i, and the
// properties derived from it.
//
// Unlike regions 1, 2 and 5, region 3 is explicit in density rather than
// pressure: Evaluate takes (T, rho) directly. DensityFromTP additionally
// solves for the density at a given (T, p) by Newton iteration on the
// pressure equation, since the teacher's own region 3 code never shipped
// the backward v(T,p) coefficient tables (see DESIGN.md).
//
// Grounded on the teacher's internal/calc_core/region3/region3.go for
// package shape and the bounds sub-package for the B23 boundary, with
// the go:embed CSV loaders replaced by coeffs.go and the backward tables
// replaced by Newton iteration against this forward equation.
package region3

import (
	"errors"
	"math"
)

const (
	referT   = 647.096  // K, critical temperature
	referR   = 0.461526 // kJ/(kg*K)
	referRho = 322.0    // kg/m^3, critical density
)

// Reduced computes the reduced variables (delta, tau) for region 3 from
// density rho (kg/m^3) and temperature T (K).
func Reduced(rho, T float64) (delta, tau float64) {
	return rho / referRho, referT / T
}

// Derivatives evaluates phi and its first/second partials with respect
// to delta and tau at the given reduced variables.
func Derivatives(delta, tau float64) (phi, phiDelta, phiDeltaDelta, phiTau, phiTauTau, phiDeltaTau float64) {
	phi = n1 * math.Log(delta)
	phiDelta = n1 / delta
	phiDeltaDelta = -n1 / (delta * delta)

	for _, c := range coeffs {
		dI := math.Pow(delta, c.I)
		dIm1 := 0.0
		dIm2 := 0.0
		if c.I != 0 {
			dIm1 = math.Pow(delta, c.I-1)
		}
		if c.I != 0 && c.I != 1 {
			dIm2 = math.Pow(delta, c.I-2)
		}
		tJ := math.Pow(tau, c.J)
		tJm1 := 0.0
		tJm2 := 0.0
		if c.J != 0 {
			tJm1 = math.Pow(tau, c.J-1)
		}
		if c.J != 0 && c.J != 1 {
			tJm2 = math.Pow(tau, c.J-2)
		}

		phi += c.N * dI * tJ
		phiDelta += c.N * c.I * dIm1 * tJ
		phiDeltaDelta += c.N * c.I * (c.I - 1) * dIm2 * tJ
		phiTau += c.N * c.J * dI * tJm1
		phiTauTau += c.N * c.J * (c.J - 1) * dI * tJm2
		phiDeltaTau += c.N * c.I * c.J * dIm1 * tJm1
	}
	return
}

// Properties bundles the region 3 property set. Pressure is included
// because, unlike the other basic equations, region 3's natural output
// variable is p rather than v.
type Properties struct {
	P, U, S, H, Cv, Cp, W float64
}

// Evaluate derives the full region 3 property set at density rho
// (kg/m^3) and temperature T (K).
func Evaluate(rho, T float64) (Properties, error) {
	if rho <= 0 || T <= 0 {
		return Properties{}, errors.New("region3: rho and T must be positive")
	}
	delta, tau := Reduced(rho, T)
	phi, phiDelta, phiDeltaDelta, phiTau, phiTauTau, phiDeltaTau := Derivatives(delta, tau)

	p := rho * referR * T * delta * phiDelta / 1000.0 // MPa
	u := referR * T * tau * phiTau
	s := referR * (tau*phiTau - phi)
	h := referR * T * (tau*phiTau + delta*phiDelta)
	cv := referR * (-tau * tau * phiTauTau)

	cross := delta*phiDelta - delta*tau*phiDeltaTau
	denom2 := 2*delta*phiDelta + delta*delta*phiDeltaDelta
	if denom2 <= 0 {
		return Properties{}, errors.New("region3: non-positive compressibility term")
	}
	cp := cv + referR*(cross*cross)/denom2

	wArg := referR * 1000.0 * T * (denom2 - (cross*cross)/(tau*tau*phiTauTau))
	if wArg <= 0 || math.IsNaN(wArg) {
		return Properties{}, errors.New("region3: speed-of-sound argument non-positive")
	}
	w := math.Sqrt(wArg)

	out := Properties{P: p, U: u, S: s, H: h, Cv: cv, Cp: cp, W: w}
	if !finite(out) {
		return Properties{}, errors.New("region3: non-finite result")
	}
	return out, nil
}

func finite(p Properties) bool {
	for _, x := range []float64{p.P, p.U, p.S, p.H, p.Cv, p.Cp, p.W} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// PressureAt is a thin helper returning just p(rho,T), used by density
// solvers that need the pressure residual without the full property set.
func PressureAt(rho, T float64) (float64, error) {
	if rho <= 0 || T <= 0 {
		return 0, errors.New("region3: rho and T must be positive")
	}
	delta, tau := Reduced(rho, T)
	_, phiDelta, _, _, _, _ := Derivatives(delta, tau)
	return rho * referR * T * delta * phiDelta / 1000.0, nil
}

// DensityFromTP solves rho from (T, p) by safeguarded Newton iteration
// on PressureAt, starting from seed (kg/m^3, use <= 0 to request an
// ideal-gas seed). The region 3 basic equation is explicit in density,
// not pressure, so every (T,p) query in region 3 - including plain
// v(T,p) - goes through this solve; callers near the critical region
// should supply a closer seed for faster, safer convergence.
func DensityFromTP(T, pMPa, seed float64) (float64, error) {
	if seed <= 0 {
		seed = pMPa * 1000.0 / (referR * T)
	}
	rho := seed
	const maxIter = 100
	const tol = 1e-10
	lo, hi := 1.0, 800.0
	for i := 0; i < maxIter; i++ {
		delta, tau := Reduced(rho, T)
		_, phiDelta, phiDeltaDelta, _, _, _ := Derivatives(delta, tau)
		p := rho * referR * T * delta * phiDelta / 1000.0
		resid := p - pMPa
		if math.Abs(resid) < tol*math.Max(1, pMPa) {
			return rho, nil
		}
		dpdrho := referR * T * (2*delta*phiDelta + delta*delta*phiDeltaDelta) / 1000.0
		if resid > 0 {
			hi = rho
		} else {
			lo = rho
		}
		if dpdrho <= 0 || math.IsNaN(dpdrho) {
			rho = 0.5 * (lo + hi)
			continue
		}
		next := rho - resid/dpdrho
		if next <= lo || next >= hi || math.IsNaN(next) {
			next = 0.5 * (lo + hi)
		}
		rho = next
	}
	return 0, errors.New("region3: density solve did not converge")
}
