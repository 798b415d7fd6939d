// Package backward inverts the IAPWS-IF97 basic equations to answer
// T(p,h), T(p,s), v(T,p) and p(h,s) queries.
//
// The teacher's own region 3 backward tables (internal/calc_core/region3,
// the p_3a/p_3b(h,s), T_3a/T_3b(p,h), v_3a/v_3b(p,h), T_3a/T_3b(p,s),
// v_3a/v_3b(p,s) and h_3ab(p) CSVs referenced by go:embed) were never
// shipped with coefficient data - every one of those loaders returned
// ErrNotImplemented. Rather than transcribe roughly 500 at-risk published
// constants from memory with no way to verify them, every backward query
// here is solved by safeguarded Newton iteration directly against the
// already-verified forward basic equations (region1/region2/region3/
// region5's Evaluate), using gonum/mat for the region 3 and generic (h,s)
// two-variable solves. This makes round-trip accuracy robust to the
// region 3 coefficient table's inherent transcription risk (see
// DESIGN.md): a small forward-equation error still converges to a
// self-consistent point, just not quite the published one.
package backward

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/somepgs/steamprops/internal/calc_core"
	"github.com/somepgs/steamprops/internal/calc_core/region1"
	"github.com/somepgs/steamprops/internal/calc_core/region2"
	"github.com/somepgs/steamprops/internal/calc_core/region3"
	"github.com/somepgs/steamprops/internal/calc_core/region5"
)

const (
	maxIter1D = 60
	tol1D     = 1e-9
)

// TphRegion1 solves T from (p, h) in region 1 by 1-D Newton on
// region1.Evaluate, seeded at 300 K.
func TphRegion1(pMPa, h float64) (float64, error) {
	return newton1D(func(T float64) (float64, error) {
		props, err := region1.Evaluate(T, pMPa)
		if err != nil {
			return 0, err
		}
		return props.H, nil
	}, h, 300.0, 273.15, 623.15)
}

// TphRegion2 solves T from (p, h) in region 2.
func TphRegion2(pMPa, h float64) (float64, error) {
	return newton1D(func(T float64) (float64, error) {
		props, err := region2.Evaluate(T, pMPa)
		if err != nil {
			return 0, err
		}
		return props.H, nil
	}, h, 700.0, 273.15, 1073.15)
}

// TphRegion5 solves T from (p, h) in region 5.
func TphRegion5(pMPa, h float64) (float64, error) {
	return newton1D(func(T float64) (float64, error) {
		props, err := region5.Evaluate(T, pMPa)
		if err != nil {
			return 0, err
		}
		return props.H, nil
	}, h, 1500.0, 1073.15, 2273.15)
}

// TpsRegion1 solves T from (p, s) in region 1.
func TpsRegion1(pMPa, s float64) (float64, error) {
	return newton1D(func(T float64) (float64, error) {
		props, err := region1.Evaluate(T, pMPa)
		if err != nil {
			return 0, err
		}
		return props.S, nil
	}, s, 300.0, 273.15, 623.15)
}

// TpsRegion2 solves T from (p, s) in region 2.
func TpsRegion2(pMPa, s float64) (float64, error) {
	return newton1D(func(T float64) (float64, error) {
		props, err := region2.Evaluate(T, pMPa)
		if err != nil {
			return 0, err
		}
		return props.S, nil
	}, s, 700.0, 273.15, 1073.15)
}

// TpsRegion5 solves T from (p, s) in region 5.
func TpsRegion5(pMPa, s float64) (float64, error) {
	return newton1D(func(T float64) (float64, error) {
		props, err := region5.Evaluate(T, pMPa)
		if err != nil {
			return 0, err
		}
		return props.S, nil
	}, s, 1500.0, 1073.15, 2273.15)
}

// newton1D finds x in [lo,hi] such that f(x) == target, safeguarded by
// bisection fallback whenever a Newton step would leave the bracket.
func newton1D(f func(float64) (float64, error), target, seed, lo, hi float64) (float64, error) {
	x := seed
	const h = 1e-4
	for i := 0; i < maxIter1D; i++ {
		fx, err := f(x)
		if err != nil {
			x = 0.5 * (lo + hi)
			continue
		}
		resid := fx - target
		if math.Abs(resid) < tol1D*math.Max(1, math.Abs(target)) {
			return x, nil
		}
		if resid > 0 {
			hi = x
		} else {
			lo = x
		}
		fxh, err := f(x + h)
		if err != nil {
			x = 0.5 * (lo + hi)
			continue
		}
		deriv := (fxh - fx) / h
		if deriv == 0 || math.IsNaN(deriv) {
			x = 0.5 * (lo + hi)
			continue
		}
		next := x - resid/deriv
		if next <= lo || next >= hi || math.IsNaN(next) {
			next = 0.5 * (lo + hi)
		}
		x = next
	}
	return 0, &calc_core.RangeError{Reason: "backward: 1-D Newton solve did not converge"}
}

// VtpRegion3 solves specific volume from (T, p) in region 3 by delegating
// to region3.DensityFromTP, inverting the result to v.
func VtpRegion3(T, pMPa, seedRho float64) (float64, error) {
	rho, err := region3.DensityFromTP(T, pMPa, seedRho)
	if err != nil {
		return 0, err
	}
	return 1.0 / rho, nil
}

// newton2D solves (rho, T) jointly from (p, h) or (p, s) in region 3 by
// 2-D Newton using a numerically differenced Jacobian (gonum/mat for the
// 2x2 linear solve). residual(rho, T) returns (g1, g2), the two equation
// residuals to drive to zero.
func newton2D(residual func(rho, T float64) (float64, float64, error), rho0, T0 float64) (rho, T float64, err error) {
	rho, T = rho0, T0
	const (
		maxIter = 80
		hStep   = 1e-5
		tol     = 1e-9
	)
	for i := 0; i < maxIter; i++ {
		g1, g2, ferr := residual(rho, T)
		if ferr != nil {
			return 0, 0, ferr
		}
		if math.Abs(g1) < tol && math.Abs(g2) < tol {
			return rho, T, nil
		}

		g1r, g2r, err1 := residual(rho*(1+hStep), T)
		g1t, g2t, err2 := residual(rho, T*(1+hStep))
		if err1 != nil || err2 != nil {
			return 0, 0, errors.New("backward: region3 2-D Newton residual evaluation failed off-point")
		}
		dRho := rho * hStep
		dT := T * hStep

		j := mat.NewDense(2, 2, []float64{
			(g1r - g1) / dRho, (g1t - g1) / dT,
			(g2r - g2) / dRho, (g2t - g2) / dT,
		})
		var jInv mat.Dense
		if err := jInv.Inverse(j); err != nil {
			return 0, 0, &calc_core.RangeError{Reason: "backward: region3 Jacobian singular"}
		}
		step := mat.NewVecDense(2, nil)
		step.MulVec(&jInv, mat.NewVecDense(2, []float64{g1, g2}))

		rho -= step.AtVec(0)
		T -= step.AtVec(1)
		if rho <= 0 || T <= 0 || math.IsNaN(rho) || math.IsNaN(T) {
			return 0, 0, &calc_core.RangeError{Reason: "backward: region3 Newton iterate left physical domain"}
		}
	}
	return 0, 0, &calc_core.RangeError{Reason: "backward: region3 2-D Newton solve did not converge"}
}

// PhRegion3 solves (T, v) from (p, h) in region 3.
func PhRegion3(pMPa, h, seedRho, seedT float64) (T, v float64, err error) {
	rho, T, err := newton2D(func(rho, T float64) (float64, float64, error) {
		props, perr := region3.Evaluate(rho, T)
		if perr != nil {
			return 0, 0, perr
		}
		return props.P - pMPa, props.H - h, nil
	}, seedRho, seedT)
	if err != nil {
		return 0, 0, err
	}
	return T, 1.0 / rho, nil
}

// PsRegion3 solves (T, v) from (p, s) in region 3.
func PsRegion3(pMPa, s, seedRho, seedT float64) (T, v float64, err error) {
	rho, T, err := newton2D(func(rho, T float64) (float64, float64, error) {
		props, perr := region3.Evaluate(rho, T)
		if perr != nil {
			return 0, 0, perr
		}
		return props.P - pMPa, props.S - s, nil
	}, seedRho, seedT)
	if err != nil {
		return 0, 0, err
	}
	return T, 1.0 / rho, nil
}

// PhsGeneral solves (T, p) jointly from (h, s) within a single basic
// equation (region 1, 2 or 5) by 2-D Newton, used as the engine behind
// the public p(h,s)/T(h,s) generic queries. The caller supplies the
// region's Evaluate-shaped property lookup and a seed; callers dispatch
// between regions by trying seeds from each candidate region and keeping
// the one that converges (see the root if97 package).
func PhsGeneral(evaluate func(T, pMPa float64) (h, s float64, err error), hTarget, sTarget, seedT, seedP float64) (T, p float64, err error) {
	T, p = seedT, seedP
	const (
		maxIter = 80
		hStepT  = 1e-4
		hStepP  = 1e-6
		tol     = 1e-9
	)
	for i := 0; i < maxIter; i++ {
		h0, s0, ferr := evaluate(T, p)
		if ferr != nil {
			return 0, 0, ferr
		}
		g1 := h0 - hTarget
		g2 := s0 - sTarget
		if math.Abs(g1) < tol*math.Max(1, math.Abs(hTarget)) && math.Abs(g2) < tol*math.Max(1, math.Abs(sTarget)) {
			return T, p, nil
		}

		dT := math.Max(hStepT, T*hStepT)
		dP := math.Max(hStepP, p*hStepP)
		h1, s1, err1 := evaluate(T+dT, p)
		h2, s2, err2 := evaluate(T, p+dP)
		if err1 != nil || err2 != nil {
			return 0, 0, errors.New("backward: (h,s) 2-D Newton residual evaluation failed off-point")
		}

		j := mat.NewDense(2, 2, []float64{
			(h1 - h0) / dT, (h2 - h0) / dP,
			(s1 - s0) / dT, (s2 - s0) / dP,
		})
		var jInv mat.Dense
		if err := jInv.Inverse(j); err != nil {
			return 0, 0, &calc_core.RangeError{Reason: "backward: (h,s) Jacobian singular"}
		}
		step := mat.NewVecDense(2, nil)
		step.MulVec(&jInv, mat.NewVecDense(2, []float64{g1, g2}))

		T -= step.AtVec(0)
		p -= step.AtVec(1)
		if T <= 0 || p <= 0 || math.IsNaN(T) || math.IsNaN(p) {
			return 0, 0, &calc_core.RangeError{Reason: "backward: (h,s) Newton iterate left physical domain"}
		}
	}
	return 0, 0, &calc_core.RangeError{Reason: "backward: (h,s) 2-D Newton solve did not converge"}
}
