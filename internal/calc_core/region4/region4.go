// Package region4 implements the IAPWS-IF97 saturation-line equation
// (region 4): the closed-form quartic giving psat(T) and its inversion
// Tsat(p), valid on [273.15, 647.096] K.
//
// Grounded on the teacher's internal/calc_core/region4/region4.go; the
// go:embed CSV coefficient loader is replaced by coeffs.go (see
// DESIGN.md). Units: T in K, p in MPa (industrial).
package region4

import (
	"errors"
	"math"
)

// SaturationPressure returns psat (MPa) for temperature T (K), IAPWS-IF97
// Eq 30.
func SaturationPressure(T float64) (float64, error) {
	if T < 273.15 || T > 647.096 {
		return 0, errors.New("region4: T out of [273.15, 647.096] K")
	}
	theta := T + n[9]/(T-n[10])
	A := theta*theta + n[1]*theta + n[2]
	B := n[3]*theta*theta + n[4]*theta + n[5]
	C := n[6]*theta*theta + n[7]*theta + n[8]
	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, errors.New("region4: negative discriminant in psat")
	}
	x := 2 * C / (-B + math.Sqrt(disc))
	return math.Pow(x, 4), nil
}

// SaturationTemperature returns Tsat (K) for pressure p (MPa), IAPWS-IF97
// Eq 31.
func SaturationTemperature(p float64) (float64, error) {
	if p <= 0 {
		return 0, errors.New("region4: pressure must be positive")
	}
	beta := math.Pow(p, 0.25)
	E := beta*beta + n[3]*beta + n[6]
	F := n[1]*beta*beta + n[4]*beta + n[7]
	G := n[2]*beta*beta + n[5]*beta + n[8]
	disc := F*F - 4*E*G
	if disc < 0 {
		return 0, errors.New("region4: negative discriminant in Tsat")
	}
	D := 2 * G / (-F - math.Sqrt(disc))
	y := n[10] + D
	inner := y*y - 4*(n[9]+n[10]*D)
	if inner < 0 {
		return 0, errors.New("region4: negative inner discriminant in Tsat")
	}
	return 0.5 * (y - math.Sqrt(inner)), nil
}
