// Package if97 implements the IAPWS Industrial Formulation 1997 for the
// thermodynamic properties of water and steam: region dispatch across
// the five basic regions, the basic equations themselves, the backward
// (inverse) equations for T(p,h), T(p,s), v(T,p) and p(h,s), and the
// associated transport-property correlations for viscosity, thermal
// conductivity and surface tension.
//
// A Table is the entry point:
//
//	tbl := if97.New()
//	props, region, err := tbl.Properties(300, 3) // T in K, p in MPa
//
// Grounded on the teacher's internal/steamprops.Calculator for the
// public dispatch shape (single entry point fanning out by region), with
// the dispatch itself rebuilt on the classify/backward packages now that
// the teacher's calc_core.RegionFromTP and embed-backed backward tables
// are gone (see DESIGN.md).
package if97

import (
	"math"

	"github.com/somepgs/steamprops/internal/calc_core"
	"github.com/somepgs/steamprops/internal/calc_core/backward"
	"github.com/somepgs/steamprops/internal/calc_core/bounds"
	"github.com/somepgs/steamprops/internal/calc_core/cache"
	"github.com/somepgs/steamprops/internal/calc_core/classify"
	"github.com/somepgs/steamprops/internal/calc_core/region1"
	"github.com/somepgs/steamprops/internal/calc_core/region2"
	"github.com/somepgs/steamprops/internal/calc_core/region3"
	"github.com/somepgs/steamprops/internal/calc_core/region4"
	"github.com/somepgs/steamprops/internal/calc_core/region5"
	"github.com/somepgs/steamprops/internal/calc_core/transport"
	"github.com/somepgs/steamprops/internal/calc_core/validation"
)

// Region identifies which of the five IF97 basic regions governed a
// result.
type Region = calc_core.Region

const (
	Region1 = calc_core.Region1
	Region2 = calc_core.Region2
	Region3 = calc_core.Region3
	Region4 = calc_core.Region4
	Region5 = calc_core.Region5
)

// Properties is the full thermodynamic property set IF97 derives from a
// region's basic equation, reported in the units a Table was
// constructed with (Industrial by default: MPa, kJ/kg, kJ/(kg*K), m/s).
type Properties struct {
	SpecificVolume                float64
	Density                       float64
	SpecificInternalEnergy        float64
	SpecificEntropy               float64
	SpecificEnthalpy              float64
	SpecificIsochoricHeatCapacity float64
	SpecificIsobaricHeatCapacity  float64
	SpeedOfSound                  float64
}

func fromCalcCore(p calc_core.Properties, units Units) Properties {
	out := Properties{
		SpecificVolume:                p.SpecificVolume,
		Density:                       p.Density,
		SpecificInternalEnergy:        p.SpecificInternalEnergy,
		SpecificEntropy:               p.SpecificEntropy,
		SpecificEnthalpy:              p.SpecificEnthalpy,
		SpecificIsochoricHeatCapacity: p.SpecificIsochoricHeatCapacity,
		SpecificIsobaricHeatCapacity:  p.SpecificIsobaricHeatCapacity,
		SpeedOfSound:                  p.SpeedOfSound,
	}
	if units == SI {
		out.SpecificInternalEnergy *= 1000
		out.SpecificEntropy *= 1000
		out.SpecificEnthalpy *= 1000
		out.SpecificIsochoricHeatCapacity *= 1000
		out.SpecificIsobaricHeatCapacity *= 1000
	}
	return out
}

// Table is an IAPWS-IF97 property evaluator configured by Options. The
// zero value is not usable; construct with New.
type Table struct {
	opts      Options
	validator *validation.InputValidator
	cache     *cache.PropertiesCache
}

// New constructs a Table with the given options applied over the
// defaults (Industrial units, region 3 refinement enabled, no
// memoization).
func New(opts ...Option) *Table {
	o := newOptions(opts)
	t := &Table{opts: o, validator: validation.NewInputValidator()}
	if o.cache {
		t.cache = cache.NewPropertiesCache(o.cacheSize)
	}
	return t
}

func (t *Table) toSI(pMPa float64) float64 {
	if t.opts.units == SI {
		return pMPa * 1e6
	}
	return pMPa
}

// Properties evaluates the full property set at temperature T (K) and
// pressure p (the Table's configured pressure unit: MPa for Industrial,
// Pa for SI). It dispatches to the governing basic equation via
// classify.TP; region 3 queries resolve a density by Newton iteration
// (region3.DensityFromTP) before evaluating the Helmholtz equation.
func (t *Table) Properties(T, p float64) (Properties, Region, error) {
	type cachedResult struct {
		props  Properties
		region Region
	}
	pMPa := p
	if t.opts.units == SI {
		pMPa = p / 1e6
	}
	if r := t.validator.ValidateTemperaturePressure(T, pMPa); !r.OK() {
		return Properties{}, calc_core.RegionUnknown, &OutOfRange{Variable: "T,p", Value: pMPa, Min: 0, Max: PMax}
	}

	if t.cache != nil {
		if v, ok := t.cache.Get(T, pMPa, "properties"); ok {
			c := v.(cachedResult)
			return c.props, c.region, nil
		}
	}

	region, err := classify.TP(T, pMPa)
	if err != nil {
		return Properties{}, calc_core.RegionUnknown, &NoRegion{Kind: "T,p", Inputs: [2]float64{T, pMPa}}
	}

	var cp calc_core.Properties
	switch region {
	case calc_core.Region1:
		r1, err := region1.Evaluate(T, pMPa)
		if err != nil {
			return Properties{}, region, err
		}
		cp = calc_core.Properties{SpecificVolume: r1.V, Density: r1.Rho, SpecificInternalEnergy: r1.U,
			SpecificEntropy: r1.S, SpecificEnthalpy: r1.H, SpecificIsochoricHeatCapacity: r1.Cv,
			SpecificIsobaricHeatCapacity: r1.Cp, SpeedOfSound: r1.W}
	case calc_core.Region2:
		r2, err := region2.Evaluate(T, pMPa)
		if err != nil {
			return Properties{}, region, err
		}
		cp = calc_core.Properties{SpecificVolume: r2.V, Density: r2.Rho, SpecificInternalEnergy: r2.U,
			SpecificEntropy: r2.S, SpecificEnthalpy: r2.H, SpecificIsochoricHeatCapacity: r2.Cv,
			SpecificIsobaricHeatCapacity: r2.Cp, SpeedOfSound: r2.W}
	case calc_core.Region3:
		var seed float64
		if t.opts.refine {
			seed = 0
		}
		rho, err := region3.DensityFromTP(T, pMPa, seed)
		if err != nil {
			return Properties{}, region, &ConvergenceFailure{Operation: "region3 density solve", Seed: seed}
		}
		r3, err := region3.Evaluate(rho, T)
		if err != nil {
			return Properties{}, region, err
		}
		cp = calc_core.Properties{SpecificVolume: 1.0 / rho, Density: rho, SpecificInternalEnergy: r3.U,
			SpecificEntropy: r3.S, SpecificEnthalpy: r3.H, SpecificIsochoricHeatCapacity: r3.Cv,
			SpecificIsobaricHeatCapacity: r3.Cp, SpeedOfSound: r3.W}
	case calc_core.Region5:
		r5, err := region5.Evaluate(T, pMPa)
		if err != nil {
			return Properties{}, region, err
		}
		cp = calc_core.Properties{SpecificVolume: r5.V, Density: r5.Rho, SpecificInternalEnergy: r5.U,
			SpecificEntropy: r5.S, SpecificEnthalpy: r5.H, SpecificIsochoricHeatCapacity: r5.Cv,
			SpecificIsobaricHeatCapacity: r5.Cp, SpeedOfSound: r5.W}
	default:
		return Properties{}, calc_core.RegionUnknown, &NoRegion{Kind: "T,p", Inputs: [2]float64{T, pMPa}}
	}

	out := fromCalcCore(cp, t.opts.units)
	if t.cache != nil {
		t.cache.Set(T, pMPa, "properties", cachedResult{props: out, region: region})
	}
	return out, region, nil
}

// TFromPH solves temperature from pressure and specific enthalpy. It
// tries the basic equations in turn - region 1 (only when p is at most
// the B23 pressure at 623.15 K and h < 1670 kJ/kg), then regions 2, 3
// and 5 - and returns the first solve that converges; no 2a/2b/2c
// sub-region classification is applied. Regions 1, 2 and 5 are inverted
// by 1-D Newton; for region 3, T(p,h) additionally recovers specific
// volume and discards it, since region 3's T(p,h) can only be answered
// together with v(p,h) (see TVFromPH).
func (t *Table) TFromPH(pMPa, h float64) (float64, error) {
	switch {
	case pMPa <= bounds.B23P(623.15) && h < 1670.0:
		T, err := backward.TphRegion1(pMPa, h)
		if err == nil {
			return T, nil
		}
	}
	if T, err := backward.TphRegion2(pMPa, h); err == nil {
		return T, nil
	}
	if T, _, err := backward.PhRegion3(pMPa, h, 300.0, 630.0); err == nil {
		return T, nil
	}
	if T, err := backward.TphRegion5(pMPa, h); err == nil {
		return T, nil
	}
	return 0, &NoRegion{Kind: "p,h", Inputs: [2]float64{pMPa, h}}
}

// TVFromPH solves (T, v) jointly from (p, h) in region 3.
func (t *Table) TVFromPH(pMPa, h, seedRho, seedT float64) (T, v float64, err error) {
	return backward.PhRegion3(pMPa, h, seedRho, seedT)
}

// TFromPS solves temperature from pressure and specific entropy,
// mirroring TFromPH.
func (t *Table) TFromPS(pMPa, s float64) (float64, error) {
	if T, err := backward.TpsRegion1(pMPa, s); err == nil {
		return T, nil
	}
	if T, err := backward.TpsRegion2(pMPa, s); err == nil {
		return T, nil
	}
	if T, _, err := backward.PsRegion3(pMPa, s, 300.0, 630.0); err == nil {
		return T, nil
	}
	if T, err := backward.TpsRegion5(pMPa, s); err == nil {
		return T, nil
	}
	return 0, &NoRegion{Kind: "p,s", Inputs: [2]float64{pMPa, s}}
}

// PFromHS solves (T, p) jointly from specific enthalpy and entropy by
// trying a 2-D Newton solve seeded in regions 1, 2 and 5 in turn
// (region 3 is not tried) and keeping the first one to converge to a
// point classify.TP confirms is self-consistent with that region.
func (t *Table) PFromHS(h, s float64) (T, pMPa float64, region Region, err error) {
	type seedCase struct {
		region   Region
		evaluate func(T, p float64) (float64, float64, error)
		seedT    float64
		seedP    float64
	}
	cases := []seedCase{
		{calc_core.Region1, evalHS(region1Adapter), 350, 5},
		{calc_core.Region2, evalHS(region2Adapter), 500, 1},
		{calc_core.Region5, evalHS(region5Adapter), 1500, 1},
	}
	for _, c := range cases {
		gotT, gotP, serr := backward.PhsGeneral(c.evaluate, h, s, c.seedT, c.seedP)
		if serr != nil {
			continue
		}
		confirmed, cerr := classify.TP(gotT, gotP)
		if cerr == nil && confirmed == c.region {
			return gotT, gotP, c.region, nil
		}
	}
	return 0, 0, calc_core.RegionUnknown, &NoRegion{Kind: "h,s", Inputs: [2]float64{h, s}}
}

func region1Adapter(T, p float64) (float64, float64, error) {
	pr, err := region1.Evaluate(T, p)
	if err != nil {
		return 0, 0, err
	}
	return pr.H, pr.S, nil
}

func region2Adapter(T, p float64) (float64, float64, error) {
	pr, err := region2.Evaluate(T, p)
	if err != nil {
		return 0, 0, err
	}
	return pr.H, pr.S, nil
}

func region5Adapter(T, p float64) (float64, float64, error) {
	pr, err := region5.Evaluate(T, p)
	if err != nil {
		return 0, 0, err
	}
	return pr.H, pr.S, nil
}

func evalHS(f func(T, p float64) (float64, float64, error)) func(T, p float64) (float64, float64, error) {
	return f
}

// Psat returns the saturation pressure (MPa) at temperature T (K).
func (t *Table) Psat(T float64) (float64, error) {
	return region4.SaturationPressure(T)
}

// Tsat returns the saturation temperature (K) at pressure p (MPa).
func (t *Table) Tsat(pMPa float64) (float64, error) {
	return region4.SaturationTemperature(pMPa)
}

// Viscosity returns the dynamic viscosity (Pa*s) at temperature T (K)
// and density rho (kg/m^3), IAPWS R12-08.
func (t *Table) Viscosity(T, rho float64) (float64, error) {
	return transport.DynamicViscosity(T, rho)
}

// ThermalConductivity returns the thermal conductivity (W/(m*K)) at
// temperature T (K) and density rho (kg/m^3), IAPWS R15-11 background
// terms (see DESIGN.md for the omitted critical-enhancement term).
func (t *Table) ThermalConductivity(T, rho float64) (float64, error) {
	return transport.ThermalConductivity(T, rho)
}

// SurfaceTension returns the liquid-vapor surface tension (N/m) at
// temperature T (K), IAPWS R1-76.
func (t *Table) SurfaceTension(T float64) (float64, error) {
	return transport.SurfaceTension(T)
}

// RegionOf classifies a (T,p) point without evaluating its properties.
func (t *Table) RegionOf(T, pMPa float64) (Region, error) {
	return classify.TP(T, pMPa)
}

func init() {
	// Guard against accidental drift between the root package's copy of
	// the fixed reducing constants and calc_core's independent use of
	// the same published numbers.
	if math.Abs(Tc-647.096) > 1e-9 || math.Abs(Pc-22.064) > 1e-9 {
		panic("if97: critical point constants diverged from IAPWS-IF97")
	}
}
