// Package calc_core holds the value types shared by every IF97 region
// package: the property bundle a basic or backward equation fills in, and
// the region enumeration the classifiers return.
package calc_core

import "fmt"

// RangeError reports an input outside the validity envelope checked at
// this layer. The root if97 package wraps or re-reports these as its own
// OutOfRange/NoRegion types at the public API boundary; this local type
// exists so internal packages never need to import the root package
// (which would create an import cycle).
type RangeError struct {
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("calc_core: %s", e.Reason)
}

// Properties is the full set of thermodynamic properties a basic or
// backward equation can derive from its potential function, in industrial
// units (MPa, kJ/kg, kJ/(kg*K), m/s).
type Properties struct {
	SpecificVolume                float64 // m^3/kg
	Density                       float64 // kg/m^3
	SpecificInternalEnergy        float64 // kJ/kg
	SpecificEntropy               float64 // kJ/(kg*K)
	SpecificEnthalpy              float64 // kJ/kg
	SpecificIsochoricHeatCapacity float64 // kJ/(kg*K)
	SpecificIsobaricHeatCapacity  float64 // kJ/(kg*K)
	SpeedOfSound                  float64 // m/s
}

// Region identifies one of the five IF97 basic regions.
type Region int

const (
	RegionUnknown Region = iota
	Region1
	Region2
	Region3
	Region4
	Region5
)

func (r Region) String() string {
	switch r {
	case Region1:
		return "region1"
	case Region2:
		return "region2"
	case Region3:
		return "region3"
	case Region4:
		return "region4"
	case Region5:
		return "region5"
	default:
		return "unknown"
	}
}
