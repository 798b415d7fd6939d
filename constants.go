package if97

// Fixed reducing constants and the specific gas constant mandated by the
// standard (spec.md §6). Deviating from any of these breaks verification
// against the published tables.
const (
	// R is the specific gas constant for ordinary water, kJ/(kg*K).
	R = 0.461526

	// Tc, Pc, Rhoc are the critical point coordinates.
	Tc   = 647.096 // K
	Pc   = 22.064  // MPa
	Rhoc = 322.0   // kg/m^3

	// Tt, Pt are the triple point coordinates.
	Tt = 273.16    // K
	Pt = 611.657e-6 // MPa (611.657 Pa)

	// Region 5 validity envelope.
	Region5Tmin = 1073.15 // K
	Region5Tmax = 2273.15 // K
	Region5Pmax = 50.0    // MPa

	// Region 1/2/3 shared upper pressure bound.
	PMax = 100.0 // MPa

	// B23 boundary validity band.
	B23Tmin = 623.15 // K
	B23Tmax = 863.15 // K
)
