package region4

// n holds the ten IAPWS-IF97 region 4 saturation-line coefficients
// (Table 34), 1-indexed to match the published equation numbering.
// Struct-of-arrays per spec.md §9, replacing the teacher's go:embed CSV
// loader (see DESIGN.md).
var n = [11]float64{
	0, // unused index 0
	0.11670521452767e4,
	-0.72421316703206e6,
	-0.17073846940092e2,
	0.12020824702470e5,
	-0.32325550322333e7,
	0.14915108613530e2,
	-0.48232657361591e4,
	0.40511340542057e6,
	-0.23855557567849,
	0.65017534844798e3,
}
