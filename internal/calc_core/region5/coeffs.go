package region5

// idealTerm / residualTerm mirror region2's coefficient shapes for the
// region 5 ideal (6 terms, Table 37) and residual (6 terms, Table 38)
// parts. Struct-of-arrays per spec.md §9, replacing the teacher's
// go:embed CSV loaders (see DESIGN.md).
type idealTerm struct {
	J, N float64
}

type residualTerm struct {
	I, J, N float64
}

var idealCoeffs = []idealTerm{
	{0, -0.13179983674201e2},
	{1, 0.68540841634434e1},
	{-3, -0.24805148933466e-1},
	{-2, 0.36901534980333},
	{-1, -0.31161318213925e1},
	{2, -0.32961626538917},
}

var residualCoeffs = []residualTerm{
	{1, 1, 0.15736404855259e-2},
	{1, 2, 0.90153761673944e-3},
	{1, 3, -0.50270077677648e-2},
	{2, 3, 0.22440037409485e-5},
	{2, 9, -0.41163275453471e-5},
	{3, 7, 0.37919454822955e-7},
}
