package transport

import (
	"math"
	"testing"

	"github.com/somepgs/steamprops/internal/calc_core/region1"
)

func checkValue(t *testing.T, calculated, expected, epsilon float64, name string) {
	t.Helper()
	relativeError := math.Abs((calculated - expected) / expected)
	if relativeError > epsilon {
		t.Errorf("%s: relative error too large (%.3e > %.3e); want %.9g got %.9g",
			name, relativeError, epsilon, expected, calculated)
	}
}

// TestDynamicViscosity_VerificationValues checks the official IAPWS
// R12-08 Table 4 reference points (spec.md §8's viscosity scenario is
// the first of these).
func TestDynamicViscosity_VerificationValues(t *testing.T) {
	cases := []struct {
		name   string
		T, rho float64
		wantMu float64 // Pa*s
	}{
		{"T=298.15K rho=998", 298.15, 998, 889.7351e-6},
		{"T=373.15K rho=1000", 373.15, 1000, 307.883e-6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DynamicViscosity(c.T, c.rho)
			if err != nil {
				t.Fatalf("DynamicViscosity error: %v", err)
			}
			checkValue(t, got, c.wantMu, 1e-4, "mu")
		})
	}
}

func TestKinematicViscosity_Consistency(t *testing.T) {
	mu, err := DynamicViscosity(373.15, 1000)
	if err != nil {
		t.Fatalf("DynamicViscosity error: %v", err)
	}
	nu, err := KinematicViscosity(373.15, 1000)
	if err != nil {
		t.Fatalf("KinematicViscosity error: %v", err)
	}
	if math.Abs(nu-mu/1000) > 1e-15 {
		t.Errorf("KinematicViscosity = %.9g, want %.9g", nu, mu/1000)
	}
}

// TestThermalConductivity_VerificationValue checks the published
// T=620 K, p=50 MPa point from spec.md §8: the state's density comes
// from region1's already-verified forward equation (620 K, 50 MPa
// falls within region 1), then lambda0/lambda1 (IAPWS R15-11) are
// evaluated at that density.
func TestThermalConductivity_VerificationValue(t *testing.T) {
	props, err := region1.Evaluate(620, 50)
	if err != nil {
		t.Fatalf("region1.Evaluate error: %v", err)
	}
	got, err := ThermalConductivity(620, props.Rho)
	if err != nil {
		t.Fatalf("ThermalConductivity error: %v", err)
	}
	checkValue(t, got, 545.03894e-3, 1e-3, "lambda")
}

// TestThermalConductivity_PhysicalRange is a coarse sanity net on top of
// the exact verification above, covering state points region1 doesn't
// reach.
func TestThermalConductivity_PhysicalRange(t *testing.T) {
	cases := []struct {
		name   string
		T, rho float64
	}{
		{"liquid-like", 620, 700},
		{"vapor-like", 620, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ThermalConductivity(c.T, c.rho)
			if err != nil {
				t.Fatalf("ThermalConductivity error: %v", err)
			}
			if got <= 0 || got > 2.0 {
				t.Errorf("ThermalConductivity(%g,%g) = %.6g, outside plausible [0,2] W/(m*K) band", c.T, c.rho, got)
			}
		})
	}
}

func TestThermalConductivity_IncreasesWithDensity(t *testing.T) {
	lo, err := ThermalConductivity(620, 100)
	if err != nil {
		t.Fatalf("ThermalConductivity error: %v", err)
	}
	hi, err := ThermalConductivity(620, 700)
	if err != nil {
		t.Fatalf("ThermalConductivity error: %v", err)
	}
	if hi <= lo {
		t.Errorf("expected thermal conductivity to increase with density: lo(rho=100)=%.6g, hi(rho=700)=%.6g", lo, hi)
	}
}

// TestSurfaceTension_VerificationValue checks the room-temperature
// surface tension figure from spec.md §8.
func TestSurfaceTension_VerificationValue(t *testing.T) {
	got, err := SurfaceTension(298.15)
	if err != nil {
		t.Fatalf("SurfaceTension error: %v", err)
	}
	checkValue(t, got, 71.98e-3, 1e-3, "sigma")
}

func TestSurfaceTension_VanishesAtCriticalPoint(t *testing.T) {
	got, err := SurfaceTension(tStar)
	if err != nil {
		t.Fatalf("SurfaceTension error: %v", err)
	}
	if math.Abs(got) > 1e-9 {
		t.Errorf("SurfaceTension(Tc) = %.6g, want 0", got)
	}
}

func TestSurfaceTension_OutOfRange(t *testing.T) {
	if _, err := SurfaceTension(200); err == nil {
		t.Error("expected error for T below triple point")
	}
	if _, err := SurfaceTension(700); err == nil {
		t.Error("expected error for T above critical point")
	}
}
