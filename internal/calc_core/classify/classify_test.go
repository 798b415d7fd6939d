package classify

import (
	"testing"

	"github.com/somepgs/steamprops/internal/calc_core"
)

func TestTP_KnownRegions(t *testing.T) {
	cases := []struct {
		name   string
		T, p   float64
		region calc_core.Region
	}{
		{"region1", 300, 3, calc_core.Region1},
		{"region2 low p", 300, 0.0035, calc_core.Region2},
		{"region2 high T", 700, 0.0035, calc_core.Region2},
		{"region3", 650, 25.5837018, calc_core.Region3},
		{"region5", 1500, 0.5, calc_core.Region5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := TP(c.T, c.p)
			if err != nil {
				t.Fatalf("TP(%g,%g) error: %v", c.T, c.p, err)
			}
			if got != c.region {
				t.Errorf("TP(%g,%g) = %v, want %v", c.T, c.p, got, c.region)
			}
		})
	}
}

func TestTP_OutOfEnvelope(t *testing.T) {
	if _, err := TP(200, 1); err == nil {
		t.Error("expected error for T below 273.15 K")
	}
	if _, err := TP(2300, 1); err == nil {
		t.Error("expected error for T above 2273.15 K")
	}
}

func TestSub2Dispatch(t *testing.T) {
	if got := Sub2FromPH(3.0, 2000); got != Sub2A {
		t.Errorf("Sub2FromPH low-p = %v, want Sub2A", got)
	}
	if got := Sub2FromPH(10.0, 3000); got != Sub2B {
		t.Errorf("Sub2FromPH high-h = %v, want Sub2B", got)
	}
	if got := Sub2FromPH(10.0, 2100); got != Sub2C {
		t.Errorf("Sub2FromPH low-h = %v, want Sub2C", got)
	}
}

func TestSub3Dispatch(t *testing.T) {
	if got := Sub3FromPS(3.0); got != Sub3A {
		t.Errorf("Sub3FromPS below critical = %v, want Sub3A", got)
	}
	if got := Sub3FromPS(5.0); got != Sub3B {
		t.Errorf("Sub3FromPS above critical = %v, want Sub3B", got)
	}
}
