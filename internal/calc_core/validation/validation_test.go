package validation

import "testing"

func TestValidateTemperaturePressure_Valid(t *testing.T) {
	v := NewInputValidator()
	r := v.ValidateTemperaturePressure(300, 3)
	if !r.OK() {
		t.Errorf("expected valid, got errors: %v", r.Errors)
	}
}

func TestValidateTemperaturePressure_OutOfRange(t *testing.T) {
	v := NewInputValidator()
	if r := v.ValidateTemperaturePressure(200, 3); r.OK() {
		t.Error("expected error for T below envelope minimum")
	}
	if r := v.ValidateTemperaturePressure(300, -1); r.OK() {
		t.Error("expected error for negative pressure")
	}
	if r := v.ValidateTemperaturePressure(300, 200); r.OK() {
		t.Error("expected error for p above envelope maximum")
	}
}

func TestValidateTemperaturePressure_NearCriticalWarning(t *testing.T) {
	v := NewInputValidator()
	r := v.ValidateTemperaturePressure(647.1, 22.06)
	if !r.OK() {
		t.Fatalf("expected valid near-critical point, got errors: %v", r.Errors)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a near-critical-point warning")
	}
}

func TestValidateEnthalpyEntropy(t *testing.T) {
	v := NewInputValidator()
	if r := v.ValidateEnthalpyEntropy(2000, 5); !r.OK() {
		t.Errorf("expected valid, got errors: %v", r.Errors)
	}
	if r := v.ValidateEnthalpyEntropy(-10, 5); r.OK() {
		t.Error("expected error for negative enthalpy")
	}
	if r := v.ValidateEnthalpyEntropy(2000, 20); r.OK() {
		t.Error("expected error for entropy above envelope maximum")
	}
}
