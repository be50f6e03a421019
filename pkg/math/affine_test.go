package math

import "testing"

func TestIdentity(t *testing.T) {
	m := Identity()
	if m.A != 1 || m.D != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m.B != 0 || m.C != 0 || m.E != 0 || m.F != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if !m.IsIdentity() {
		t.Error("IsIdentity should be true for Identity()")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M: got %+v, want %+v", result, m)
	}
}

func TestApplyTranslate(t *testing.T) {
	got := Translate(10, 20).Apply(Vec2{1, 2})
	want := Vec2{11, 22}
	if got != want {
		t.Errorf("Apply: got %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(5, 0).Mul(Scale(2, -1))
	got := m.Apply(Vec2{1, 3})
	want := Vec2{7, -3}
	if got != want {
		t.Errorf("Apply: got %v, want %v", got, want)
	}
	if m.IsIdentity() {
		t.Error("composed transform should not be identity")
	}
}
