package dpll

import "testing"

func TestLiteralVar(t *testing.T) {
	cases := []struct {
		l    Literal
		want int
	}{
		{1, 1},
		{-1, 1},
		{42, 42},
		{-42, 42},
	}
	for _, tt := range cases {
		if got := tt.l.Var(); got != tt.want {
			t.Errorf("Literal(%d).Var() = %d, want %d", tt.l, got, tt.want)
		}
	}
}

func TestLiteralNeg(t *testing.T) {
	if Literal(3).Neg() != -3 {
		t.Fatalf("Neg(3) should be -3")
	}
	if Literal(-3).Neg() != 3 {
		t.Fatalf("Neg(-3) should be 3")
	}
}

func TestLiteralPositive(t *testing.T) {
	if !Literal(5).Positive() {
		t.Fatalf("Literal(5) should be positive")
	}
	if Literal(-5).Positive() {
		t.Fatalf("Literal(-5) should not be positive")
	}
}

func TestNewLiteral(t *testing.T) {
	if newLiteral(7, true) != 7 {
		t.Fatalf("newLiteral(7, true) should be 7")
	}
	if newLiteral(7, false) != -7 {
		t.Fatalf("newLiteral(7, false) should be -7")
	}
}
