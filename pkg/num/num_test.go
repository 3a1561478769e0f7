package num

import "testing"

func TestArithmetic(t *testing.T) {
	a := FromInt64(7)
	b := FromInt64(2)

	if got := Add(a, b).String(); got != "9" {
		t.Errorf("Add: got %s, want 9", got)
	}

	if got := Sub(a, b).String(); got != "5" {
		t.Errorf("Sub: got %s, want 5", got)
	}

	if got := Mul(a, b).String(); got != "14" {
		t.Errorf("Mul: got %s, want 14", got)
	}

	if got := Div(a, b).String(); got != "3" {
		t.Errorf("Div: got %s, want 3", got)
	}

	if got := Mod(a, b).String(); got != "1" {
		t.Errorf("Mod: got %s, want 1", got)
	}
}

func TestDivTruncatesTowardsZero(t *testing.T) {
	a := FromInt64(-7)
	b := FromInt64(2)

	if got := Div(a, b).String(); got != "-3" {
		t.Errorf("Div(-7,2): got %s, want -3", got)
	}

	if got := Mod(a, b).String(); got != "-1" {
		t.Errorf("Mod(-7,2): got %s, want -1", got)
	}
}

func TestCompare(t *testing.T) {
	a := FromInt64(3)
	b := FromInt64(5)

	if !Lt(a, b) || Gt(a, b) || Equal(a, b) {
		t.Errorf("expected 3 < 5")
	}

	if !Leq(a, a) || !Geq(a, a) {
		t.Errorf("expected reflexive <= and >=")
	}
}

func TestLog2Ceil(t *testing.T) {
	tests := []struct {
		n    int64
		want uint64
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{256, 8},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Log2Ceil(FromInt64(tt.n)).Uint64(); got != tt.want {
			t.Errorf("Log2Ceil(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPopCount(t *testing.T) {
	if got := FromInt64(0b10110).PopCount().Uint64(); got != 3 {
		t.Errorf("PopCount(0b10110) = %d, want 3", got)
	}
}
