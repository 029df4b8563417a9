package geometry

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -4)
	q := Pt(-1, 2)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(2, -2)},
		{"Sub", p.Sub(q), Pt(4, -6)},
		{"Neg", p.Neg(), Pt(-3, 4)},
		{"Mul", p.Mul(3), Pt(9, -12)},
		{"Div", Pt(9, -7).Div(2), Pt(4, -3)},
		{"DivZero", p.Div(0), Pt(0, 0)},
		{"ComponentMin", p.ComponentMin(q), Pt(-1, -4)},
		{"ComponentMax", p.ComponentMax(q), Pt(3, 2)},
		{"ComponentMul", p.ComponentMul(q), Pt(-3, -8)},
		{"ComponentDiv", Pt(8, 9).ComponentDiv(Pt(2, 0)), Pt(4, 0)},
		{"Abs", p.Abs(), Pt(3, 4)},
		{"Rotate90", Pt(1, 0).Rotate90(), Pt(0, 1)},
		{"AddSize", p.AddSize(NewSize(2, 5)), Pt(5, 1)},
		{"SubSize", p.SubSize(NewSize(2, 5)), Pt(1, -9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestPointProducts(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Dot(Pt(2, -1)); got != 2 {
		t.Errorf("Dot = %d, want 2", got)
	}
	if got := p.Determinant(Pt(1, 2)); got != 2 {
		t.Errorf("Determinant = %d, want 2", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %d, want 25", got)
	}
}

func TestPointSize(t *testing.T) {
	if got := Pt(-3, 7).Size(); got != NewSize(0, 7) {
		t.Errorf("Size() = %v, want 0x7", got)
	}
}

func TestSizeSaturates(t *testing.T) {
	big := NewSize(math.MaxUint32-1, 10)
	if got := big.Add(NewSize(5, 5)); got != NewSize(math.MaxUint32, 15) {
		t.Errorf("Add = %v, want saturated width", got)
	}
	if got := NewSize(3, 10).Sub(NewSize(5, 4)); got != NewSize(0, 6) {
		t.Errorf("Sub = %v, want 0x6", got)
	}
	if got := big.Mul(3); got.Width != math.MaxUint32 || got.Height != 30 {
		t.Errorf("Mul = %v, want saturated width", got)
	}
	if got := NewSize(7, 9).Div(0); got != (Size{}) {
		t.Errorf("Div(0) = %v, want zero", got)
	}
	if got := NewSize(8, 9).ComponentDiv(NewSize(0, 3)); got != NewSize(0, 3) {
		t.Errorf("ComponentDiv = %v, want 0x3", got)
	}
	if got := NewSize(math.MaxUint32, 1).Point(); got.X != math.MaxInt32 {
		t.Errorf("Point() = %v, want clamped X", got)
	}
}

func TestSizeIsZero(t *testing.T) {
	tests := []struct {
		s    Size
		want bool
	}{
		{NewSize(0, 0), true},
		{NewSize(0, 5), true},
		{NewSize(5, 0), true},
		{NewSize(1, 1), false},
	}
	for _, tt := range tests {
		if got := tt.s.IsZero(); got != tt.want {
			t.Errorf("%v.IsZero() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestAngle(t *testing.T) {
	if got := Degrees(180).ToRadians(); math.Abs(float64(got)-math.Pi) > 1e-6 {
		t.Errorf("Degrees(180) = %v rad, want π", got)
	}
	if got := Degrees(-90).Normalize().ToDegrees(); math.Abs(float64(got)-270) > 1e-3 {
		t.Errorf("Normalize(-90°) = %v°, want 270°", got)
	}
	if !Degrees(360).IsFullTurn() || !Degrees(-360).IsFullTurn() {
		t.Error("±360° should be a full turn")
	}
	if Degrees(359).IsFullTurn() {
		t.Error("359° should not be a full turn")
	}
}
