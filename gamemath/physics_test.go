package gamemath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-50, -10},
		{-10, -10},
		{0, 0},
		{19.9, 19.9},
		{20, 20},
		{1e9, 20},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -10, 20); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestJumpVelocity(t *testing.T) {
	tests := []struct {
		name     string
		vy, want float64
	}{
		{"falling fast keeps half the impulse", -50, 10},
		{"falling slowly adds the impulse", -5, 15},
		{"at rest", 0, 20},
		{"rising adds on top", 4, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JumpVelocity(tt.vy, 20); got != tt.want {
				t.Errorf("JumpVelocity(%v, 20) = %v, want %v", tt.vy, got, tt.want)
			}
		})
	}
}

func TestRotateTowards(t *testing.T) {
	if got := RotateTowards(0, 30, 6); got != 6 {
		t.Errorf("step up = %v, want 6", got)
	}
	if got := RotateTowards(0, -30, 6); got != -6 {
		t.Errorf("step down = %v, want -6", got)
	}
	if got := RotateTowards(28, 30, 6); got != 30 {
		t.Errorf("close enough should snap, got %v", got)
	}
	if got := RotateTowards(10, 30, 0); got != 10 {
		t.Errorf("zero step should hold, got %v", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		x, origin, period, want float64
	}{
		{-0.5, 0, 2, 1.5},
		{-2, 0, 2, 0},
		{-2.25, 0, 2, 1.75},
		{1, 0, 2, 1},
		{5, 3, 2, 3},
		{7, 7, 0, 7},
	}
	for _, tt := range tests {
		got := Wrap(tt.x, tt.origin, tt.period)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.x, tt.origin, tt.period, got, tt.want)
		}
	}
}

func TestWrapStaysInRange(t *testing.T) {
	x := 0.0
	for i := 0; i < 10000; i++ {
		x = Wrap(x-0.0173, 0, 0.5)
		if x < 0 || x >= 0.5 {
			t.Fatalf("step %d: %v escaped [0, 0.5)", i, x)
		}
	}
}

func TestOscillate(t *testing.T) {
	const origin, amp, period = 0.5, 1.0, 3.0
	for _, age := range []float64{0, 0.3, 1.1, 2.9, 7.4} {
		a := Oscillate(origin, amp, period, age)
		b := Oscillate(origin, amp, period, age+period)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("age %v: %v != %v one period later", age, a, b)
		}
		if a < origin-amp-1e-9 || a > origin+amp+1e-9 {
			t.Errorf("age %v: %v outside the swing", age, a)
		}
	}
	if got := Oscillate(origin, amp, period, period/4); math.Abs(got-(origin+amp)) > 1e-9 {
		t.Errorf("quarter period = %v, want the top of the swing", got)
	}
	if got := Oscillate(origin, amp, 0, 1); got != origin {
		t.Errorf("zero period = %v, want origin", got)
	}
}
