package affect

import (
	"errors"
	"testing"
)

func TestNewAcceptsBoundaryValues(t *testing.T) {
	v, err := New(-100, 100, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.Pleasure != -100 || v.Arousal != 100 || v.Dominance != 0 {
		t.Fatalf("unexpected vector: %#v", v)
	}
}

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name    string
		p, a, d int
		axis    string
	}{
		{"pleasure too low", -101, 0, 0, "pleasure"},
		{"pleasure too high", 101, 0, 0, "pleasure"},
		{"arousal too low", 0, -150, 0, "arousal"},
		{"dominance too high", 0, 0, 200, "dominance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.p, tc.a, tc.d)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected RangeError, got %T", err)
			}
			if rangeErr.Axis != tc.axis {
				t.Fatalf("expected axis %q, got %q", tc.axis, rangeErr.Axis)
			}
		})
	}
}

func TestClampSaturatesEachAxis(t *testing.T) {
	v := Clamp(250, -3000, 40)
	want := Vector{Pleasure: 100, Arousal: -100, Dominance: 40}
	if v != want {
		t.Fatalf("expected %#v, got %#v", want, v)
	}
}

func TestClampDelta(t *testing.T) {
	p, a, d := ClampDelta(120, -95, 80)
	if p != 80 || a != -80 || d != 80 {
		t.Fatalf("unexpected deltas: %d %d %d", p, a, d)
	}
}

func TestAddClampsResult(t *testing.T) {
	v := Vector{Pleasure: 90, Arousal: -90, Dominance: 0}
	next := v.Add(25, -25, 10)
	want := Vector{Pleasure: 100, Arousal: -100, Dominance: 10}
	if next != want {
		t.Fatalf("expected %#v, got %#v", want, next)
	}
}

func TestCompositeScore(t *testing.T) {
	cases := []struct {
		p, a, d int
		want    float64
	}{
		{0, 0, 0, 0},
		{10, 20, 30, 18.5},
		{100, 100, 100, 100},
		{-100, -100, -100, -100},
		{70, 60, 50, 61.5},
	}
	for _, tc := range cases {
		v := Vector{Pleasure: tc.p, Arousal: tc.a, Dominance: tc.d}
		if got := v.CompositeScore(); got != tc.want {
			t.Fatalf("CompositeScore(%d,%d,%d) = %v, want %v", tc.p, tc.a, tc.d, got, tc.want)
		}
	}
}
