package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        NewBox(Vec2{0, 0}, Vec2{34, 24}),
			b:        NewBox(Vec2{0, 0}, Vec2{52, 320}),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:        NewBox(Vec2{8, 8}, Vec2{10, 10}),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:        NewBox(Vec2{20, 0}, Vec2{10, 10}),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:        NewBox(Vec2{0, -20}, Vec2{10, 10}),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:        NewBox(Vec2{10, 0}, Vec2{10, 10}),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewBox(Vec2{0, 0}, Vec2{100, 100}),
			b:        NewBox(Vec2{5, -5}, Vec2{2, 2}),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(Vec2{10, -4}, Vec2{6, 8})

	if got := b.Min(); got != (Vec2{7, -8}) {
		t.Errorf("Min() = %v, expected {7 -8}", got)
	}
	if got := b.Max(); got != (Vec2{13, 0}) {
		t.Errorf("Max() = %v, expected {13 0}", got)
	}
}

func TestVec2Ops(t *testing.T) {
	v := Vec2{2, 3}

	if got := v.Add(Vec2{1, -1}); got != (Vec2{3, 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Scale(2); got != (Vec2{4, 6}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := v.Mul(Vec2{0.5, 2}); got != (Vec2{1, 6}) {
		t.Errorf("Mul() = %v", got)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectClip(t *testing.T) {
	bounds := NewRect(0, 0, 20, 10)

	got := NewRect(-5, 2, 10, 20).Clip(bounds)
	if got != NewRect(0, 2, 5, 8) {
		t.Errorf("Clip() = %+v, expected {0 2 5 8}", got)
	}

	outside := NewRect(30, 0, 5, 5).Clip(bounds)
	if !outside.Empty() {
		t.Errorf("Clip() of disjoint rect should be empty, got %+v", outside)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, -1.0, 1.0, 0.5},
		{-5.5, -1.0, 1.0, -1.0},
		{15.5, -1.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
