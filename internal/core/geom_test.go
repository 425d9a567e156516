package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAround(Vec2{X: 0, Y: 0}, 5, 5),
			b:        BoxAround(Vec2{X: 4, Y: 4}, 5, 5),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAround(Vec2{X: 0, Y: 0}, 5, 5),
			b:        BoxAround(Vec2{X: 20, Y: 0}, 5, 5),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAround(Vec2{X: 0, Y: 0}, 5, 5),
			b:        BoxAround(Vec2{X: 0, Y: 20}, 5, 5),
			expected: false,
		},
		{
			name:     "touching edge counts as overlap",
			a:        BoxAround(Vec2{X: 0, Y: 0}, 5, 5),
			b:        BoxAround(Vec2{X: 10, Y: 0}, 5, 5),
			expected: true,
		},
		{
			name:     "touching corner counts as overlap",
			a:        BoxAround(Vec2{X: 0, Y: 0}, 5, 5),
			b:        BoxAround(Vec2{X: 10, Y: 10}, 5, 5),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxAround(Vec2{X: 0, Y: 0}, 10, 10),
			b:        BoxAround(Vec2{X: 1, Y: 1}, 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := NewBounds(800, 600)

	if b.Width() != 800 {
		t.Errorf("Width() = %f, expected 800", b.Width())
	}
	if b.Height() != 600 {
		t.Errorf("Height() = %f, expected 600", b.Height())
	}

	c := b.Center()
	if c.X != 400 || c.Y != 300 {
		t.Errorf("Center() = (%f, %f), expected (400, 300)", c.X, c.Y)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}

	sum := v.Add(Vec2{X: 1, Y: -1})
	if sum.X != 4 || sum.Y != 3 {
		t.Errorf("Add() = %+v, expected {4 3}", sum)
	}

	scaled := v.Scale(0.5)
	if scaled.X != 1.5 || scaled.Y != 2 {
		t.Errorf("Scale() = %+v, expected {1.5 2}", scaled)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
