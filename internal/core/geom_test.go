package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        NewBox(0, 0, 0.7, 1.2),
			b:        NewBox(0, 0, 0.425, 0.425),
			expected: true,
		},
		{
			name:     "lateral overlap",
			a:        NewBox(0, 0, 1, 1),
			b:        NewBox(1.5, 0, 1, 1),
			expected: true,
		},
		{
			name:     "lateral gap",
			a:        NewBox(0, 0, 1, 1),
			b:        NewBox(3, 0, 1, 1),
			expected: false,
		},
		{
			name:     "depth gap",
			a:        NewBox(0, 0, 1, 1),
			b:        NewBox(0, -5, 1, 1),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 1, 1),
			b:        NewBox(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "corner overlap",
			a:        NewBox(0, 0, 1, 1),
			b:        NewBox(1.9, 1.9, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if tc.b.Intersects(tc.a) != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", !tc.expected, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(2, 5, 0.5, 3)
	if b.Left() != 1.5 {
		t.Errorf("Left() = %f, expected 1.5", b.Left())
	}
	if b.Right() != 2.5 {
		t.Errorf("Right() = %f, expected 2.5", b.Right())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if r.Contains(tc.x, tc.y) != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, !tc.expected, tc.expected)
			}
		})
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
		{2.8, -2.8, 2.8, 2.8},
		{-9.0, -2.8, 2.8, -2.8},
		{0.1, -2.8, 2.8, 0.1},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(-1.5) != 1.5 || AbsF(1.5) != 1.5 || AbsF(0) != 0 {
		t.Error("AbsF should return the magnitude")
	}
}
