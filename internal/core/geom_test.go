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
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontal",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertical",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edge",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical edge",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "one unit overlap",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(9, 0, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxFromRect(0, 0, 20, 20),
			b:        BoxFromRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "same geometry",
			a:        NewBox(50, 50, 10, 10),
			b:        NewBox(50, 50, 10, 10),
			expected: true,
		},
		{
			name:     "corner touch",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(10, 10, 10, 10),
			expected: false,
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

func TestBoxOutOfBounds(t *testing.T) {
	const w, h = 900, 600

	tests := []struct {
		name     string
		box      Box
		expected bool
	}{
		{"inside", NewBox(450, 300, 10, 10), false},
		{"straddling left edge", NewBox(2, 300, 10, 10), false},
		{"straddling bottom edge", NewBox(450, 598, 10, 10), false},
		{"right edge on zero", NewBox(-5, 300, 10, 10), true},
		{"bottom edge on zero", NewBox(450, -5, 10, 10), true},
		{"left edge on width", NewBox(905, 300, 10, 10), true},
		{"top edge on height", NewBox(450, 605, 10, 10), true},
		{"far away", NewBox(-500, -500, 10, 10), true},
		{"bigger than arena", NewBox(450, 300, 2000, 2000), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.OutOfBounds(w, h); got != tc.expected {
				t.Errorf("OutOfBounds() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxGeometry(t *testing.T) {
	b := BoxFromRect(10, 20, 30, 40)

	if b.Center != (Vec{X: 25, Y: 40}) {
		t.Errorf("Center = %+v, expected {25 40}", b.Center)
	}
	if b.Size() != (Vec{X: 30, Y: 40}) {
		t.Errorf("Size = %+v, expected {30 40}", b.Size())
	}
	if b.Area() != 1200 {
		t.Errorf("Area = %f, expected 1200", b.Area())
	}
	if b.Min() != (Vec{X: 10, Y: 20}) || b.Max() != (Vec{X: 40, Y: 60}) {
		t.Errorf("Min/Max = %+v/%+v", b.Min(), b.Max())
	}
}

func TestCellRect(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{"aligned", BoxFromRect(0, 0, 20, 40), NewRect(0, 0, 2, 2)},
		{"partial cells", BoxFromRect(5, 10, 10, 20), NewRect(0, 0, 2, 2)},
		{"tiny box", BoxFromRect(31, 41, 1, 1), NewRect(3, 2, 1, 1)},
		{"negative origin", BoxFromRect(-15, 0, 10, 20), NewRect(-2, 0, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CellRect(tc.box, 10, 20); got != tc.expected {
				t.Errorf("CellRect() = %+v, expected %+v", got, tc.expected)
			}
		})
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

func TestRectIntersect(t *testing.T) {
	arena := NewRect(0, 1, 80, 23)

	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", NewRect(10, 5, 4, 2), NewRect(10, 5, 4, 2)},
		{"into hud", NewRect(3, -1, 4, 4), NewRect(3, 1, 4, 2)},
		{"past right edge", NewRect(78, 10, 5, 1), NewRect(78, 10, 2, 1)},
		{"outside", NewRect(90, 5, 4, 2), Rect{}},
		{"touching", NewRect(80, 5, 4, 2), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Intersect(arena)
			if got != tt.want {
				t.Errorf("Intersect = %+v, expected %+v", got, tt.want)
			}
			if got.Empty() != (tt.want == Rect{}) {
				t.Errorf("Empty() = %v", got.Empty())
			}
		})
	}
}
