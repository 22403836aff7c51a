package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{99, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
	}

	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d, %d, %d): expected %d, got %d", c.v, c.lo, c.hi, c.want, got)
		}
	}
}
