package align

import "testing"

func TestPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 1024, 4096} {
		if !PowerOfTwo(n) {
			t.Errorf("PowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -1, -8, 3, 6, 12, 1000} {
		if PowerOfTwo(n) {
			t.Errorf("PowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestUp(t *testing.T) {
	cases := []struct{ n, a, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{4095, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
		{13, 1, 13},
	}
	for _, c := range cases {
		if got := Up(c.n, c.a); got != c.want {
			t.Errorf("Up(%d, %d) = %d, want %d", c.n, c.a, got, c.want)
		}
	}
}

func TestPadding(t *testing.T) {
	cases := []struct {
		addr uintptr
		a    int
		want int
	}{
		{0, 8, 0},
		{8, 8, 0},
		{1, 8, 7},
		{7, 8, 1},
		{17, 16, 15},
		{5, 1, 0},
	}
	for _, c := range cases {
		if got := Padding(c.addr, c.a); got != c.want {
			t.Errorf("Padding(%#x, %d) = %d, want %d", c.addr, c.a, got, c.want)
		}
	}
}
