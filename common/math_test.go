package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 2, 10, 0, 2},
		{"end", 2, 10, 1, 10},
		{"middle", 2, 10, 0.5, 6},
		{"backwards", 10, 2, 0.25, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v; want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}

	if got := Lerp[float32](0, 4, 0.5); got != 2 {
		t.Fatalf("float32 Lerp = %v; want 2", got)
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0: 0, 0.3: 0.3, 1: 1, 4: 1} {
		if got := Clamp01(in); got != want {
			t.Fatalf("Clamp01(%v) = %v; want %v", in, got, want)
		}
	}
}
