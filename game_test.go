package main

import "testing"

func TestTilePosition(t *testing.T) {
	cases := []struct {
		name         string
		x, y, tile   float64
		wantX, wantY int
	}{
		{"origin", 0, 0, 32, 0, 0},
		{"spawn", 128, 160, 32, 4, 5},
		{"mid_transit_rounds", 142, 160, 32, 4, 5},
		{"past_half", 146, 160, 32, 5, 5},
		{"default_tile", 64, 32, 0, 2, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := tilePosition(c.x, c.y, c.tile)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("tilePosition(%v, %v) = (%d, %d); want (%d, %d)", c.x, c.y, x, y, c.wantX, c.wantY)
			}
		})
	}
}
