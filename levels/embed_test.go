package levels

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseLayer(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want [][]int
	}{
		{"single_row", "1,2,3", [][]int{{1, 2, 3}}},
		{"two_rows", "1,2;3,4", [][]int{{1, 2}, {3, 4}}},
		{"whitespace", " 1 , 2 ;\n 3, 4 ", [][]int{{1, 2}, {3, 4}}},
		{"empty_marker", "-1,5;5,-1", [][]int{{-1, 5}, {5, -1}}},
		{"garbage_is_empty", "a,2;3,", [][]int{{NoTile, 2}, {3, NoTile}}},
		{"trailing_separator", "1,2;3,4;", [][]int{{1, 2}, {3, 4}}},
		{"ragged", "1;2,3,4", [][]int{{1}, {2, 3, 4}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ParseLayer(c.in); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("ParseLayer(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestTilesFlipRowsAndSkipEmpty(t *testing.T) {
	lvl := &Level{Layers: map[string]string{
		"background": "1,-1;x,4;5,6",
	}}

	got, err := lvl.Tiles("background")
	if err != nil {
		t.Fatalf("Tiles: %v", err)
	}
	want := []Tile{
		{X: 0, Y: 2, ID: 1},
		{X: 1, Y: 1, ID: 4},
		{X: 0, Y: 0, ID: 5},
		{X: 1, Y: 0, ID: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tiles() = %v, want %v", got, want)
	}

	if _, err := lvl.Tiles("misc"); !errors.Is(err, ErrLayerNotFound) {
		t.Fatalf("expected ErrLayerNotFound, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "level_1.yaml"},
		{"level_2", "level_2.yaml"},
		{"level_2.yaml", "level_2.yaml"},
		{"levels/level_1.yaml", "level_1.yaml"},
		{" 3 ", "level_3.yaml"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := FileName(c.in); got != c.want {
				t.Fatalf("FileName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
name: test
layers:
  background: >-
    0,0;
    1,1
character: {x: 1, y: 0}
camera: {x: 2, y: 3}
`)
	lvl, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lvl.Name != "test" || lvl.Character != (Position{X: 1}) || lvl.Camera != (Position{X: 2, Y: 3}) {
		t.Fatalf("unexpected level %+v", lvl)
	}
	if w, h := lvl.Size(); w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}

	if _, err := Parse([]byte("layers: [")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	for _, ref := range []string{"1", "2"} {
		t.Run(ref, func(t *testing.T) {
			lvl, err := Load(ref)
			if err != nil {
				t.Fatalf("Load(%q): %v", ref, err)
			}
			for _, layer := range []string{"background", "misc"} {
				tiles, err := lvl.Tiles(layer)
				if err != nil {
					t.Fatalf("layer %s: %v", layer, err)
				}
				if len(tiles) == 0 {
					t.Fatalf("layer %s has no tiles", layer)
				}
				for _, tile := range tiles {
					if tile.ID < 0 || tile.ID >= 16 {
						t.Fatalf("layer %s: tile id %d outside the misc sheet", layer, tile.ID)
					}
				}
			}
			w, h := lvl.Size()
			if lvl.Character.X < 0 || lvl.Character.Y < 0 || int(lvl.Character.X) >= w || int(lvl.Character.Y) >= h {
				t.Fatalf("character spawn %+v outside %dx%d map", lvl.Character, w, h)
			}
		})
	}

	if _, err := Load("99"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}
