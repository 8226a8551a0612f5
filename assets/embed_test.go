package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"bare", "misc.png", "misc.png"},
		{"prefixed", "assets/misc.png", "misc.png"},
		{"absolute", "/home/me/game/assets/character.yaml", "character.yaml"},
		{"absolute_elsewhere", "/tmp/character.png", "character.png"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEmbeddedSheetsDecode(t *testing.T) {
	for _, name := range []string{"character.png", "misc.png"} {
		t.Run(name, func(t *testing.T) {
			img, err := DecodeImage(name)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != 128 || b.Dy() != 128 {
				t.Fatalf("expected a 4x4 grid of 32px frames, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("nope.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
