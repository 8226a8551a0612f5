package render

import "testing"

func TestParseSheetSpec(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		want    SheetSpec
		wantErr bool
	}{
		{"valid", "image: character.png\nframe_w: 32\nframe_h: 32\n", SheetSpec{Image: "character.png", FrameW: 32, FrameH: 32}, false},
		{"missing_image", "frame_w: 32\nframe_h: 32\n", SheetSpec{}, true},
		{"zero_frame", "image: misc.png\nframe_w: 0\nframe_h: 32\n", SheetSpec{}, true},
		{"bad_yaml", "image: [unterminated", SheetSpec{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseSheetSpec([]byte(c.data))
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseSheetSpec() err = %v, wantErr %v", err, c.wantErr)
			}
			if !c.wantErr && got != c.want {
				t.Fatalf("ParseSheetSpec() = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestSheetFramesWithoutImage(t *testing.T) {
	var s *Sheet
	if s.Frames() != 0 {
		t.Fatalf("nil sheet should have no frames")
	}
	if (&Sheet{FrameW: 32, FrameH: 32}).Frames() != 0 {
		t.Fatalf("sheet without image should have no frames")
	}
}
