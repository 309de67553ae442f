package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/codec"
	"github.com/gogpu/pix/color"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    pix.Point
		wantErr bool
	}{
		{"128x128", pix.Pt(128, 128), false},
		{"64X32", pix.Pt(64, 32), false},
		{"1x1", pix.Pt(1, 1), false},
		{"0x10", pix.ZP, true},
		{"10x-1", pix.ZP, true},
		{"10", pix.ZP, true},
		{"axb", pix.ZP, true},
		{"", pix.ZP, true},
	}
	for _, tt := range tests {
		got, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFrameParams_Validate(t *testing.T) {
	p := FrameParams{Size: "4x3", Background: "#102030"}
	if err := p.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !p.frame().Eq(pix.Rect(0, 0, 4, 3)) {
		t.Errorf("frame() = %v, want (0,0)-(4,3)", p.frame())
	}
	if p.bg != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("bg = %v", p.bg)
	}

	bad := FrameParams{Size: "4x3", Background: "nope"}
	if err := bad.validate(); err == nil {
		t.Error("validate accepted an invalid background")
	}
}

func TestThumbCmd_ValidateWorkers(t *testing.T) {
	cmd := &ThumbCmd{FrameParams: FrameParams{Size: "4x4", Background: "#000"}, Dest: "out", Workers: -1}
	if err := cmd.Validate(nil); err == nil {
		t.Error("Validate accepted negative workers")
	}
}

func TestThumbPath(t *testing.T) {
	tests := []struct {
		dest, input, want string
	}{
		{"/out", "/in/photo.jpg", "/out/photo.png"},
		{"/out", "scan.tiff", "/out/scan.png"},
		{"/out", "noext", "/out/noext.png"},
		{"/out", "a.b.gif", "/out/a.b.png"},
	}
	for _, tt := range tests {
		if got := thumbPath(tt.dest, tt.input); got != filepath.FromSlash(tt.want) {
			t.Errorf("thumbPath(%q, %q) = %q, want %q", tt.dest, tt.input, got, tt.want)
		}
	}
}

func TestThumbnail_Centres(t *testing.T) {
	img := pix.NewRGBA(pix.Rect(0, 0, 2, 2))
	red := color.RGBA{0xff, 0, 0, 0xff}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, red)
		}
	}
	bg := color.RGBA{0, 0, 0xff, 0xff}
	out := thumbnail(img, pix.Rect(0, 0, 6, 4), bg)

	inside := pix.Rect(2, 1, 4, 3)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := bg
			if (pix.Point{X: x, Y: y}).In(inside) {
				want = red
			}
			if got := out.RGBAAt(x, y); got != want {
				t.Errorf("RGBAAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestThumbnail_CropsLargeImage(t *testing.T) {
	img := pix.NewRGBA(pix.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 0xff})
		}
	}
	out := thumbnail(img, pix.Rect(0, 0, 2, 2), color.RGBA{0, 0, 0, 0xff})

	// The centre 2x2 of the source starts at (2, 2).
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := color.RGBA{uint8(x + 2), uint8(y + 2), 0, 0xff}
			if got := out.RGBAAt(x, y); got != want {
				t.Errorf("RGBAAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func readPNG(t *testing.T, name string) *pix.RGBA {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	img, err := codec.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return img
}

func TestThumbCmd_Run(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	src := pix.NewRGBA(pix.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	if err := writePNG(good, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	broken := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(broken, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := &ThumbCmd{
		FrameParams: FrameParams{Size: "40x20", Background: "#123456"},
		Inputs:      []string{good, broken},
		Dest:        filepath.Join(dir, "thumbs"),
		Workers:     2,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := cmd.Run(discard); err != nil {
		t.Fatalf("Run: %v", err)
	}

	bg := color.RGBA{0x12, 0x34, 0x56, 0xff}

	thumb := readPNG(t, filepath.Join(cmd.Dest, "good.png"))
	if got := thumb.RGBAAt(19, 9); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("centre = %v, want white", got)
	}
	if got := thumb.RGBAAt(0, 0); got != bg {
		t.Errorf("corner = %v, want background", got)
	}

	// The undecodable file becomes a framed placeholder of the same size.
	ph := readPNG(t, filepath.Join(cmd.Dest, "broken.png"))
	if !ph.Bounds().Eq(pix.Rect(0, 0, 40, 20)) {
		t.Errorf("Bounds() = %v, want 40x20", ph.Bounds())
	}
	if got := ph.RGBAAt(1, 1); got != bg {
		t.Errorf("RGBAAt(1, 1) = %v, want background", got)
	}
}

func TestThumbCmd_RunReportsWriteErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "x.png")
	if err := writePNG(in, pix.NewRGBA(pix.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	// A directory where the thumbnail file should go makes os.Create fail.
	dest := filepath.Join(dir, "thumbs")
	if err := os.MkdirAll(filepath.Join(dest, "x.png"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	cmd := &ThumbCmd{
		FrameParams: FrameParams{Size: "4x4", Background: "#000"},
		Inputs:      []string{in},
		Dest:        dest,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := cmd.Run(discard); err == nil {
		t.Error("Run succeeded despite an unwritable output")
	}
}

func TestPlaceholderCmd_Run(t *testing.T) {
	dir := t.TempDir()
	cmd := &PlaceholderCmd{
		FrameParams: FrameParams{Size: "8x8", Background: "#fff"},
		Output:      filepath.Join(dir, "p.png"),
		Border:      "",
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := cmd.Run(discard); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := readPNG(t, cmd.Output)
	if got := out.RGBAAt(0, 0); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("corner = %v, want white without a border", got)
	}
}
