package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestImageRoundTripGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x*10 + y)})
		}
	}

	b := FromImage(img)
	if b.C != 1 {
		t.Fatalf("expected 1 channel for gray input, got %d", b.C)
	}

	back, ok := ToImage(b).(*image.Gray)
	if !ok {
		t.Fatal("expected *image.Gray back")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if back.GrayAt(x, y) != img.GrayAt(x, y) {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, img.GrayAt(x, y), back.GrayAt(x, y))
			}
		}
	}
}

func TestImageRoundTripRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 128, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 64, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	b := FromImage(img)
	if b.C != 3 {
		t.Fatalf("expected 3 channels, got %d", b.C)
	}

	back, ok := ToImage(b).(*image.RGBA)
	if !ok {
		t.Fatal("expected *image.RGBA back")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want, got := img.RGBAAt(x, y), back.RGBAAt(x, y)
			if want != got {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	b := ramp(6, 4)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Encode(path, b); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	back, err := Decode(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if back.W != b.W || back.H != b.H {
		t.Errorf("shape changed across encode/decode: %dx%d -> %dx%d", b.W, b.H, back.W, back.H)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	b := ramp(2, 2)
	if err := Encode(filepath.Join(t.TempDir(), "out.webp"), b); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPrescale(t *testing.T) {
	b := ramp(100, 50)

	scaled := Prescale(b, 20)
	if scaled.W != 20 || scaled.H != 10 {
		t.Errorf("expected 20x10, got %dx%d", scaled.W, scaled.H)
	}
	if scaled.C != 1 {
		t.Errorf("channel count changed: %d", scaled.C)
	}

	same := Prescale(b, 200)
	if same != b {
		t.Error("buffer within cap should come back unchanged")
	}
}
