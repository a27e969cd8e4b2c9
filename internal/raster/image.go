package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Decode reads an image file into a Buffer. Grayscale sources become a
// single-channel buffer, everything else three channels.
func Decode(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage copies pixel data into a Buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		b := &Buffer{W: w, H: h, C: 1, Pix: make([]float64, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.Pix[y*w+x] = float64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return b
	}

	b := &Buffer{W: w, H: h, C: 3, Pix: make([]float64, w*h*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			b.Pix[i] = float64(r >> 8)
			b.Pix[i+1] = float64(g >> 8)
			b.Pix[i+2] = float64(bl >> 8)
		}
	}
	return b
}

// ToImage converts a Buffer back to a stdlib image, clamping samples
// into [0, 255]. Single-channel buffers produce *image.Gray, everything
// else *image.RGBA (extra channels beyond three are dropped).
func ToImage(b *Buffer) image.Image {
	if b.C == 1 {
		img := image.NewGray(image.Rect(0, 0, b.W, b.H))
		for y := 0; y < b.H; y++ {
			for x := 0; x < b.W; x++ {
				img.SetGray(x, y, color.Gray{Y: clamp8(b.At(x, y, 0))})
			}
		}
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			px := color.RGBA{A: 255}
			px.R = clamp8(b.At(x, y, 0))
			if b.C > 1 {
				px.G = clamp8(b.At(x, y, 1))
			}
			if b.C > 2 {
				px.B = clamp8(b.At(x, y, 2))
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// Encode writes the buffer to path, choosing the codec by extension
// (.png, .jpg/.jpeg, .gif).
func Encode(path string, b *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img := ToImage(b)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	case ".gif":
		return gif.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

// Prescale caps the working size of b at maxSize pixels on the longer
// side using nearest-neighbor scaling. Buffers already within the cap
// come back unchanged.
func Prescale(b *Buffer, maxSize int) *Buffer {
	if maxSize < 1 || (b.W <= maxSize && b.H <= maxSize) {
		return b
	}

	longest := b.W
	if b.H > longest {
		longest = b.H
	}
	scale := float64(maxSize) / float64(longest)
	w := int(float64(b.W) * scale)
	h := int(float64(b.H) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	src := ToImage(b)
	var dst xdraw.Image
	if b.C == 1 {
		dst = image.NewGray(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
