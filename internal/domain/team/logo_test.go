package team

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeLogo(t *testing.T, logo string) image.Image {
	t.Helper()
	payload := strings.TrimPrefix(logo, "data:image/png;base64,")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decode logo payload: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode logo png: %v", err)
	}
	return img
}

func TestNormalizeLogo_DownscalesLargeImages(t *testing.T) {
	logo, err := NormalizeLogo(encodePNG(t, 512, 256))
	if err != nil {
		t.Fatalf("normalize logo: %v", err)
	}

	img := decodeLogo(t, logo)
	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 64 {
		t.Fatalf("expected 128x64 logo, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeLogo_SmallImagePassesThrough(t *testing.T) {
	logo, err := NormalizeLogo("data:image/png;base64," + encodePNG(t, 32, 32))
	if err != nil {
		t.Fatalf("normalize logo: %v", err)
	}
	img := decodeLogo(t, logo)
	if img.Bounds().Dx() != 32 {
		t.Fatalf("small logos must not be resized, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestNormalizeLogo_RejectsGarbage(t *testing.T) {
	if _, err := NormalizeLogo("not-base64!!!"); !errors.Is(err, ErrInvalidLogo) {
		t.Fatalf("expected invalid logo error, got %v", err)
	}
	if _, err := NormalizeLogo(base64.StdEncoding.EncodeToString([]byte("plain text"))); !errors.Is(err, ErrInvalidLogo) {
		t.Fatalf("expected invalid logo error for non-image payload, got %v", err)
	}

	logo, err := NormalizeLogo("   ")
	if err != nil || logo != "" {
		t.Fatalf("empty input clears the logo, got %q err=%v", logo, err)
	}
}
