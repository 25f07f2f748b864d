package converter

import (
	"errors"
	"path/filepath"
	"testing"

	"imgconv/contracts"
)

func TestSaveImagePNGRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	src := testRaster(5, 4)

	outPath := filepath.Join(tmpDir, "out.png")
	if err := SaveImage(src, outPath, 0); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	back, err := DecodeImage(outPath)
	if err != nil {
		t.Fatalf("decoding written image: %v", err)
	}
	if back.Width != src.Width || back.Height != src.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", back.Width, back.Height, src.Width, src.Height)
	}

	// PNG is lossless, so pixels must survive exactly.
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			wr, wg, wb, wa := src.Img.At(x, y).RGBA()
			gr, gg, gb, ga := back.Img.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb || wa != ga {
				t.Fatalf("pixel (%d,%d) changed: got %v, want %v",
					x, y, back.Img.At(x, y), src.Img.At(x, y))
			}
		}
	}
}

func TestSaveImageFormats(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"jpeg", "out.jpg"},
		{"png", "out.png"},
		{"gif", "out.gif"},
		{"bmp", "out.bmp"},
		{"tiff", "out.tif"},
		{"webp", "out.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			src := testRaster(9, 6)
			outPath := filepath.Join(tmpDir, tt.file)

			if err := SaveImage(src, outPath, 85); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			back, err := DecodeImage(outPath)
			if err != nil {
				t.Fatalf("decoding written image: %v", err)
			}
			if back.Width != src.Width || back.Height != src.Height {
				t.Errorf("dimensions = %dx%d, want %dx%d",
					back.Width, back.Height, src.Width, src.Height)
			}
		})
	}
}

func TestSaveImageGrayJPEG(t *testing.T) {
	tmpDir := t.TempDir()
	gray := Grayscale(testRaster(6, 6))

	outPath := filepath.Join(tmpDir, "gray.jpg")
	if err := SaveImage(gray, outPath, 0); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	back, err := DecodeImage(outPath)
	if err != nil {
		t.Fatalf("decoding written image: %v", err)
	}
	if back.Mode != contracts.ModeGray {
		t.Errorf("mode = %q, want %q (single-channel JPEG)", back.Mode, contracts.ModeGray)
	}
}

func TestSaveImageWriteErrors(t *testing.T) {
	tmpDir := t.TempDir()
	src := testRaster(2, 2)

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(tmpDir, "no", "such", "dir", "out.png")},
		{"unsupported format", filepath.Join(tmpDir, "out.xyz")},
		{"missing directory webp", filepath.Join(tmpDir, "nope", "out.webp")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaveImage(src, tt.path, 0)
			if err == nil {
				t.Fatal("expected a write error")
			}
			var writeErr *contracts.WriteError
			if !errors.As(err, &writeErr) {
				t.Fatalf("expected *contracts.WriteError, got %T: %v", err, err)
			}
			if writeErr.Path != tt.path {
				t.Errorf("error path = %q, want %q", writeErr.Path, tt.path)
			}
		})
	}
}
