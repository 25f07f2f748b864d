package converter

import (
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"imgconv/contracts"
	"imgconv/files_manager"
)

// DefaultJPEGQuality is used when the caller does not set a quality.
const DefaultJPEGQuality = 75

// SaveImage encodes a single raster into the format implied by the output
// extension. JPEG, PNG, GIF, TIFF and BMP go through the imaging encoder,
// WebP through the chai2010 codec. Failures come back as a WriteError.
func SaveImage(r *contracts.Raster, outPath string, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	var err error
	if files_manager.HasExtension(outPath, ".webp") {
		err = saveWebP(r, outPath, quality)
	} else {
		err = imaging.Save(r.Img, outPath, imaging.JPEGQuality(quality))
	}
	if err != nil {
		return &contracts.WriteError{Path: outPath, Err: err}
	}
	return nil
}

func saveWebP(r *contracts.Raster, outPath string, quality int) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := webp.Encode(f, r.Img, &webp.Options{Quality: float32(quality)}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
