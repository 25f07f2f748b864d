package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"

	"imgconv/files_manager"
)

// GetImageDPI returns the resolution embedded in an input image, or 0 when
// none is recorded. JPEG and TIFF carry it in EXIF, PNG in the pHYs chunk.
// A zero return means the caller should fall back to the 1pt-per-pixel
// page mapping.
func GetImageDPI(path string) float64 {
	if files_manager.HasExtension(path, ".png") {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0
		}
		dpi, err := GetDPIfromPNG(data)
		if err != nil {
			return 0
		}
		return dpi
	}

	dpi, err := GetEXIFDPI(path)
	if err != nil {
		return 0
	}
	return dpi
}

// GetEXIFDPI extracts XResolution from EXIF metadata (JPEG, TIFF).
func GetEXIFDPI(filePath string) (float64, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}

	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		return 0, fmt.Errorf("EXIF not found: %v", err)
	}

	im := exifcommon.NewIfdMapping()
	ti := exif.NewTagIndex()
	if err := exifcommon.LoadStandardIfds(im); err != nil {
		return 0, err
	}

	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return 0, err
	}

	dpi := 0.0

	if tag, err := index.RootIfd.FindTagWithName("XResolution"); err == nil {
		if val, err := tag[0].Value(); err == nil {
			if rats, ok := val.([]exifcommon.Rational); ok && len(rats) > 0 && rats[0].Denominator != 0 {
				dpi = float64(rats[0].Numerator) / float64(rats[0].Denominator)
			}
		}
	}

	if dpi == 0 {
		return 0, fmt.Errorf("no XResolution tag in %s", filePath)
	}

	// ResolutionUnit 3 means centimeters.
	if tag, err := index.RootIfd.FindTagWithName("ResolutionUnit"); err == nil {
		if val, err := tag[0].Value(); err == nil {
			if units, ok := val.([]uint16); ok && len(units) > 0 && units[0] == 3 {
				dpi *= 2.54
			}
		}
	}

	return dpi, nil
}

// GetDPIfromPNG scans the chunk list for pHYs and converts pixels-per-meter
// to dots-per-inch. Files without a usable pHYs chunk report 72, the PNG
// convention.
func GetDPIfromPNG(data []byte) (float64, error) {
	const physChunk = "pHYs"
	const signatureLen = 8

	if len(data) < signatureLen {
		return 0, fmt.Errorf("not a PNG: too short")
	}
	buf := bytes.NewReader(data[signatureLen:])

	for {
		var length uint32
		if err := binary.Read(buf, binary.BigEndian, &length); err != nil {
			break
		}

		chunkType := make([]byte, 4)
		if _, err := io.ReadFull(buf, chunkType); err != nil {
			break
		}

		if string(chunkType) == physChunk {
			var pxPerUnitX, pxPerUnitY uint32
			var unit byte

			if err := binary.Read(buf, binary.BigEndian, &pxPerUnitX); err != nil {
				return 0, err
			}
			if err := binary.Read(buf, binary.BigEndian, &pxPerUnitY); err != nil {
				return 0, err
			}
			if err := binary.Read(buf, binary.BigEndian, &unit); err != nil {
				return 0, err
			}

			if unit == 1 {
				// meters -> inches
				return float64(pxPerUnitX) * 0.0254, nil
			}
			break // unit = 0 (unknown)
		}

		// skip chunk data + CRC
		if _, err := buf.Seek(int64(length)+4, io.SeekCurrent); err != nil {
			break
		}
	}

	// Not found, fallback
	return 72, nil
}
