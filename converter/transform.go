package converter

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"imgconv/contracts"
)

// Grayscale converts a raster to single-channel luminance. A raster that is
// already grayscale is returned unchanged, so applying the transform twice
// yields the same result as applying it once.
func Grayscale(r *contracts.Raster) *contracts.Raster {
	if r.Mode == contracts.ModeGray {
		return r
	}
	lum := imaging.Grayscale(r.Img)
	return &contracts.Raster{
		Img:    repackGray(lum),
		Width:  r.Width,
		Height: r.Height,
		Mode:   contracts.ModeGray,
		Source: r.Source,
	}
}

// NormalizeWidths rescales every raster in the batch to one shared width,
// preserving each image's aspect ratio. When targetWidth is zero or negative
// the narrowest raster in the batch sets the width; heights come out as
// round(origHeight * width / origWidth).
func NormalizeWidths(rasters []*contracts.Raster, targetWidth int) []*contracts.Raster {
	if len(rasters) == 0 {
		return rasters
	}

	width := targetWidth
	if width <= 0 {
		width = rasters[0].Width
		for _, r := range rasters[1:] {
			if r.Width < width {
				width = r.Width
			}
		}
	}

	out := make([]*contracts.Raster, len(rasters))
	for i, r := range rasters {
		if r.Width == width {
			out[i] = r
			continue
		}
		height := int(math.Round(float64(r.Height) * float64(width) / float64(r.Width)))
		resized := imaging.Resize(r.Img, width, height, imaging.Lanczos)

		var img image.Image = resized
		if r.Mode == contracts.ModeGray {
			img = repackGray(resized)
		}
		out[i] = &contracts.Raster{
			Img:    img,
			Width:  width,
			Height: height,
			Mode:   r.Mode,
			Source: r.Source,
		}
	}
	return out
}

// repackGray collapses an NRGBA image with equal channels into a true
// single-channel image so downstream encoders emit grayscale output.
func repackGray(src *image.NRGBA) *image.Gray {
	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)
	return gray
}
