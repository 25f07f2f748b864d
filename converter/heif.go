package converter

import (
	"fmt"
	"image"

	"github.com/strukturag/libheif/go/heif"
)

// decodeHEIF extracts the primary image of a HEIF/HEIC container as
// interleaved RGB raw pixels and wraps them into a standard image.Image.
func decodeHEIF(path string) (image.Image, error) {
	ctx, err := heif.NewContext()
	if err != nil {
		return nil, fmt.Errorf("libheif context: %v", err)
	}
	if err := ctx.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading container: %v", err)
	}

	handle, err := ctx.GetPrimaryImageHandle()
	if err != nil {
		return nil, fmt.Errorf("primary image handle: %v", err)
	}

	heifImg, err := handle.DecodeImage(heif.ColorspaceRGB, heif.ChromaInterleavedRGB, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %v", err)
	}

	img, err := heifImg.GetImage()
	if err != nil {
		return nil, fmt.Errorf("extracting pixels: %v", err)
	}
	return img, nil
}
