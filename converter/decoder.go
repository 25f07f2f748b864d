package converter

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"imgconv/contracts"
	"imgconv/files_manager"
)

// DecodeImage loads one input file into a Raster. HEIF/HEIC containers go
// through libheif; everything else is sniffed and decoded by the registered
// codecs (stdlib jpeg/png/gif, x/image tiff/bmp, chai2010 webp). Any failure
// comes back as a DecodeError carrying the offending path.
func DecodeImage(path string) (*contracts.Raster, error) {
	var (
		img image.Image
		err error
	)
	if files_manager.IsHEIF(path) {
		img, err = decodeHEIF(path)
	} else {
		img, err = decodeRegistered(path)
	}
	if err != nil {
		return nil, &contracts.DecodeError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	return &contracts.Raster{
		Img:    img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Mode:   detectMode(img),
		Source: path,
	}, nil
}

func decodeRegistered(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func detectMode(img image.Image) contracts.ColorMode {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return contracts.ModeGray
	}
	return contracts.ModeRGB
}
