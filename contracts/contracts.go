package contracts

import "image"

// ColorMode is the pixel interpretation of a decoded raster.
type ColorMode string

const (
	ModeRGB  ColorMode = "rgb"
	ModeGray ColorMode = "gray"
)

// Raster is one decoded input image plus the metadata the pipeline needs.
// It has no identity beyond its position in the input sequence.
type Raster struct {
	Img    image.Image
	Width  int
	Height int
	Mode   ColorMode
	Source string
}

// InputFlags carries the conversion parameters mapped from CLI flags.
type InputFlags struct {
	Grayscale    bool
	AdjustWidths bool
	TargetWidth  int
	JpegQuality  int
	UseDPI       bool
}

// ConversionRequest is created once per invocation and never mutated.
type ConversionRequest struct {
	InputPaths []string
	OutputPath string
	Parameters InputFlags
}

type Converter interface {
	Convert(request ConversionRequest) error
}
