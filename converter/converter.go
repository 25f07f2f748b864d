package converter

import (
	"fmt"

	"imgconv/contracts"
	"imgconv/files_manager"
	"imgconv/pdf_writer"
	"imgconv/utils"
)

// Pipeline is the straight-line decode -> transform -> compose -> write
// flow. No retries, no partial-result salvage: the first decode or write
// failure aborts the whole run.
type Pipeline struct{}

func New() *Pipeline {
	return &Pipeline{}
}

var _ contracts.Converter = (*Pipeline)(nil)

// Convert runs one conversion request to completion. An output path ending
// in .pdf composes all inputs into a multi-page PDF; any other output
// converts exactly one input into the output's image format.
func (p *Pipeline) Convert(request contracts.ConversionRequest) error {
	if err := files_manager.CheckInputs(request.InputPaths); err != nil {
		return err
	}
	if err := files_manager.CheckOutputDir(request.OutputPath); err != nil {
		return err
	}

	if files_manager.IsPDF(request.OutputPath) {
		return p.convertToPDF(request)
	}
	return p.convertToImage(request)
}

func (p *Pipeline) convertToImage(request contracts.ConversionRequest) error {
	if len(request.InputPaths) != 1 {
		return fmt.Errorf("image output %s requires exactly one input file, got %d",
			request.OutputPath, len(request.InputPaths))
	}

	raster, err := DecodeImage(request.InputPaths[0])
	if err != nil {
		return err
	}
	if request.Parameters.Grayscale {
		raster = Grayscale(raster)
	}
	return SaveImage(raster, request.OutputPath, request.Parameters.JpegQuality)
}

func (p *Pipeline) convertToPDF(request contracts.ConversionRequest) error {
	// Decode everything up front so a corrupt input never leaves a
	// half-written PDF behind.
	rasters := make([]*contracts.Raster, 0, len(request.InputPaths))
	for _, path := range request.InputPaths {
		raster, err := DecodeImage(path)
		if err != nil {
			return err
		}
		rasters = append(rasters, raster)
	}

	// The embedded resolution belongs to the original pixels; read it
	// before any resizing and rescale it with the raster below.
	dpis := make([]float64, len(rasters))
	origWidths := make([]int, len(rasters))
	for i, r := range rasters {
		origWidths[i] = r.Width
		if request.Parameters.UseDPI {
			dpis[i] = utils.GetImageDPI(r.Source)
		}
	}

	// Filter order matters: widths first, then color, same as the flags
	// are documented.
	if request.Parameters.AdjustWidths {
		rasters = NormalizeWidths(rasters, request.Parameters.TargetWidth)
	}
	if request.Parameters.Grayscale {
		for i, r := range rasters {
			rasters[i] = Grayscale(r)
		}
	}

	pw := pdf_writer.NewPDFWriter()
	for i, r := range rasters {
		dpi := dpis[i]
		if dpi > 0 && r.Width != origWidths[i] {
			// Resizing changes pixel density, not the physical page size.
			dpi *= float64(r.Width) / float64(origWidths[i])
		}
		if err := pw.AddImagePage(r, dpi); err != nil {
			return err
		}
	}
	return pw.OutputFile(request.OutputPath)
}
