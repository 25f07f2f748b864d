package pdf_writer

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/phpdave11/gofpdf"

	"imgconv/contracts"
)

const pointsPerInch = 72.0

// PDFWriter assembles decoded rasters into a single document, one full-bleed
// page per image. Pages appear exactly in the order the images are added;
// that ordering is the only sequencing guarantee.
type PDFWriter struct {
	pdf       *gofpdf.Fpdf
	pageCount int
}

func NewPDFWriter() *PDFWriter {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt"})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &PDFWriter{pdf: pdf}
}

// AddImagePage appends one page sized to the raster and draws the image to
// fill it with no margin. With dpi <= 0 one PDF point maps to one pixel;
// a positive dpi scales the page to the image's physical size instead.
func (pw *PDFWriter) AddImagePage(r *contracts.Raster, dpi float64) error {
	w := float64(r.Width)
	h := float64(r.Height)
	if dpi > 0 {
		w = w * pointsPerInch / dpi
		h = h * pointsPerInch / dpi
	}

	// PNG keeps the embedded pixels lossless regardless of the source
	// format, and carries both gray and RGB rasters.
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Img); err != nil {
		return fmt.Errorf("encoding page image %s: %v", r.Source, err)
	}

	name := fmt.Sprintf("img_%d", pw.pageCount)
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	pw.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
	pw.pdf.RegisterImageOptionsReader(name, opts, &buf)
	pw.pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")

	if pw.pdf.Err() {
		return fmt.Errorf("drawing page image %s: %v", r.Source, pw.pdf.Error())
	}
	pw.pageCount++
	return nil
}

// PageCount returns the number of pages added so far.
func (pw *PDFWriter) PageCount() int {
	return pw.pageCount
}

// Output serializes the assembled document to w.
func (pw *PDFWriter) Output(w io.Writer) error {
	if err := pw.pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF document: %v", err)
	}
	return nil
}

// OutputFile serializes the assembled document to path. Failures come back
// as a WriteError naming the destination.
func (pw *PDFWriter) OutputFile(path string) error {
	if err := pw.pdf.OutputFileAndClose(path); err != nil {
		return &contracts.WriteError{Path: path, Err: err}
	}
	return nil
}
