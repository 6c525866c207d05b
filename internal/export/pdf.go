package export

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// PDFAssembler places the bitmap on a single page using Fit.
type PDFAssembler struct{}

var _ Assembler = PDFAssembler{}

func (PDFAssembler) Assemble(w io.Writer, img image.Image, paper Paper) error {
	b := img.Bounds()
	if b.Empty() {
		return errors.New("empty image")
	}
	pg, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: paper.Width, URy: paper.Height}, pdf.V1_7, nil)
	if err != nil {
		return errors.Wrap(err, "starting pdf")
	}

	pl := Fit(float64(b.Dx()), float64(b.Dy()), paper.Width, paper.Height)
	pg.PushGraphicsState()
	pg.Transform(matrix.Scale(pl.Width, pl.Height).Mul(matrix.Translate(pl.X, pl.Y)))
	pg.DrawXObject(&pdfimage.PNG{Data: img})
	pg.PopGraphicsState()

	if err := pg.Close(); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}
