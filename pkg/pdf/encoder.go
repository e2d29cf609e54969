package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// fontFamily is the only typeface the layout uses; it maps onto the PDF
// standard-14 Helvetica variants, so no font files are embedded.
const fontFamily = "Helvetica"

// Encoder renders a Document into PDF bytes on an io.Writer.
//
// Encoding the same Document twice yields byte-identical output: the
// document metadata dates are pinned instead of taken from the wall clock.
type Encoder struct{}

// NewEncoder creates a PDF encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode walks the document's command list onto a single PDF page and writes
// the result to w. Nothing is written if ctx is already cancelled; a write
// failure on w is returned as the encoding error.
func (e *Encoder) Encode(ctx context.Context, doc *Document, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	f.SetCreationDate(time.Unix(0, 0).UTC())
	f.SetModificationDate(time.Unix(0, 0).UTC())
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.AddPage()

	for _, cmd := range doc.Commands {
		switch c := cmd.(type) {
		case Text:
			e.drawText(f, c)
		case Rect:
			e.drawRect(f, c)
		case Line:
			e.drawLine(f, c)
		}
	}

	if err := f.Error(); err != nil {
		return fmt.Errorf("pdf: build page: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.Output(w); err != nil {
		return fmt.Errorf("pdf: write document: %w", err)
	}
	return nil
}

func (e *Encoder) drawText(f *fpdf.Fpdf, c Text) {
	f.SetFont(fontFamily, c.Style, c.Size)
	f.SetTextColor(c.Color.R, c.Color.G, c.Color.B)

	lineHeight := c.Size * 1.15
	align := c.Align
	if align == "" {
		align = AlignLeft
	}

	f.SetXY(c.X, c.Y)
	if c.Width > 0 {
		f.MultiCell(c.Width, lineHeight, c.Value, "", align, false)
	} else {
		f.CellFormat(0, lineHeight, c.Value, "", 0, align, false, 0, "")
	}
}

func (e *Encoder) drawRect(f *fpdf.Fpdf, c Rect) {
	f.SetFillColor(c.Fill.R, c.Fill.G, c.Fill.B)
	f.SetDrawColor(c.Stroke.R, c.Stroke.G, c.Stroke.B)
	f.SetLineWidth(1)
	if c.Radius > 0 {
		f.RoundedRect(c.X, c.Y, c.W, c.H, c.Radius, "1234", "FD")
	} else {
		f.Rect(c.X, c.Y, c.W, c.H, "FD")
	}
}

func (e *Encoder) drawLine(f *fpdf.Fpdf, c Line) {
	f.SetDrawColor(c.Color.R, c.Color.G, c.Color.B)
	f.SetLineWidth(c.Width)
	f.Line(c.X1, c.Y1, c.X2, c.Y2)
}
