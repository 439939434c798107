package preview

import (
	"bytes"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/logging"
)

// WritePDF writes a contact sheet for the atlas:
// the outlined atlas image on the first page, followed by a listing of
// all frames.
func WritePDF(a *atlastool.Atlas, w io.Writer) error {
	logging.Debug("Render PDF for atlas %q", a.Sheet.Name)
	pdf := setupPDF(a.Sheet)

	pdf.AddPage()
	err := addImage(pdf, a)
	if err != nil {
		return err
	}

	pdf.AddPage()
	listFrames(pdf, a.Sheet)

	return pdf.Output(w)
}

func setupPDF(s *atlastool.SpriteSheet) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("courier", "", 8)
	pdf.SetProducer("atlastool", true)
	pdf.SetTitle(s.Name, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetTextColor(127, 127, 127)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v (%dx%d, %d frames)",
			pdf.PageNo(), s.Name, s.Width, s.Height, s.FrameCount())
		pdf.SetTextColor(0, 0, 0)
	})

	return pdf
}

func addImage(pdf *gofpdf.Fpdf, a *atlastool.Atlas) error {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	var buf bytes.Buffer
	err := png.Encode(&buf, Outline(a, OutlineColor))
	if err != nil {
		return atlastool.Wrap(err, "encode atlas image")
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	// scale to the usable page width, never enlarge
	wPage, _ := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	w := wPage - left - right
	if iw := float64(a.Sheet.Width); iw < w {
		w = iw
	}

	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, left, top, w, 0, flow, opts, link, linkStr)

	return pdf.Error()
}

func listFrames(pdf *gofpdf.Fpdf, s *atlastool.SpriteSheet) {
	lineHeight := 10.0
	pdf.SetFont("courier", "B", 8)
	pdf.CellFormat(0, lineHeight, "group / frame: x y  w x h  (original, offset, center)", "B", 1, "L", false, 0, "")
	pdf.SetFont("courier", "", 8)

	for _, key := range s.Keys() {
		for i, f := range s.Sprites[key] {
			pdf.Cellf(0, lineHeight, "%v[%d]: %d %d  %dx%d  (%dx%d, %d,%d, %d,%d)",
				key, i,
				f.X, f.Y, f.Width, f.Height,
				f.OriginalWidth, f.OriginalHeight,
				f.TopLeftOffsetX, f.TopLeftOffsetY,
				f.CenterOffsetX, f.CenterOffsetY)
			pdf.Ln(lineHeight)
		}
	}
}
