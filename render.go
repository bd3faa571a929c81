package workbook

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// DocumentRenderer persists a laid-out Document as one output file.
type DocumentRenderer interface {
	Render(doc *Document, path string) error
}

// Compile-time interface checks.
var (
	_ DocumentRenderer = (*fpdfRenderer)(nil)
	_ TextMeasurer     = (*fpdfMeasurer)(nil)
)

// Greyscale and accent colors used by table rule work, matching the
// workbook's typeset.
var (
	colorBlack      = [3]int{0, 0, 0}
	colorGrey       = [3]int{128, 128, 128}
	colorLightGrey  = [3]int{211, 211, 211}
	colorWhiteSmoke = [3]int{245, 245, 245}
	colorLinkBlue   = [3]int{0, 0, 255}
)

// Table stroke widths in points.
const (
	innerGridWidth = 0.5
	boxWidth       = 0.75
	staffLineWidth = 0.8
	hairlineWidth  = 0.6
	cellPadding    = 4.0
)

// fpdfMeasurer reads core-font string widths from a scratch fpdf
// instance. It is the production TextMeasurer.
type fpdfMeasurer struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewCoreFontMeasurer returns the production TextMeasurer, backed by
// the same core-font metrics the renderer draws with. Callers driving
// NewEngine directly use this to keep layout and render in agreement.
func NewCoreFontMeasurer() TextMeasurer {
	return newFpdfMeasurer()
}

func newFpdfMeasurer() *fpdfMeasurer {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	return &fpdfMeasurer{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// TextWidth returns the rendered width of text in the given font.
func (m *fpdfMeasurer) TextWidth(text string, font Font) float64 {
	m.pdf.SetFont(font.Family, font.Style, font.Size)
	return m.pdf.GetStringWidth(m.translate(text))
}

// fpdfRenderer draws placed blocks at their recorded positions. It
// performs no layout decisions of its own; pagination and sizing are
// entirely the engine's.
type fpdfRenderer struct{}

func newFpdfRenderer() *fpdfRenderer {
	return &fpdfRenderer{}
}

// Render writes the document to path. The file is written to a
// sibling temp file and renamed into place, so a failed render never
// leaves a partial artifact behind.
func (r *fpdfRenderer) Render(doc *Document, path string) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: doc.Geometry.PageWidth, Ht: doc.Geometry.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	p := &painter{pdf: pdf, tr: tr, measurer: &fpdfMeasurer{pdf: pdf, translate: tr}}
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, placed := range page.Blocks {
			p.draw(placed)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return writeAtomic(path, buf.Bytes())
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".workbook-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// painter draws individual placed blocks onto the current page.
type painter struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	measurer TextMeasurer
}

func (p *painter) draw(placed PlacedBlock) {
	switch blk := placed.Block.(type) {
	case Heading:
		p.drawWrapped(blk.Text, headingFont(blk.Level), placed)
	case Paragraph:
		p.drawWrapped(blk.Text, paragraphFont(blk), placed)
	case Image:
		p.drawImage(blk, placed)
	case Table:
		p.drawTable(blk, placed)
	case Rule:
		p.setStroke(hairlineWidth, colorGrey)
		y := placed.Y + placed.Height/2
		p.pdf.Line(placed.X, y, placed.X+placed.Width, y)
	case Spacer:
		// Occupies space only.
	}
}

// drawWrapped re-wraps text with the render-time metrics and draws it
// word by word, switching fonts at style boundaries.
func (p *painter) drawWrapped(text string, base Font, placed PlacedBlock) {
	p.pdf.SetTextColor(colorBlack[0], colorBlack[1], colorBlack[2])
	lines := wrapText(text, base, placed.Width, p.measurer)
	spaceWidth := p.measurer.TextWidth(" ", base)
	// Baseline sits at ~80% of the font size below the line top.
	ascent := base.Size * 0.8

	for i, line := range lines {
		x := placed.X
		baseline := placed.Y + float64(i)*base.Leading + ascent
		for _, w := range line.Words {
			font := base.styled(w.Bold, w.Italic)
			p.pdf.SetFont(font.Family, font.Style, font.Size)
			p.pdf.Text(x, baseline, p.tr(w.Text))
			x += w.Width + spaceWidth
		}
	}
}

func (p *painter) drawImage(img Image, placed PlacedBlock) {
	if img.Raster == nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: img.Raster.Format}
	p.pdf.RegisterImageOptionsReader(img.Key, opts, bytes.NewReader(img.Raster.Data))
	p.pdf.ImageOptions(img.Key, placed.X, placed.Y, placed.Width, placed.Height, false, opts, 0, "")
}

func (p *painter) drawTable(t Table, placed PlacedBlock) {
	switch t.Style {
	case StyleStaff:
		p.drawStaffGrid(t, placed)
	case StylePlaceholder:
		p.drawPlaceholderBox(t, placed)
	default:
		p.drawGrid(t, placed)
	}
}

// drawGrid renders the standard data table: optional header band,
// inner grid, outer box, optional zebra striping.
func (p *painter) drawGrid(t Table, placed PlacedBlock) {
	size := t.FontSize
	if size == 0 {
		size = defaultTableFontSize
	}
	tableW := sum(t.ColWidths)
	bodyH := float64(len(t.Rows)) * t.RowHeight

	for i, row := range t.Rows {
		rowY := placed.Y + float64(i)*t.RowHeight
		header := t.HeaderRow && i == 0
		if header {
			p.fillRow(placed.X, rowY, tableW, t.RowHeight, colorLightGrey)
		} else if t.Zebra && i%2 == 1 {
			p.fillRow(placed.X, rowY, tableW, t.RowHeight, colorWhiteSmoke)
		}

		style := ""
		if header {
			style = "B"
		}
		p.pdf.SetFont("Helvetica", style, size)
		p.pdf.SetTextColor(colorBlack[0], colorBlack[1], colorBlack[2])

		x := placed.X
		for c, cell := range row {
			baseline := rowY + t.RowHeight/2 + size*0.35
			p.pdf.Text(x+cellPadding, baseline, p.tr(cell))
			x += t.ColWidths[c]
		}
	}

	// Inner grid: horizontal separators and column rules.
	p.setStroke(innerGridWidth, colorGrey)
	for i := 1; i < len(t.Rows); i++ {
		y := placed.Y + float64(i)*t.RowHeight
		p.pdf.Line(placed.X, y, placed.X+tableW, y)
	}
	x := placed.X
	for c := 0; c < len(t.ColWidths)-1; c++ {
		x += t.ColWidths[c]
		p.pdf.Line(x, placed.Y, x, placed.Y+bodyH)
	}

	p.setStroke(boxWidth, colorBlack)
	p.pdf.Rect(placed.X, placed.Y, tableW, bodyH, "D")
}

// drawStaffGrid renders blank staff lines: one rule above each row.
func (p *painter) drawStaffGrid(t Table, placed PlacedBlock) {
	p.setStroke(staffLineWidth, colorBlack)
	for i := range t.Rows {
		y := placed.Y + float64(i)*t.RowHeight
		p.pdf.Line(placed.X, y, placed.X+placed.Width, y)
	}
}

// drawPlaceholderBox renders the centered substitute panel. Row
// styling is positional, mirroring the fixed wording: title bold,
// URL small and blue, trailing note small italic.
func (p *painter) drawPlaceholderBox(t Table, placed PlacedBlock) {
	tableW := sum(t.ColWidths)
	bodyH := float64(len(t.Rows)) * t.RowHeight

	p.fillRow(placed.X, placed.Y, tableW, bodyH, colorWhiteSmoke)
	p.fillRow(placed.X, placed.Y, tableW, t.RowHeight, colorLightGrey)
	p.setStroke(1.0, colorGrey)
	p.pdf.Rect(placed.X, placed.Y, tableW, bodyH, "D")

	for i, row := range t.Rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		style, size := "", 10.0
		color := colorBlack
		switch i {
		case 0:
			style, size = "B", 12
		case 3:
			size = 9
			color = colorLinkBlue
		case len(t.Rows) - 1:
			style, size = "I", 8
		}
		p.pdf.SetFont("Helvetica", style, size)
		p.pdf.SetTextColor(color[0], color[1], color[2])

		text := p.tr(row[0])
		textW := p.pdf.GetStringWidth(text)
		x := placed.X + (tableW-textW)/2
		baseline := placed.Y + float64(i)*t.RowHeight + t.RowHeight/2 + size*0.35
		p.pdf.Text(x, baseline, text)
	}
}

func (p *painter) fillRow(x, y, w, h float64, color [3]int) {
	p.pdf.SetFillColor(color[0], color[1], color[2])
	p.pdf.Rect(x, y, w, h, "F")
}

func (p *painter) setStroke(width float64, color [3]int) {
	p.pdf.SetLineWidth(width)
	p.pdf.SetDrawColor(color[0], color[1], color[2])
}
