package workbook

import "fmt"

// PlacedBlock is a block fixed at a position with its rendered size.
// X and Y are offsets from the page's top-left corner in points.
type PlacedBlock struct {
	Block  Block
	X, Y   float64
	Width  float64
	Height float64
}

// Page holds the blocks placed on one output page.
type Page struct {
	Ordinal int // 1-based
	Blocks  []PlacedBlock
}

// OverflowWarning records a block whose intrinsic height exceeds a
// full page's content height. The block is placed anyway and
// overflows; it is never split.
type OverflowWarning struct {
	Page   int
	Height float64
	Limit  float64
}

func (w OverflowWarning) String() string {
	return fmt.Sprintf("page %d: block height %.1fpt exceeds content height %.1fpt; placed overflowing", w.Page, w.Height, w.Limit)
}

// Document is the laid-out result: ordered pages plus the geometry
// they were laid out against.
type Document struct {
	Geometry Geometry
	Pages    []*Page
	Warnings []OverflowWarning
}

// Engine converts an ordered block sequence into a Document. It keeps
// a cursor (current page, vertical offset) and never adds implicit
// spacing between blocks; gaps are only explicit Spacer blocks.
type Engine struct {
	measurer TextMeasurer
}

// NewEngine creates an Engine measuring text with m.
func NewEngine(m TextMeasurer) *Engine {
	return &Engine{measurer: m}
}

// Layout places blocks onto pages. Content flows top to bottom; a
// block that does not fit the remaining room starts a new page. A
// PageBreak closes the current page unconditionally, so consecutive
// breaks produce empty pages.
func (e *Engine) Layout(blocks []Block, geo Geometry) (*Document, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrNoBlocks
	}

	doc := &Document{Geometry: geo}
	page := doc.newPage()
	cursor := 0.0 // vertical offset from top margin
	limit := geo.ContentHeight()

	for _, b := range blocks {
		if _, isBreak := b.(PageBreak); isBreak {
			page = doc.newPage()
			cursor = 0
			continue
		}

		w, h, err := e.blockSize(b, geo)
		if err != nil {
			return nil, err
		}

		if h > limit-cursor {
			// Not enough room: open a new page and place at its top.
			// Avoid a pointless page switch when the current one is
			// still empty (the oversized-block case at top of page).
			if cursor > 0 {
				page = doc.newPage()
				cursor = 0
			}
			if h > limit {
				doc.Warnings = append(doc.Warnings, OverflowWarning{
					Page:   page.Ordinal,
					Height: h,
					Limit:  limit,
				})
			}
		}

		page.Blocks = append(page.Blocks, PlacedBlock{
			Block:  b,
			X:      geo.Margin,
			Y:      geo.Margin + cursor,
			Width:  w,
			Height: h,
		})
		cursor += h
	}

	return doc, nil
}

// newPage appends an empty page and returns it.
func (d *Document) newPage() *Page {
	p := &Page{Ordinal: len(d.Pages) + 1}
	d.Pages = append(d.Pages, p)
	return p
}

// blockSize computes a block's intrinsic rendered size at content
// width.
func (e *Engine) blockSize(b Block, geo Geometry) (w, h float64, err error) {
	cw := geo.ContentWidth()
	switch blk := b.(type) {
	case Heading:
		lines := wrapText(blk.Text, headingFont(blk.Level), cw, e.measurer)
		return cw, float64(len(lines)) * headingFont(blk.Level).Leading, nil
	case Paragraph:
		font := paragraphFont(blk)
		lines := wrapText(blk.Text, font, cw, e.measurer)
		return cw, float64(len(lines)) * font.Leading, nil
	case Image:
		iw, ih := scaledImageSize(blk)
		return iw, ih, nil
	case Table:
		if err := validateTable(blk); err != nil {
			return 0, 0, err
		}
		return sum(blk.ColWidths), blk.Height(), nil
	case Spacer:
		return cw, blk.Height, nil
	case Rule:
		return cw, ruleHeight, nil
	default:
		return 0, 0, fmt.Errorf("layout: unknown block type %T", b)
	}
}

// scaledImageSize applies the image scaling algorithm. In aspect mode
// the rendered box never exceeds MaxWidth x MaxHeight and keeps the
// source ratio; in stretch mode the box dimensions are used verbatim.
func scaledImageSize(img Image) (w, h float64) {
	if img.Mode == ScaleStretch || img.Raster == nil || img.Raster.Width == 0 || img.Raster.Height == 0 {
		return img.MaxWidth, img.MaxHeight
	}
	srcW := float64(img.Raster.Width)
	srcH := float64(img.Raster.Height)
	scale := img.MaxWidth / srcW
	if s := img.MaxHeight / srcH; s < scale {
		scale = s
	}
	return srcW * scale, srcH * scale
}

// validateTable checks shape consistency before sizing.
func validateTable(t Table) error {
	cols := len(t.ColWidths)
	for i, row := range t.Rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadTableShape, i, len(row), cols)
		}
	}
	return nil
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
