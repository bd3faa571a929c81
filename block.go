package workbook

// Block is one abstract content unit placed during layout. Concrete
// variants are Heading, Paragraph, Image, Table, Spacer, Rule and
// PageBreak. The marker method keeps the set closed.
type Block interface {
	isBlock()
}

// Heading levels. Level 0 is the document title.
const (
	LevelTitle = 0
	LevelH1    = 1
	LevelH2    = 2
	LevelH3    = 3
)

// Heading is a one-or-more-line heading at a given level.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is body text, wrapped at content width during layout.
// Text may contain inline Markdown emphasis (*italic*, **bold**).
type Paragraph struct {
	Text string
	// Italic renders the whole paragraph oblique, as used for notice
	// and caption lines.
	Italic bool
}

// ScaleMode selects how an image fills its bounding box.
type ScaleMode int

const (
	// ScaleAspect fits the image inside the box preserving the source
	// aspect ratio: scale = min(maxW/srcW, maxH/srcH).
	ScaleAspect ScaleMode = iota
	// ScaleStretch uses the box dimensions verbatim, ignoring the
	// source aspect ratio.
	ScaleStretch
)

// Image is a placed raster image bounded by MaxWidth x MaxHeight.
type Image struct {
	Key       string // registration name for the renderer, unique per raster
	Raster    *RasterImage
	MaxWidth  float64
	MaxHeight float64
	Mode      ScaleMode
}

// TableStyle selects the rule work a table is drawn with.
type TableStyle int

const (
	// StyleGrid draws a header band, inner grid and outer box. The
	// standard style for data tables.
	StyleGrid TableStyle = iota
	// StyleStaff draws only a top rule per row: blank staff lines for
	// written exercises.
	StyleStaff
	// StylePlaceholder draws a boxed, centered panel on a light
	// background, used when a real excerpt is unavailable.
	StylePlaceholder
	// StyleRule is the single hairline used by Rule blocks.
	StyleRule
)

// Table is a grid of fixed-height rows. ColWidths must sum to the
// content-area width; Rows must be rectangular.
type Table struct {
	Rows      [][]string
	ColWidths []float64
	RowHeight float64
	Style     TableStyle
	// HeaderRow marks row 0 as a header band (StyleGrid only).
	HeaderRow bool
	// Zebra alternates body-row backgrounds (StyleGrid only).
	Zebra bool
	// FontSize for cell text; zero means the table default.
	FontSize float64
}

// borderAllowance is added to a table's intrinsic height for its outer
// box stroke.
const borderAllowance = 1.5

// Height returns the table's intrinsic height.
func (t Table) Height() float64 {
	return float64(len(t.Rows))*t.RowHeight + borderAllowance
}

// Spacer inserts fixed vertical space. Blocks are otherwise placed
// flush against each other.
type Spacer struct {
	Height float64
}

// Rule is a full-width horizontal hairline.
type Rule struct{}

// ruleHeight is the vertical space a Rule occupies.
const ruleHeight = 2.0

// PageBreak unconditionally starts a new page. It places no content
// itself; two in a row yield an empty page.
type PageBreak struct{}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (Image) isBlock()     {}
func (Table) isBlock()     {}
func (Spacer) isBlock()    {}
func (Rule) isBlock()      {}
func (PageBreak) isBlock() {}

// RasterImage is decoded, embeddable image data with its intrinsic
// pixel dimensions. Format is "PNG" or "JPEG".
type RasterImage struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Placeholder stands in for an excerpt that could not be resolved. It
// carries the work's title and source URL verbatim.
type Placeholder struct {
	Title string
	URL   string
}
