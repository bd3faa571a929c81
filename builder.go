package workbook

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // local sketch/score files may be JPEG
	"os"

	"github.com/alnah/go-workbook/internal/assets"
	"github.com/alnah/go-workbook/internal/fileutil"
)

// Section spacing in points, matching the workbook's typeset.
const (
	spacingTight  = 6.0
	spacingSmall  = 8.0
	spacingMedium = 10.0
	spacingWide   = 12.0
	spacingLoose  = 18.0
)

// Table metrics in points.
const (
	planRowHeight        = 24.0
	planWeekColWidth     = 1.4 * Inch
	refRowHeight         = 20.0
	trackerRowHeight     = 22.0
	staffRows            = 8
	staffRowHeight       = 0.35 * Inch
	placeholderRowHeight = 18.0
)

// SketchConfig describes the optional single-work analysis deck: a
// local sketch image, a local score excerpt, and a harmonic outline
// table. Missing local files degrade to inline notice paragraphs.
type SketchConfig struct {
	Title        string
	Description  string
	ImagePath    string // local sketch PNG/JPEG, stretched to a fixed box
	ScoreTitle   string
	ScoreCaption string
	ScorePath    string // local score excerpt, aspect-fitted
	OutlineTitle string
	OutlineIntro string
	OutlineRows  [][]string // measure / harmony / function
	OutlineNote  string
}

// Builder assembles the workbook's content model in fixed section
// order. It owns the block list; nothing is accumulated through
// shared state.
type Builder struct {
	resolver *Resolver
	geo      Geometry
	deck     *assets.Deck
	works    []Work
	sketch   *SketchConfig

	blocks       []Block
	placeholders []string // work keys whose image slot degraded
}

// NewBuilder creates a Builder over a validated work list.
func NewBuilder(resolver *Resolver, geo Geometry, deck *assets.Deck, works []Work, sketch *SketchConfig) *Builder {
	return &Builder{
		resolver: resolver,
		geo:      geo,
		deck:     deck,
		works:    works,
		sketch:   sketch,
	}
}

// Build produces the ordered content model: front matter, condensed
// plan, one exercise section per work, the optional sketch deck,
// reference tables, glossary, and the progress tracker. Every section
// ends with an explicit PageBreak. Asset resolution happens here, one
// work at a time, in order.
func (b *Builder) Build(ctx context.Context) ([]Block, error) {
	b.blocks = nil
	b.placeholders = nil

	b.frontMatter()
	b.planSection()
	for _, w := range b.works {
		if err := b.exerciseSection(ctx, w); err != nil {
			return nil, err
		}
	}
	if b.sketch != nil {
		b.sketchSection()
	}
	b.referenceSection()
	b.glossarySection()
	b.trackerSection()

	return b.blocks, nil
}

// PlaceholderKeys reports which works degraded to placeholder boxes
// during the last Build, in section order.
func (b *Builder) PlaceholderKeys() []string {
	return b.placeholders
}

func (b *Builder) add(blocks ...Block) {
	b.blocks = append(b.blocks, blocks...)
}

func (b *Builder) frontMatter() {
	front := b.deck.Front
	b.add(
		Heading{Level: LevelTitle, Text: front.Title},
		Spacer{Height: spacingSmall},
		Paragraph{Text: front.Subtitle, Italic: true},
		Spacer{Height: spacingLoose},
		Paragraph{Text: front.Intro},
		Spacer{Height: spacingLoose},
		Rule{},
		Spacer{Height: spacingTight},
		Heading{Level: LevelH2, Text: front.HowToTitle},
		Paragraph{Text: front.HowTo},
		PageBreak{},
	)
}

func (b *Builder) planSection() {
	plan := b.deck.Plan
	cw := b.geo.ContentWidth()
	rows := append([][]string{plan.Headers}, plan.Rows...)
	b.add(
		Heading{Level: LevelH1, Text: plan.Title},
		Table{
			Rows:      rows,
			ColWidths: []float64{planWeekColWidth, cw - planWeekColWidth},
			RowHeight: planRowHeight,
			Style:     StyleGrid,
			HeaderRow: true,
		},
		Spacer{Height: spacingWide},
		Paragraph{Text: plan.Tip},
		PageBreak{},
	)
}

// exerciseSection emits one per-work practice spread: heading, prompt,
// the resolved excerpt (or its placeholder box), attribution lines,
// and a blank staff grid. The citation and license always travel with
// the image slot.
func (b *Builder) exerciseSection(ctx context.Context, w Work) error {
	asset, err := b.resolver.Resolve(ctx, w)
	if err != nil {
		return err
	}

	b.add(
		Heading{Level: LevelH2, Text: w.Heading},
		Spacer{Height: spacingTight},
		Paragraph{Text: w.Prompt},
		Spacer{Height: spacingSmall},
	)

	if asset.Placeholder != nil {
		b.placeholders = append(b.placeholders, w.Key)
		b.add(b.placeholderBox(asset.Placeholder))
	} else {
		scale := w.HeightScale
		if scale == 0 {
			scale = DefaultHeightScale
		}
		b.add(Image{
			Key:       "work:" + w.Key,
			Raster:    asset.Raster,
			MaxWidth:  b.geo.ContentWidth(),
			MaxHeight: b.geo.ContentHeight() * scale,
			Mode:      ScaleAspect,
		})
	}

	b.add(
		Spacer{Height: spacingTight},
		Paragraph{Text: "*Source:* " + w.Citation},
		Paragraph{Text: "*License:* " + w.License},
		Spacer{Height: spacingMedium},
		b.staffGrid(),
		PageBreak{},
	)
	return nil
}

// placeholderBox renders the fixed placeholder wording around the
// work's title and URL, both verbatim.
func (b *Builder) placeholderBox(p *Placeholder) Table {
	wording := b.deck.Placeholder
	rows := [][]string{
		{p.Title},
		{""},
		{wording.URLLabel},
		{p.URL},
		{""},
		{wording.Instruction},
		{""},
		{wording.Note},
	}
	return Table{
		Rows:      rows,
		ColWidths: []float64{b.geo.ContentWidth()},
		RowHeight: placeholderRowHeight,
		Style:     StylePlaceholder,
	}
}

// staffGrid is the blank writing area under each excerpt.
func (b *Builder) staffGrid() Table {
	rows := make([][]string, staffRows)
	for i := range rows {
		rows[i] = []string{" "}
	}
	return Table{
		Rows:      rows,
		ColWidths: []float64{b.geo.ContentWidth()},
		RowHeight: staffRowHeight,
		Style:     StyleStaff,
	}
}

// sketchSection emits the optional single-work analysis deck.
func (b *Builder) sketchSection() {
	s := b.sketch
	cw := b.geo.ContentWidth()
	ch := b.geo.ContentHeight()

	b.add(
		Heading{Level: LevelTitle, Text: s.Title},
		Spacer{Height: spacingWide},
		Paragraph{Text: s.Description},
		Spacer{Height: spacingLoose},
	)
	b.localImage("sketch:image", s.ImagePath, Image{
		MaxWidth:  cw,
		MaxHeight: ch * 0.55,
		Mode:      ScaleStretch,
	})
	b.add(PageBreak{})

	b.add(
		Heading{Level: LevelH1, Text: s.ScoreTitle},
		Spacer{Height: spacingSmall},
		Paragraph{Text: s.ScoreCaption},
		Spacer{Height: spacingWide},
	)
	b.localImage("sketch:score", s.ScorePath, Image{
		MaxWidth:  cw,
		MaxHeight: ch * 0.85,
		Mode:      ScaleAspect,
	})
	b.add(PageBreak{})

	outline := append([][]string{{"Measure(s)", "Harmony", "Function / Notes"}}, s.OutlineRows...)
	b.add(
		Heading{Level: LevelH1, Text: s.OutlineTitle},
		Spacer{Height: spacingSmall},
		Paragraph{Text: s.OutlineIntro},
		Spacer{Height: spacingWide},
		Table{
			Rows:      outline,
			ColWidths: []float64{1.2 * Inch, 1.5 * Inch, cw - 2.7*Inch},
			RowHeight: refRowHeight,
			Style:     StyleGrid,
			HeaderRow: true,
			Zebra:     true,
		},
		Spacer{Height: spacingMedium},
		Paragraph{Text: s.OutlineNote},
		PageBreak{},
	)
}

// localImage appends the image block for a local file, or the inline
// notice paragraph when the file is absent or unreadable. A missing
// local asset never aborts the build.
func (b *Builder) localImage(key, path string, tmpl Image) {
	raster, err := loadLocalImage(path)
	if err != nil {
		b.add(Paragraph{
			Text:   fmt.Sprintf("(Image not found at '%s'. Export a 300-dpi PNG/JPG and save it with that name.)", path),
			Italic: true,
		})
		b.add(Spacer{Height: spacingWide})
		return
	}
	tmpl.Key = key
	tmpl.Raster = raster
	b.add(tmpl)
}

func (b *Builder) referenceSection() {
	ref := b.deck.Reference
	cw := b.geo.ContentWidth()
	b.add(
		Heading{Level: LevelH1, Text: ref.Title},
		Spacer{Height: spacingSmall},
		Table{
			Rows:      ref.Rows,
			ColWidths: []float64{cw / 2, cw / 2},
			RowHeight: refRowHeight,
			Style:     StyleGrid,
			HeaderRow: true,
		},
		Spacer{Height: spacingWide},
		Heading{Level: LevelH2, Text: ref.CadencesTitle},
		Paragraph{Text: ref.Cadences},
		Spacer{Height: spacingTight},
		Rule{},
		PageBreak{},
	)
}

func (b *Builder) glossarySection() {
	gl := b.deck.Glossary
	b.add(
		Heading{Level: LevelH1, Text: gl.Title},
		Spacer{Height: spacingSmall},
	)
	for _, e := range gl.Entries {
		b.add(Paragraph{Text: fmt.Sprintf("**%s** = %s", e.Term, e.Definition)})
	}
	b.add(PageBreak{})
}

func (b *Builder) trackerSection() {
	tr := b.deck.Tracker
	cw := b.geo.ContentWidth()
	widths := []float64{0.9 * Inch, 2.0 * Inch, 1.2 * Inch, 1.2 * Inch}
	used := sum(widths)
	widths = append(widths, cw-used)

	rows := [][]string{tr.Headers}
	for i := 0; i < tr.BlankRows; i++ {
		rows = append(rows, make([]string, len(tr.Headers)))
	}
	b.add(
		Heading{Level: LevelH1, Text: tr.Title},
		Spacer{Height: spacingSmall},
		Table{
			Rows:      rows,
			ColWidths: widths,
			RowHeight: trackerRowHeight,
			Style:     StyleGrid,
			HeaderRow: true,
		},
		PageBreak{},
	)
}

// loadLocalImage reads and probes a local PNG or JPEG file.
func loadLocalImage(path string) (*RasterImage, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, path, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
	}
	var f string
	switch format {
	case "png":
		f = "PNG"
	case "jpeg":
		f = "JPEG"
	default:
		return nil, fmt.Errorf("%w: %s has unsupported format %q", ErrDecodeImage, path, format)
	}
	return &RasterImage{Data: data, Format: f, Width: cfg.Width, Height: cfg.Height}, nil
}
