package workbook

import "strings"

// Font identifies a core font face for measurement and rendering.
// Style uses fpdf conventions: "" regular, "B", "I", "BI".
type Font struct {
	Family  string
	Style   string
	Size    float64
	Leading float64 // baseline-to-baseline distance
}

// Helvetica core-font styles the workbook is typeset with.
var (
	fontTitle = Font{Family: "Helvetica", Style: "B", Size: 18, Leading: 22}
	fontH1    = Font{Family: "Helvetica", Style: "B", Size: 16, Leading: 19}
	fontH2    = Font{Family: "Helvetica", Style: "B", Size: 13, Leading: 16}
	fontH3    = Font{Family: "Helvetica", Style: "B", Size: 11.5, Leading: 14}
	fontBody  = Font{Family: "Helvetica", Style: "", Size: 10, Leading: 12.5}
)

// defaultTableFontSize is used for table cells unless the table
// specifies its own size.
const defaultTableFontSize = 9.0

// headingFont maps a heading level to its font. Levels beyond H3
// clamp to H3.
func headingFont(level int) Font {
	switch level {
	case LevelTitle:
		return fontTitle
	case LevelH1:
		return fontH1
	case LevelH2:
		return fontH2
	default:
		return fontH3
	}
}

// styled returns f with the given style merged in, so emphasis spans
// inside an italic caption still measure as "BI" etc.
func (f Font) styled(bold, italic bool) Font {
	style := ""
	if bold || strings.Contains(f.Style, "B") {
		style += "B"
	}
	if italic || strings.Contains(f.Style, "I") {
		style += "I"
	}
	f.Style = style
	return f
}

// TextMeasurer reports rendered string widths for a font. The
// default implementation reads fpdf's core-font metrics; tests inject
// fixed-width fakes.
type TextMeasurer interface {
	TextWidth(text string, font Font) float64
}

// styledWord is one wrapped word with its resolved style.
type styledWord struct {
	Text   string
	Bold   bool
	Italic bool
	Width  float64
}

// textLine is one wrapped line of words.
type textLine struct {
	Words []styledWord
	Width float64
}

// wrapSpans greedily wraps styled spans into lines no wider than
// width. A word wider than the line gets a line of its own and
// overflows horizontally; there is no hyphenation.
func wrapSpans(spans []Span, base Font, width float64, m TextMeasurer) []textLine {
	var words []styledWord
	for _, sp := range spans {
		font := base.styled(sp.Bold, sp.Italic)
		for _, w := range strings.Fields(sp.Text) {
			words = append(words, styledWord{
				Text:   w,
				Bold:   sp.Bold,
				Italic: sp.Italic,
				Width:  m.TextWidth(w, font),
			})
		}
	}
	if len(words) == 0 {
		return nil
	}

	spaceWidth := m.TextWidth(" ", base)
	var lines []textLine
	current := textLine{}
	for _, w := range words {
		need := w.Width
		if len(current.Words) > 0 {
			need += spaceWidth
		}
		if len(current.Words) > 0 && current.Width+need > width {
			lines = append(lines, current)
			current = textLine{}
			need = w.Width
		}
		current.Words = append(current.Words, w)
		current.Width += need
	}
	lines = append(lines, current)
	return lines
}

// wrapText is wrapSpans over parsed inline markup.
func wrapText(text string, base Font, width float64, m TextMeasurer) []textLine {
	return wrapSpans(parseSpans(text), base, width, m)
}

// paragraphFont returns the base font for a Paragraph block.
func paragraphFont(p Paragraph) Font {
	f := fontBody
	if p.Italic {
		f.Style = "I"
	}
	return f
}
