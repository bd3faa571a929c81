package workbook

import (
	"testing"
)

// fixedMeasurer reports a constant per-character width, making wrap
// math exact in tests.
type fixedMeasurer struct {
	charWidth float64
}

func (m fixedMeasurer) TextWidth(text string, _ Font) float64 {
	return float64(len([]rune(text))) * m.charWidth
}

// ---------------------------------------------------------------------------
// TestWrapSpans
// ---------------------------------------------------------------------------

func TestWrapSpans(t *testing.T) {
	t.Parallel()

	m := fixedMeasurer{charWidth: 10}
	font := fontBody

	tests := []struct {
		name      string
		text      string
		width     float64
		wantLines []string
	}{
		{
			name:      "fits on one line",
			text:      "ab cd",
			width:     100,
			wantLines: []string{"ab cd"},
		},
		{
			name:  "wraps at width",
			text:  "aaaa bbbb cccc",
			width: 95, // "aaaa bbbb" = 90, adding " cccc" exceeds
			wantLines: []string{
				"aaaa bbbb",
				"cccc",
			},
		},
		{
			name:      "single oversized word overflows alone",
			text:      "tiny enormousword",
			width:     60,
			wantLines: []string{"tiny", "enormousword"},
		},
		{
			name:      "one word per line",
			text:      "aa bb cc",
			width:     25,
			wantLines: []string{"aa", "bb", "cc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := wrapText(tt.text, font, tt.width, m)
			if len(lines) != len(tt.wantLines) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.wantLines))
			}
			for i, line := range lines {
				got := ""
				for j, w := range line.Words {
					if j > 0 {
						got += " "
					}
					got += w.Text
				}
				if got != tt.wantLines[i] {
					t.Errorf("line %d = %q, want %q", i, got, tt.wantLines[i])
				}
			}
		})
	}
}

func TestWrapSpans_EmptyText(t *testing.T) {
	t.Parallel()

	if lines := wrapText("", fontBody, 100, fixedMeasurer{charWidth: 10}); lines != nil {
		t.Fatalf("wrapText(\"\") = %v, want nil", lines)
	}
}

func TestWrapSpans_KeepsStyles(t *testing.T) {
	t.Parallel()

	lines := wrapText("**bold** plain", fontBody, 1000, fixedMeasurer{charWidth: 10})
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	words := lines[0].Words
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if !words[0].Bold || words[1].Bold {
		t.Errorf("styles = [%v %v], want [bold plain]", words[0].Bold, words[1].Bold)
	}
}

// ---------------------------------------------------------------------------
// TestFont_styled
// ---------------------------------------------------------------------------

func TestFont_styled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		base   Font
		bold   bool
		italic bool
		want   string
	}{
		{name: "plain stays plain", base: fontBody, want: ""},
		{name: "bold span", base: fontBody, bold: true, want: "B"},
		{name: "italic span", base: fontBody, italic: true, want: "I"},
		{name: "bold and italic", base: fontBody, bold: true, italic: true, want: "BI"},
		{name: "italic base plus bold span", base: Font{Family: "Helvetica", Style: "I", Size: 10}, bold: true, want: "BI"},
		{name: "bold base keeps bold", base: fontH2, want: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.base.styled(tt.bold, tt.italic)
			if got.Style != tt.want {
				t.Errorf("styled(%v, %v).Style = %q, want %q", tt.bold, tt.italic, got.Style, tt.want)
			}
		})
	}
}

func TestHeadingFont_Levels(t *testing.T) {
	t.Parallel()

	if headingFont(LevelTitle) != fontTitle {
		t.Error("title level should map to title font")
	}
	if headingFont(LevelH1) != fontH1 {
		t.Error("level 1 should map to H1 font")
	}
	if headingFont(7) != fontH3 {
		t.Error("deep levels should clamp to H3 font")
	}
}
