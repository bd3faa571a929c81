package workbook

import (
	"fmt"
	"strings"
)

// Fetch mode constants.
const (
	FetchModeStrict      = "strict"
	FetchModePlaceholder = "placeholder"
)

// Page dimensions in points (1 inch = 72 points).
const (
	PageWidthLetter  = 612.0
	PageHeightLetter = 792.0
	PageWidthA4      = 595.28
	PageHeightA4     = 841.89

	Inch = 72.0
)

// Margin bounds in points.
const (
	MinMargin     = 18.0 // 0.25"
	MaxMargin     = 216.0
	DefaultMargin = 54.0 // 0.75", matches the workbook layout
)

// DPI bounds for page rasterization.
const (
	MinDPI     = 72
	MaxDPI     = 600
	DefaultDPI = 300
)

// Geometry describes the physical page: overall size and a uniform
// margin applied to all four sides.
type Geometry struct {
	PageWidth  float64 // points
	PageHeight float64 // points
	Margin     float64 // points, all four sides
}

// DefaultGeometry returns US Letter with a 0.75" margin.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:  PageWidthLetter,
		PageHeight: PageHeightLetter,
		Margin:     DefaultMargin,
	}
}

// ContentWidth returns the horizontal space available inside margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// ContentHeight returns the vertical space available inside margins.
func (g Geometry) ContentHeight() float64 {
	return g.PageHeight - 2*g.Margin
}

// Validate checks that the geometry leaves a usable content area.
func (g Geometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("%w: page size %.2fx%.2f", ErrInvalidGeometry, g.PageWidth, g.PageHeight)
	}
	if g.Margin < MinMargin || g.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2fpt (must be between %.2f and %.2f)", ErrInvalidMargin, g.Margin, MinMargin, MaxMargin)
	}
	if g.ContentWidth() <= 0 || g.ContentHeight() <= 0 {
		return fmt.Errorf("%w: margins leave no content area", ErrInvalidGeometry)
	}
	return nil
}

// ValidateFetchMode checks a fetch mode string (case-insensitive).
// Empty is valid and means the default (strict).
func ValidateFetchMode(mode string) error {
	switch strings.ToLower(mode) {
	case "", FetchModeStrict, FetchModePlaceholder:
		return nil
	}
	return fmt.Errorf("%w: %q (must be strict or placeholder)", ErrInvalidFetchMode, mode)
}

// Work describes one externally sourced reference score: where to get
// it, which page carries the excerpt, and the attribution that must
// accompany it in the output.
type Work struct {
	Key        string // unique identifier, used for caching and raster names
	Title      string
	Heading    string // section heading, e.g. "Weeks 1-2 · Bach Chorale (BWV 269)"
	Prompt     string // instructional paragraph placed above the excerpt
	SourceURL  string
	License    string
	Citation   string
	SourcePage int // 1-based page of the source document to rasterize

	// DPI overrides the build-wide rasterization DPI for this work.
	// Zero means the build default.
	DPI int

	// HeightScale bounds the excerpt image to this fraction of the
	// content-area height. Zero means DefaultHeightScale.
	HeightScale float64
}

// DefaultHeightScale is the fraction of content height an excerpt
// image may occupy when the work does not specify one.
const DefaultHeightScale = 0.45

// Validate checks a single work entry.
func (w Work) Validate() error {
	if w.Key == "" {
		return ErrEmptyWorkKey
	}
	if w.SourceURL == "" {
		return fmt.Errorf("%w: work %q", ErrEmptyWorkURL, w.Key)
	}
	if w.SourcePage < 1 {
		return fmt.Errorf("%w: work %q has page %d", ErrInvalidPage, w.Key, w.SourcePage)
	}
	if err := ValidateDPI(w.DPI); err != nil {
		return fmt.Errorf("work %q: %w", w.Key, err)
	}
	if w.HeightScale < 0 || w.HeightScale > 1 {
		return fmt.Errorf("%w: work %q has scale %.2f", ErrInvalidScale, w.Key, w.HeightScale)
	}
	return nil
}

// ValidateWorks checks an ordered work list for emptiness and
// duplicate keys, then validates each entry.
func ValidateWorks(works []Work) error {
	if len(works) == 0 {
		return ErrNoWorks
	}
	seen := make(map[string]struct{}, len(works))
	for _, w := range works {
		if err := w.Validate(); err != nil {
			return err
		}
		if _, dup := seen[w.Key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateWorkKey, w.Key)
		}
		seen[w.Key] = struct{}{}
	}
	return nil
}

// ValidateDPI checks a rasterization DPI. Zero is valid and means the
// default (300).
func ValidateDPI(dpi int) error {
	if dpi == 0 {
		return nil
	}
	if dpi < MinDPI || dpi > MaxDPI {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidDPI, dpi, MinDPI, MaxDPI)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// WithFetcher overrides the HTTP fetcher (e.g. by tests).
func WithFetcher(f Fetcher) Option {
	return func(s *Service) { s.fetcher = f }
}

// WithRasterizer overrides the page rasterizer. Passing nil declares
// that no rasterization capability is available; in placeholder mode
// every image slot then degrades to a placeholder box.
func WithRasterizer(r Rasterizer) Option {
	return func(s *Service) {
		s.rasterizer = r
		s.rasterizerSet = true
	}
}

// WithMeasurer overrides the text measurer used during layout.
func WithMeasurer(m TextMeasurer) Option {
	return func(s *Service) { s.measurer = m }
}

// WithRenderer overrides the document renderer (e.g. by tests).
func WithRenderer(r DocumentRenderer) Option {
	return func(s *Service) { s.renderer = r }
}
