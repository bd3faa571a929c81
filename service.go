package workbook

import (
	"context"
	"fmt"

	"github.com/alnah/go-workbook/internal/assets"
)

// DefaultOutputName is the fixed artifact name, overwritten each run.
const DefaultOutputName = "Schenkerian_Analysis_Workbook.pdf"

// Input contains build parameters.
type Input struct {
	Works      []Work        // ordered work list (required)
	Geometry   *Geometry     // page geometry (optional, nil = letter defaults)
	Mode       string        // fetch mode (optional, "" = strict)
	DPI        int           // rasterization DPI (optional, 0 = 300)
	OutputPath string        // output file (optional, "" = DefaultOutputName)
	Sketch     *SketchConfig // optional single-work analysis deck
}

// Result reports a completed build.
type Result struct {
	Document     *Document
	OutputPath   string
	Placeholders []string // work keys that degraded to placeholder boxes
	Warnings     []OverflowWarning
}

// Service orchestrates the build pipeline: section assembly, asset
// resolution, layout and rendering. Nothing persists across builds;
// each Build uses a fresh resolver cache and content model.
type Service struct {
	fetcher       Fetcher
	rasterizer    Rasterizer
	rasterizerSet bool
	measurer      TextMeasurer
	renderer      DocumentRenderer
}

// New creates a Service with default backends: HTTP fetching, a
// poppler rasterizer probed at build time, fpdf metrics and the fpdf
// renderer. Use options to inject alternatives (e.g. by tests).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fetcher == nil {
		s.fetcher = newHTTPFetcher()
	}
	if s.measurer == nil {
		s.measurer = newFpdfMeasurer()
	}
	if s.renderer == nil {
		s.renderer = newFpdfRenderer()
	}
	return s
}

// Build runs the full pipeline and writes the output artifact. In
// strict mode any fetch or rasterization failure aborts before
// anything is written; in placeholder mode those failures degrade to
// placeholder boxes and the build continues.
func (s *Service) Build(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	geo := DefaultGeometry()
	if input.Geometry != nil {
		geo = *input.Geometry
	}
	mode := input.Mode
	if mode == "" {
		mode = FetchModeStrict
	}
	outPath := input.OutputPath
	if outPath == "" {
		outPath = DefaultOutputName
	}

	rasterizer, err := s.resolveRasterizer(mode)
	if err != nil {
		return nil, err
	}

	deck, err := assets.LoadDeck()
	if err != nil {
		return nil, err
	}

	resolver := NewResolver(mode, input.DPI, s.fetcher, rasterizer)
	builder := NewBuilder(resolver, geo, deck, input.Works, input.Sketch)
	blocks, err := builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("assembling content: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := NewEngine(s.measurer).Layout(blocks, geo)
	if err != nil {
		return nil, fmt.Errorf("laying out document: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err := s.renderer.Render(doc, outPath); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &Result{
		Document:     doc,
		OutputPath:   outPath,
		Placeholders: builder.PlaceholderKeys(),
		Warnings:     doc.Warnings,
	}, nil
}

// resolveRasterizer picks the page rasterizer for this build. An
// explicitly injected rasterizer (even nil) wins; otherwise poppler
// is probed. A missing toolchain is fatal in strict mode and means
// placeholders everywhere in placeholder mode.
func (s *Service) resolveRasterizer(mode string) (Rasterizer, error) {
	if s.rasterizerSet {
		return s.rasterizer, nil
	}
	poppler, err := NewPopplerRasterizer()
	if err != nil {
		if mode == FetchModePlaceholder {
			return nil, nil
		}
		return nil, err
	}
	return poppler, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if err := ValidateWorks(input.Works); err != nil {
		return err
	}
	if err := ValidateFetchMode(input.Mode); err != nil {
		return err
	}
	if err := ValidateDPI(input.DPI); err != nil {
		return err
	}
	if input.Geometry != nil {
		if err := input.Geometry.Validate(); err != nil {
			return err
		}
	}
	return nil
}
