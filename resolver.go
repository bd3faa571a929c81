package workbook

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"
)

// Fetcher retrieves source bytes for a URL. One attempt, no retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Rasterizer converts one page of a source PDF into a PNG image.
// Page numbers are 1-based.
type Rasterizer interface {
	RasterizePage(ctx context.Context, pdf []byte, page, dpi int) ([]byte, error)
}

// Compile-time interface checks.
var _ Fetcher = (*httpFetcher)(nil)

// httpFetcher fetches source documents over HTTP.
type httpFetcher struct {
	client *http.Client
}

// fetchTimeout bounds one source download end to end, so a stalled
// host cannot hang a build driven with a background context.
const fetchTimeout = 60 * time.Second

func newHTTPFetcher() *httpFetcher {
	return &httpFetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// maxFetchSize caps a fetched source document (32 MB).
const maxFetchSize = 32 << 20

// Fetch performs a single GET. A caller context deadline shortens the
// attempt further; it never extends the client timeout.
func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetchFailed, url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFetchFailed, url, err)
	}
	if len(data) > maxFetchSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFetchFailed, url, maxFetchSize)
	}
	return data, nil
}

// Asset is a resolved image slot: exactly one of Raster or
// Placeholder is set.
type Asset struct {
	Raster      *RasterImage
	Placeholder *Placeholder
}

// Resolver turns work entries into raster images or placeholders
// according to the build's fetch mode. Resolution is cached per key
// for the duration of one build; the cache is never shared across
// builds.
type Resolver struct {
	mode       string
	dpi        int
	fetcher    Fetcher
	rasterizer Rasterizer // nil means no rasterization capability
	cache      map[string]*Asset
}

// NewResolver creates a Resolver. A nil rasterizer in strict mode
// fails every resolve; in placeholder mode it degrades every slot.
func NewResolver(mode string, dpi int, f Fetcher, r Rasterizer) *Resolver {
	if mode == "" {
		mode = FetchModeStrict
	}
	if dpi == 0 {
		dpi = DefaultDPI
	}
	return &Resolver{
		mode:       strings.ToLower(mode),
		dpi:        dpi,
		fetcher:    f,
		rasterizer: r,
		cache:      make(map[string]*Asset),
	}
}

// Resolve returns the raster image for a work, or a placeholder in
// placeholder mode when fetching or rasterizing fails. Each key is
// attempted exactly once per build.
func (r *Resolver) Resolve(ctx context.Context, work Work) (*Asset, error) {
	if cached, ok := r.cache[work.Key]; ok {
		return cached, nil
	}

	asset, err := r.resolve(ctx, work)
	if err != nil {
		if r.mode == FetchModePlaceholder {
			asset = &Asset{Placeholder: &Placeholder{Title: work.Title, URL: work.SourceURL}}
		} else {
			return nil, err
		}
	}
	r.cache[work.Key] = asset
	return asset, nil
}

func (r *Resolver) resolve(ctx context.Context, work Work) (*Asset, error) {
	if r.rasterizer == nil {
		return nil, fmt.Errorf("%w: no rasterizer configured for work %q", ErrRasterizeFailed, work.Key)
	}

	pdf, err := r.fetcher.Fetch(ctx, work.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetching work %q: %w", work.Key, err)
	}

	dpi := work.DPI
	if dpi == 0 {
		dpi = r.dpi
	}
	pngData, err := r.rasterizer.RasterizePage(ctx, pdf, work.SourcePage, dpi)
	if err != nil {
		return nil, fmt.Errorf("rasterizing work %q page %d: %w", work.Key, work.SourcePage, err)
	}

	raster, err := decodeRaster(pngData)
	if err != nil {
		return nil, fmt.Errorf("work %q: %w", work.Key, err)
	}
	raster, err = downsample(raster)
	if err != nil {
		return nil, fmt.Errorf("work %q: %w", work.Key, err)
	}
	return &Asset{Raster: raster}, nil
}

// decodeRaster probes intrinsic pixel dimensions of PNG data.
func decodeRaster(data []byte) (*RasterImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	if format != "png" {
		return nil, fmt.Errorf("%w: unexpected format %q", ErrDecodeImage, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: degenerate dimensions %dx%d", ErrDecodeImage, cfg.Width, cfg.Height)
	}
	return &RasterImage{Data: data, Format: "PNG", Width: cfg.Width, Height: cfg.Height}, nil
}

// maxRasterWidth caps embedded image width in pixels. A full content
// width at 300 dpi is ~2100px; anything wider only bloats the output.
const maxRasterWidth = 2100

// downsample rescales rasters wider than maxRasterWidth, preserving
// aspect ratio. Smaller rasters pass through untouched.
func downsample(r *RasterImage) (*RasterImage, error) {
	if r.Width <= maxRasterWidth {
		return r, nil
	}
	src, err := png.Decode(bytes.NewReader(r.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	dstW := maxRasterWidth
	dstH := int(float64(r.Height) * float64(dstW) / float64(r.Width))
	if dstH < 1 {
		dstH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("%w: re-encoding: %v", ErrDecodeImage, err)
	}
	return &RasterImage{Data: buf.Bytes(), Format: "PNG", Width: dstW, Height: dstH}, nil
}
