package workbook

import "errors"

// Sentinel errors for library operations.
var (
	ErrFetchFailed     = errors.New("source fetch failed")
	ErrRasterizeFailed = errors.New("page rasterization failed")
	ErrDecodeImage     = errors.New("failed to decode raster image")
	ErrPopplerNotFound = errors.New("pdftoppm binary not found")
	ErrAssetMissing    = errors.New("local image file not found")
	ErrRenderFailed    = errors.New("PDF rendering failed")
	ErrWriteOutput     = errors.New("failed to write output file")

	// Input validation errors.
	ErrNoWorks          = errors.New("no works configured")
	ErrDuplicateWorkKey = errors.New("duplicate work key")
	ErrEmptyWorkKey     = errors.New("work key cannot be empty")
	ErrEmptyWorkURL     = errors.New("work source URL cannot be empty")
	ErrInvalidPage      = errors.New("source page number must be >= 1")
	ErrInvalidFetchMode = errors.New("invalid fetch mode")
	ErrInvalidDPI       = errors.New("invalid raster DPI")
	ErrInvalidGeometry  = errors.New("invalid page geometry")
	ErrInvalidMargin    = errors.New("invalid margin")
	ErrInvalidScale     = errors.New("invalid image height scale")

	// Layout errors.
	ErrNoBlocks      = errors.New("content model is empty")
	ErrBadTableShape = errors.New("table rows have inconsistent column counts")
)
