package main

import (
	"errors"
	"os"

	workbook "github.com/alnah/go-workbook"
	"github.com/alnah/go-workbook/internal/config"
)

// Exit codes for the workbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitAsset   = 4 // Fetch/rasterization failures in strict mode
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Asset resolution errors (exit 4)
	if errors.Is(err, workbook.ErrFetchFailed) ||
		errors.Is(err, workbook.ErrRasterizeFailed) ||
		errors.Is(err, workbook.ErrDecodeImage) ||
		errors.Is(err, workbook.ErrPopplerNotFound) {
		return ExitAsset
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, workbook.ErrWriteOutput) ||
		errors.Is(err, workbook.ErrRenderFailed) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrUnknownPageSize) ||
		errors.Is(err, workbook.ErrNoWorks) ||
		errors.Is(err, workbook.ErrDuplicateWorkKey) ||
		errors.Is(err, workbook.ErrEmptyWorkKey) ||
		errors.Is(err, workbook.ErrEmptyWorkURL) ||
		errors.Is(err, workbook.ErrInvalidPage) ||
		errors.Is(err, workbook.ErrInvalidFetchMode) ||
		errors.Is(err, workbook.ErrInvalidDPI) ||
		errors.Is(err, workbook.ErrInvalidGeometry) ||
		errors.Is(err, workbook.ErrInvalidMargin) ||
		errors.Is(err, workbook.ErrInvalidScale) {
		return ExitUsage
	}

	return ExitGeneral
}
