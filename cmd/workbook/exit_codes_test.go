package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	workbook "github.com/alnah/go-workbook"
	"github.com/alnah/go-workbook/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "fetch failure", err: workbook.ErrFetchFailed, want: ExitAsset},
		{name: "rasterize failure", err: workbook.ErrRasterizeFailed, want: ExitAsset},
		{name: "poppler missing", err: workbook.ErrPopplerNotFound, want: ExitAsset},
		{name: "decode failure", err: workbook.ErrDecodeImage, want: ExitAsset},
		{name: "write failure", err: workbook.ErrWriteOutput, want: ExitIO},
		{name: "render failure", err: workbook.ErrRenderFailed, want: ExitIO},
		{name: "not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "unknown page size", err: config.ErrUnknownPageSize, want: ExitUsage},
		{name: "no works", err: workbook.ErrNoWorks, want: ExitUsage},
		{name: "duplicate key", err: workbook.ErrDuplicateWorkKey, want: ExitUsage},
		{name: "bad mode", err: workbook.ErrInvalidFetchMode, want: ExitUsage},
		{name: "bad dpi", err: workbook.ErrInvalidDPI, want: ExitUsage},
		{name: "bad geometry", err: workbook.ErrInvalidGeometry, want: ExitUsage},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Fatalf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// Wrapped errors must map the same as their sentinels.
func TestExitCodeFor_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("assembling content: %w",
		fmt.Errorf("fetching work %q: %w", "bach", workbook.ErrFetchFailed))
	if got := exitCodeFor(err); got != ExitAsset {
		t.Fatalf("exitCodeFor(wrapped) = %d, want %d", got, ExitAsset)
	}
}
