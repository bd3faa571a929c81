package workbook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/alnah/go-workbook/internal/fileutil"
)

// popplerBinary is the poppler-utils tool used for rasterization.
const popplerBinary = "pdftoppm"

// PopplerRasterizer rasterizes PDF pages by shelling out to pdftoppm.
type PopplerRasterizer struct {
	binPath string
}

var _ Rasterizer = (*PopplerRasterizer)(nil)

// NewPopplerRasterizer probes for pdftoppm on PATH. The probe is
// explicit so callers choose the fallback up front instead of
// discovering a missing toolchain mid-build.
func NewPopplerRasterizer() (*PopplerRasterizer, error) {
	path, err := exec.LookPath(popplerBinary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPopplerNotFound, err)
	}
	return &PopplerRasterizer{binPath: path}, nil
}

// RasterizePage converts one 1-based page of pdf into a PNG at the
// given DPI. A single attempt; cancellation kills the process via the
// context.
func (p *PopplerRasterizer) RasterizePage(ctx context.Context, pdf []byte, page, dpi int) ([]byte, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d", ErrInvalidPage, page)
	}

	pdfPath, cleanup, err := fileutil.WriteTempFile(pdf, "pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterizeFailed, err)
	}
	defer cleanup()

	outDir, err := os.MkdirTemp("", "workbook-raster-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterizeFailed, err)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	prefix := filepath.Join(outDir, "page")
	// -singlefile writes exactly <prefix>.png for the selected page.
	cmd := exec.CommandContext(ctx, p.binPath,
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-singlefile",
		pdfPath, prefix,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrRasterizeFailed, popplerBinary, err, firstLine(out))
	}

	data, err := os.ReadFile(prefix + ".png") // #nosec G304 -- path built from our own temp dir
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s output: %v", ErrRasterizeFailed, popplerBinary, err)
	}
	return data, nil
}

// firstLine trims tool output to its first line for error messages.
func firstLine(out []byte) string {
	for i, b := range out {
		if b == '\n' {
			return string(out[:i])
		}
	}
	return string(out)
}
