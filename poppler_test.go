package workbook

// Notes:
// - No poppler install is assumed; tests only exercise probe failure
//   and argument validation

import (
	"context"
	"errors"
	"testing"
)

func TestNewPopplerRasterizer_NotOnPath(t *testing.T) {
	// Not parallel: manipulates PATH for the whole process.
	t.Setenv("PATH", t.TempDir())

	_, err := NewPopplerRasterizer()
	if !errors.Is(err, ErrPopplerNotFound) {
		t.Fatalf("NewPopplerRasterizer() = %v, want ErrPopplerNotFound", err)
	}
}

func TestPopplerRasterizer_RejectsBadPage(t *testing.T) {
	t.Parallel()

	r := &PopplerRasterizer{binPath: "/nonexistent/pdftoppm"}
	for _, page := range []int{0, -1} {
		_, err := r.RasterizePage(context.Background(), []byte("%PDF"), page, 300)
		if !errors.Is(err, ErrInvalidPage) {
			t.Errorf("RasterizePage(page=%d) = %v, want ErrInvalidPage", page, err)
		}
	}
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "multiline", in: "Syntax Error\nmore detail", want: "Syntax Error"},
		{name: "single line", in: "Syntax Error", want: "Syntax Error"},
		{name: "empty", in: "", want: ""},
		{name: "leading newline", in: "\nrest", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := firstLine([]byte(tt.in)); got != tt.want {
				t.Fatalf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
