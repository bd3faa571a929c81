package workbook

// Notes:
// - Geometry: validates page size, margin bounds, and content area
// - FetchMode: strict/placeholder plus case-insensitivity
// - Work/ValidateWorks: required fields, duplicate keys, ordering-neutral checks

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGeometry_Validate
// ---------------------------------------------------------------------------

func TestGeometry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		geo     Geometry
		wantErr error
	}{
		{
			name:    "default geometry valid",
			geo:     DefaultGeometry(),
			wantErr: nil,
		},
		{
			name:    "a4 geometry valid",
			geo:     Geometry{PageWidth: PageWidthA4, PageHeight: PageHeightA4, Margin: DefaultMargin},
			wantErr: nil,
		},
		{
			name:    "margin at minimum",
			geo:     Geometry{PageWidth: PageWidthLetter, PageHeight: PageHeightLetter, Margin: MinMargin},
			wantErr: nil,
		},
		{
			name:    "zero page size",
			geo:     Geometry{PageWidth: 0, PageHeight: PageHeightLetter, Margin: DefaultMargin},
			wantErr: ErrInvalidGeometry,
		},
		{
			name:    "margin below minimum",
			geo:     Geometry{PageWidth: PageWidthLetter, PageHeight: PageHeightLetter, Margin: 1},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin above maximum",
			geo:     Geometry{PageWidth: PageWidthLetter, PageHeight: PageHeightLetter, Margin: MaxMargin + 1},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margins consume the page",
			geo:     Geometry{PageWidth: 100, PageHeight: 100, Margin: 50},
			wantErr: ErrInvalidGeometry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.geo.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeometry_ContentArea(t *testing.T) {
	t.Parallel()

	geo := DefaultGeometry()
	if got, want := geo.ContentWidth(), PageWidthLetter-2*DefaultMargin; got != want {
		t.Errorf("ContentWidth() = %v, want %v", got, want)
	}
	if got, want := geo.ContentHeight(), PageHeightLetter-2*DefaultMargin; got != want {
		t.Errorf("ContentHeight() = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFetchMode
// ---------------------------------------------------------------------------

func TestValidateFetchMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{name: "empty means default", mode: "", wantErr: false},
		{name: "strict", mode: FetchModeStrict, wantErr: false},
		{name: "placeholder", mode: FetchModePlaceholder, wantErr: false},
		{name: "case insensitive", mode: "STRICT", wantErr: false},
		{name: "unknown mode", mode: "lenient", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateFetchMode(tt.mode)
			if tt.wantErr && !errors.Is(err, ErrInvalidFetchMode) {
				t.Fatalf("ValidateFetchMode(%q) = %v, want ErrInvalidFetchMode", tt.mode, err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateFetchMode(%q) = %v, want nil", tt.mode, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWork_Validate / TestValidateWorks
// ---------------------------------------------------------------------------

func validWork(key string) Work {
	return Work{
		Key:        key,
		Title:      "Test Work",
		SourceURL:  "https://example.com/score.pdf",
		License:    "Public Domain",
		Citation:   "Example citation.",
		SourcePage: 1,
	}
}

func TestWork_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Work)
		wantErr error
	}{
		{name: "valid", mutate: func(*Work) {}, wantErr: nil},
		{name: "empty key", mutate: func(w *Work) { w.Key = "" }, wantErr: ErrEmptyWorkKey},
		{name: "empty URL", mutate: func(w *Work) { w.SourceURL = "" }, wantErr: ErrEmptyWorkURL},
		{name: "zero page", mutate: func(w *Work) { w.SourcePage = 0 }, wantErr: ErrInvalidPage},
		{name: "negative page", mutate: func(w *Work) { w.SourcePage = -2 }, wantErr: ErrInvalidPage},
		{name: "scale above one", mutate: func(w *Work) { w.HeightScale = 1.5 }, wantErr: ErrInvalidScale},
		{name: "scale at bound", mutate: func(w *Work) { w.HeightScale = 1.0 }, wantErr: nil},
		{name: "per-work DPI valid", mutate: func(w *Work) { w.DPI = 150 }, wantErr: nil},
		{name: "per-work DPI out of range", mutate: func(w *Work) { w.DPI = 30 }, wantErr: ErrInvalidDPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := validWork("k")
			tt.mutate(&w)
			err := w.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWorks(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		if err := ValidateWorks(nil); !errors.Is(err, ErrNoWorks) {
			t.Fatalf("ValidateWorks(nil) = %v, want ErrNoWorks", err)
		}
	})

	t.Run("duplicate keys", func(t *testing.T) {
		t.Parallel()
		works := []Work{validWork("a"), validWork("b"), validWork("a")}
		if err := ValidateWorks(works); !errors.Is(err, ErrDuplicateWorkKey) {
			t.Fatalf("ValidateWorks() = %v, want ErrDuplicateWorkKey", err)
		}
	})

	t.Run("valid list", func(t *testing.T) {
		t.Parallel()
		works := []Work{validWork("a"), validWork("b")}
		if err := ValidateWorks(works); err != nil {
			t.Fatalf("ValidateWorks() = %v, want nil", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateDPI
// ---------------------------------------------------------------------------

func TestValidateDPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dpi     int
		wantErr bool
	}{
		{name: "zero means default", dpi: 0, wantErr: false},
		{name: "default DPI", dpi: DefaultDPI, wantErr: false},
		{name: "minimum", dpi: MinDPI, wantErr: false},
		{name: "maximum", dpi: MaxDPI, wantErr: false},
		{name: "too low", dpi: 30, wantErr: true},
		{name: "too high", dpi: 1200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateDPI(tt.dpi)
			if tt.wantErr && !errors.Is(err, ErrInvalidDPI) {
				t.Fatalf("ValidateDPI(%d) = %v, want ErrInvalidDPI", tt.dpi, err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateDPI(%d) = %v, want nil", tt.dpi, err)
			}
		})
	}
}
