package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, f *cliFlags)
	}{
		{
			name: "no flags",
			args: nil,
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "" || f.out != "" || f.mode != "" {
					t.Errorf("flags not zero-valued: %+v", f)
				}
			},
		},
		{
			name: "long flags",
			args: []string{"--config", "my.yaml", "--out", "out.pdf", "--mode", "placeholder", "--dpi", "150", "--page-size", "a4", "--margin", "1.0"},
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "my.yaml" {
					t.Errorf("config = %q", f.config)
				}
				if f.out != "out.pdf" {
					t.Errorf("out = %q", f.out)
				}
				if f.mode != "placeholder" {
					t.Errorf("mode = %q", f.mode)
				}
				if f.dpi != 150 {
					t.Errorf("dpi = %d", f.dpi)
				}
				if f.pageSize != "a4" {
					t.Errorf("pageSize = %q", f.pageSize)
				}
				if f.margin != 1.0 {
					t.Errorf("margin = %v", f.margin)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"-c", "my.yaml", "-o", "out.pdf", "-v", "-q"},
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "my.yaml" || f.out != "out.pdf" {
					t.Errorf("flags = %+v", f)
				}
				if !f.verbose || !f.quiet {
					t.Error("verbose/quiet not set")
				}
			},
		},
		{
			name: "version",
			args: []string{"--version"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.version {
					t.Error("version not set")
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
		{
			name:    "positional arguments rejected",
			args:    []string{"extra.md"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}
