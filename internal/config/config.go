// Package config loads build configuration for the workbook CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	workbook "github.com/alnah/go-workbook"
	"github.com/alnah/go-workbook/internal/assets"
	"github.com/alnah/go-workbook/internal/fileutil"
	"github.com/alnah/go-workbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrUnknownPageSize = errors.New("unknown page size")
)

// configDirName is the subdirectory searched under the user config dir.
const configDirName = "go-workbook"

// Config holds all configuration for a workbook build.
type Config struct {
	Output OutputConfig       `yaml:"output"`
	Fetch  FetchConfig        `yaml:"fetch"`
	Page   PageConfig         `yaml:"page"`
	Works  []assets.WorkEntry `yaml:"works"`
	Sketch SketchConfig       `yaml:"sketch"`
}

// OutputConfig defines the output artifact location.
type OutputConfig struct {
	Path string `yaml:"path"` // empty = fixed default name in cwd
}

// FetchConfig defines asset resolution policy.
type FetchConfig struct {
	Mode string `yaml:"mode"` // "strict" or "placeholder" (default: strict)
	DPI  int    `yaml:"dpi"`  // rasterization DPI (default: 300)
}

// PageConfig defines page geometry.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "letter" or "a4" (default: letter)
	Margin float64 `yaml:"margin"` // inches, all sides (default: 0.75)
}

// SketchConfig defines the optional single-work analysis deck.
type SketchConfig struct {
	Enabled      bool       `yaml:"enabled"`
	Title        string     `yaml:"title"`
	Description  string     `yaml:"description"`
	ImagePath    string     `yaml:"imagePath"`
	ScoreTitle   string     `yaml:"scoreTitle"`
	ScoreCaption string     `yaml:"scoreCaption"`
	ScorePath    string     `yaml:"scorePath"`
	OutlineTitle string     `yaml:"outlineTitle"`
	OutlineIntro string     `yaml:"outlineIntro"`
	OutlineRows  [][]string `yaml:"outlineRows"`
	OutlineNote  string     `yaml:"outlineNote"`
}

// Default returns the built-in configuration: strict fetch, letter
// pages, the embedded work list, no sketch deck.
func Default() (*Config, error) {
	works, err := assets.LoadDefaultWorks()
	if err != nil {
		return nil, err
	}
	return &Config{
		Fetch: FetchConfig{Mode: workbook.FetchModeStrict, DPI: workbook.DefaultDPI},
		Page:  PageConfig{Size: "letter", Margin: 0.75},
		Works: works,
	}, nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator it is treated as a file
// path; otherwise it is searched in standard locations. A config with
// no works inherits the embedded default work list.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolvePath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	var loaded Config
	if err := yamlutil.UnmarshalStrict(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	merge(cfg, &loaded)
	return cfg, nil
}

// merge overlays non-zero loaded fields onto the defaults.
func merge(dst, src *Config) {
	if src.Output.Path != "" {
		dst.Output.Path = src.Output.Path
	}
	if src.Fetch.Mode != "" {
		dst.Fetch.Mode = src.Fetch.Mode
	}
	if src.Fetch.DPI != 0 {
		dst.Fetch.DPI = src.Fetch.DPI
	}
	if src.Page.Size != "" {
		dst.Page.Size = src.Page.Size
	}
	if src.Page.Margin != 0 {
		dst.Page.Margin = src.Page.Margin
	}
	if len(src.Works) > 0 {
		dst.Works = src.Works
	}
	if src.Sketch.Enabled {
		dst.Sketch = src.Sketch
	}
}

// resolvePath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, the user config dir.
func resolvePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// SearchedPaths reports where Load would look for a named config,
// for error hints.
func SearchedPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, configDirName, name+".yaml"),
			filepath.Join(dir, configDirName, name+".yml"),
		)
	}
	return paths
}

// Geometry converts the page settings to workbook geometry.
func (c *Config) Geometry() (workbook.Geometry, error) {
	geo := workbook.DefaultGeometry()
	switch strings.ToLower(c.Page.Size) {
	case "", "letter":
		// defaults
	case "a4":
		geo.PageWidth = workbook.PageWidthA4
		geo.PageHeight = workbook.PageHeightA4
	default:
		return workbook.Geometry{}, fmt.Errorf("%w: %q", ErrUnknownPageSize, c.Page.Size)
	}
	if c.Page.Margin != 0 {
		geo.Margin = c.Page.Margin * workbook.Inch
	}
	return geo, nil
}

// Input converts the configuration to a build input.
func (c *Config) Input() (workbook.Input, error) {
	geo, err := c.Geometry()
	if err != nil {
		return workbook.Input{}, err
	}

	works := make([]workbook.Work, len(c.Works))
	for i, w := range c.Works {
		works[i] = workbook.Work{
			Key:         w.Key,
			Title:       w.Title,
			Heading:     w.Heading,
			Prompt:      w.Prompt,
			SourceURL:   w.SourceURL,
			License:     w.License,
			Citation:    w.Citation,
			SourcePage:  w.SourcePage,
			DPI:         w.DPI,
			HeightScale: w.HeightScale,
		}
	}

	input := workbook.Input{
		Works:      works,
		Geometry:   &geo,
		Mode:       c.Fetch.Mode,
		DPI:        c.Fetch.DPI,
		OutputPath: c.Output.Path,
	}
	if c.Sketch.Enabled {
		input.Sketch = &workbook.SketchConfig{
			Title:        c.Sketch.Title,
			Description:  c.Sketch.Description,
			ImagePath:    c.Sketch.ImagePath,
			ScoreTitle:   c.Sketch.ScoreTitle,
			ScoreCaption: c.Sketch.ScoreCaption,
			ScorePath:    c.Sketch.ScorePath,
			OutlineTitle: c.Sketch.OutlineTitle,
			OutlineIntro: c.Sketch.OutlineIntro,
			OutlineRows:  c.Sketch.OutlineRows,
			OutlineNote:  c.Sketch.OutlineNote,
		}
	}
	return input, nil
}
