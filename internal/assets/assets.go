// Package assets provides the embedded workbook content decks: the
// fixed instructional copy and the default work list. Both are plain
// configuration data; nothing here is computed.
package assets

import (
	"embed"
	"fmt"

	"github.com/alnah/go-workbook/internal/yamlutil"
)

//go:embed decks/*.yaml
var decks embed.FS

// Deck is the fixed instructional copy of the workbook.
type Deck struct {
	Front       FrontMatter `yaml:"front"`
	Plan        Plan        `yaml:"plan"`
	Reference   Reference   `yaml:"reference"`
	Glossary    Glossary    `yaml:"glossary"`
	Tracker     Tracker     `yaml:"tracker"`
	Placeholder Wording     `yaml:"placeholder"`
}

// FrontMatter is the title page copy.
type FrontMatter struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Intro      string `yaml:"intro"`
	HowToTitle string `yaml:"howToTitle"`
	HowTo      string `yaml:"howTo"`
}

// Plan is the condensed study-plan table copy.
type Plan struct {
	Title   string     `yaml:"title"`
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
	Tip     string     `yaml:"tip"`
}

// Reference is the archetype reference table and cadence line.
type Reference struct {
	Title         string     `yaml:"title"`
	Rows          [][]string `yaml:"rows"`
	CadencesTitle string     `yaml:"cadencesTitle"`
	Cadences      string     `yaml:"cadences"`
}

// Glossary is the legend page copy.
type Glossary struct {
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one glossary term.
type Entry struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
}

// Tracker is the progress-tracker table copy.
type Tracker struct {
	Title     string   `yaml:"title"`
	Headers   []string `yaml:"headers"`
	BlankRows int      `yaml:"blankRows"`
}

// Wording is the fixed placeholder-box text.
type Wording struct {
	URLLabel    string `yaml:"urlLabel"`
	Instruction string `yaml:"instruction"`
	Note        string `yaml:"note"`
}

// WorkEntry mirrors the work configuration schema for the embedded
// default list.
type WorkEntry struct {
	Key         string  `yaml:"key"`
	Title       string  `yaml:"title"`
	Heading     string  `yaml:"heading"`
	Prompt      string  `yaml:"prompt"`
	SourceURL   string  `yaml:"sourceURL"`
	License     string  `yaml:"license"`
	Citation    string  `yaml:"citation"`
	SourcePage  int     `yaml:"sourcePage"`
	DPI         int     `yaml:"dpi"`
	HeightScale float64 `yaml:"heightScale"`
}

type workFile struct {
	Works []WorkEntry `yaml:"works"`
}

// LoadDeck returns the embedded instructional copy.
func LoadDeck() (*Deck, error) {
	data, err := decks.ReadFile("decks/copy.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded copy deck: %w", err)
	}
	var d Deck
	if err := yamlutil.UnmarshalStrict(data, &d); err != nil {
		return nil, fmt.Errorf("parsing embedded copy deck: %w", err)
	}
	return &d, nil
}

// LoadDefaultWorks returns the embedded default work list.
func LoadDefaultWorks() ([]WorkEntry, error) {
	data, err := decks.ReadFile("decks/works.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded works deck: %w", err)
	}
	var f workFile
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parsing embedded works deck: %w", err)
	}
	return f.Works, nil
}
