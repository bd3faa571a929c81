package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	workbook "github.com/alnah/go-workbook"
)

// printSummary writes a per-work resolution table plus page/warning
// counts. Verbose mode only.
func printSummary(w io.Writer, works []workbook.Work, result *workbook.Result) {
	degraded := make(map[string]bool, len(result.Placeholders))
	for _, key := range result.Placeholders {
		degraded[key] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Work", "Source Page", "Image"})
	for _, work := range works {
		status := "embedded"
		if degraded[work.Key] {
			status = "placeholder"
		}
		t.AppendRow(table.Row{work.Key, work.SourcePage, status})
	}
	t.Render()

	fmt.Fprintf(w, "Pages: %d\n", len(result.Document.Pages))
}

// printAdvisories reports degraded builds: placeholder substitutions
// and layout overflows get a visible notice even outside verbose mode.
func printAdvisories(w io.Writer, result *workbook.Result) {
	advisory := color.New(color.FgYellow)
	if len(result.Placeholders) > 0 {
		_, _ = advisory.Fprintf(w, "Note: %d work(s) rendered as placeholders instead of real images: %v\n",
			len(result.Placeholders), result.Placeholders)
	}
	for _, warning := range result.Warnings {
		_, _ = advisory.Fprintf(w, "Warning: %s\n", warning)
	}
}
