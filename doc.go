// Package workbook builds a paginated study-guide PDF that combines
// fixed instructional copy with reference score excerpts fetched from
// external sources.
//
// # Quick Start
//
// Create a service and run a build:
//
//	svc := workbook.New()
//	result, err := svc.Build(ctx, workbook.Input{
//	    Works: works,
//	    Mode:  workbook.FetchModePlaceholder,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.OutputPath)
//
// # Pipeline
//
// A build runs these stages, strictly in order:
//
//  1. Section assembly (Builder): front matter, study plan, one
//     exercise section per configured work, reference tables,
//     glossary, progress tracker. Each work's excerpt is resolved
//     here, one at a time, via the AssetResolver.
//  2. Layout (Engine): the block sequence flows top to bottom across
//     fixed-size pages. Blocks that do not fit open a new page;
//     explicit page breaks always do. Images scale into their
//     bounding box, preserving aspect ratio unless stretched.
//  3. Rendering: placed blocks are drawn at their recorded positions
//     via fpdf and written atomically to a single output file.
//
// # Fetch Modes
//
// Strict mode aborts the build on any fetch or rasterization failure,
// before anything is written. Placeholder mode substitutes a boxed
// notice carrying the work's title and source URL and continues.
// There are no retries in either mode.
//
// # Rasterization Requirements
//
// Turning a page of a source PDF into an image requires pdftoppm from
// poppler-utils on PATH. Without it, strict builds fail up front and
// placeholder builds produce placeholder boxes for every work.
package workbook
