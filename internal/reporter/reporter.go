// Package reporter renders analysis and organize reports for the
// terminal or for machine consumption.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/tidyfiles/internal/analyzer"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/pruner"
	"github.com/fenilsonani/tidyfiles/internal/ui/styles"
)

// OutputFormat selects how reports are rendered.
type OutputFormat string

const (
	FormatSummary OutputFormat = "summary"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

// ParseFormat validates a format name from a flag.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatSummary, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want summary, json or yaml)", s)
	}
}

// Display caps how many rows a summary lists per section. Zero values
// disable a cap. JSON and YAML output always carry the full report.
type Display struct {
	PreviewPerBucket int
	TopCategories    int
	TopExtensions    int
}

// Reporter writes reports to a single destination in one format.
type Reporter struct {
	w       io.Writer
	format  OutputFormat
	display Display
}

// New creates a Reporter with the given summary caps.
func New(w io.Writer, format OutputFormat, display Display) *Reporter {
	return &Reporter{w: w, format: format, display: display}
}

// Render writes a report. Unknown report types are an error.
func (r *Reporter) Render(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		defer enc.Close()
		return enc.Encode(v)
	}

	switch report := v.(type) {
	case *organizer.Report:
		return r.renderOrganize(report)
	case *analyzer.DuplicateReport:
		return r.renderDuplicates(report)
	case *analyzer.LargeFileReport:
		return r.renderLargeFiles(report)
	case *analyzer.StatsReport:
		return r.renderStats(report)
	case *pruner.Report:
		return r.renderPrune(report)
	default:
		return fmt.Errorf("no renderer for %T", v)
	}
}

// SaveToFile renders a report into a file instead of the reporter's
// writer, inferring the format from the extension (.json or .yaml).
func SaveToFile(path string, v any) error {
	format := FormatJSON
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json", "":
	default:
		return fmt.Errorf("unsupported report extension %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	return New(f, format, Display{}).Render(v)
}

func (r *Reporter) renderOrganize(report *organizer.Report) error {
	if report.DryRun {
		fmt.Fprintln(r.w, styles.Title.Render(fmt.Sprintf("Preview: %s", filepath.Base(report.Root))))
	} else {
		fmt.Fprintln(r.w, styles.Title.Render(fmt.Sprintf("Organized: %s", filepath.Base(report.Root))))
	}
	fmt.Fprintln(r.w)

	if report.Planned == 0 {
		fmt.Fprintln(r.w, styles.Muted.Render("No files to organize."))
		return nil
	}

	for _, bucket := range report.Buckets {
		fmt.Fprintf(r.w, "%s (%d files)\n", styles.Header.Render(bucket.Name), len(bucket.Moves))
		shown := bucket.Moves
		if limit := r.display.PreviewPerBucket; limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		for _, mv := range shown {
			fmt.Fprintf(r.w, "  %s\n", mv.Name)
		}
		if omitted := len(bucket.Moves) - len(shown); omitted > 0 {
			fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("  ... and %d more", omitted)))
		}
	}

	fmt.Fprintln(r.w)
	if report.DryRun {
		fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("%d files would be moved. Re-run without --dry-run to organize.", report.Planned)))
		return nil
	}

	fmt.Fprintln(r.w, styles.Emphasis.Render(fmt.Sprintf("Moved %d of %d files.", report.Moved, report.Planned)))
	for _, skip := range report.Skipped {
		fmt.Fprintln(r.w, styles.Warning.Render(fmt.Sprintf("skipped %s: %s", skip.Name, skip.Reason)))
	}
	return nil
}

func (r *Reporter) renderDuplicates(report *analyzer.DuplicateReport) error {
	fmt.Fprintln(r.w, styles.Title.Render(fmt.Sprintf("Potential duplicates: %s", filepath.Base(report.Root))))
	fmt.Fprintln(r.w)

	if report.TotalGroups == 0 {
		fmt.Fprintln(r.w, styles.Success.Render("No potential duplicates found."))
		return nil
	}

	for _, g := range report.Groups {
		fmt.Fprintf(r.w, "%s  %d files\n", styles.Header.Render(g.SizeHuman), g.Total)
		for _, f := range g.Files {
			fmt.Fprintf(r.w, "  %s\n", f)
		}
		if g.Omitted > 0 {
			fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("  ... and %d more", g.Omitted)))
		}
	}
	if report.GroupsOmitted > 0 {
		fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("... and %d more groups", report.GroupsOmitted)))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s wasted across %d groups. Sizes match; verify contents before deleting.\n",
		styles.Warning.Render(report.WastedHuman), report.TotalGroups)
	return nil
}

func (r *Reporter) renderLargeFiles(report *analyzer.LargeFileReport) error {
	fmt.Fprintln(r.w, styles.Title.Render(fmt.Sprintf("Large files: %s (at least %s)", filepath.Base(report.Root), report.MinHuman)))
	fmt.Fprintln(r.w)

	if report.TotalCount == 0 {
		fmt.Fprintln(r.w, styles.Success.Render(fmt.Sprintf("No files of %s or more found.", report.MinHuman)))
		return nil
	}

	for _, f := range report.Files {
		fmt.Fprintf(r.w, "%10s  %s %s\n", f.SizeHuman, f.RelPath, styles.Muted.Render(fmt.Sprintf("(%s)", f.Category)))
	}
	if report.Omitted > 0 {
		fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("... and %d more", report.Omitted)))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s in %d files.\n", styles.Emphasis.Render(report.TotalHuman), report.TotalCount)
	return nil
}

func (r *Reporter) renderStats(report *analyzer.StatsReport) error {
	fmt.Fprintln(r.w, styles.Title.Render(fmt.Sprintf("Folder statistics: %s", filepath.Base(report.Root))))
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Total files: %d\n", report.TotalFiles)
	fmt.Fprintf(r.w, "Total size:  %s\n", report.TotalHuman)

	if report.TotalFiles == 0 {
		return nil
	}

	categories := report.Categories
	if limit := r.display.TopCategories; limit > 0 && len(categories) > limit {
		categories = categories[:limit]
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, styles.Header.Render("Top categories"))
	for _, c := range categories {
		fmt.Fprintf(r.w, "  %-12s %5d files  %s\n", c.Category, c.Count, c.SizeHuman)
	}
	if omitted := len(report.Categories) - len(categories); omitted > 0 {
		fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("  ... and %d more", omitted)))
	}

	extensions := report.Extensions
	if limit := r.display.TopExtensions; limit > 0 && len(extensions) > limit {
		extensions = extensions[:limit]
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, styles.Header.Render("Top extensions"))
	for _, e := range extensions {
		fmt.Fprintf(r.w, "  %-16s %d files\n", e.Ext, e.Count)
	}
	if omitted := len(report.Extensions) - len(extensions); omitted > 0 {
		fmt.Fprintln(r.w, styles.Muted.Render(fmt.Sprintf("  ... and %d more", omitted)))
	}
	return nil
}

func (r *Reporter) renderPrune(report *pruner.Report) error {
	if len(report.Removed) == 0 {
		fmt.Fprintln(r.w, styles.Success.Render("No empty folders found."))
		return nil
	}

	fmt.Fprintln(r.w, styles.Title.Render(fmt.Sprintf("Removed %d empty folders", len(report.Removed))))
	for _, name := range report.Removed {
		fmt.Fprintf(r.w, "  %s\n", name)
	}
	return nil
}
