package analyzer

import (
	"sort"

	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

const noExtension = "(no extension)"

// CategoryStat aggregates one category's file count and byte total.
type CategoryStat struct {
	Category  string `json:"category" yaml:"category"`
	Count     int    `json:"count" yaml:"count"`
	Size      int64  `json:"size" yaml:"size"`
	SizeHuman string `json:"size_human" yaml:"size_human"`
}

// ExtensionStat counts files sharing one extension.
type ExtensionStat struct {
	Ext   string `json:"ext" yaml:"ext"`
	Count int    `json:"count" yaml:"count"`
}

// StatsReport summarizes a tree with full aggregates: totals, every
// category, every extension. Callers rendering for humans cap the
// listings themselves.
type StatsReport struct {
	Root       string          `json:"root" yaml:"root"`
	TotalFiles int             `json:"total_files" yaml:"total_files"`
	TotalBytes int64           `json:"total_bytes" yaml:"total_bytes"`
	TotalHuman string          `json:"total_human" yaml:"total_human"`
	Categories []CategoryStat  `json:"categories" yaml:"categories"`
	Extensions []ExtensionStat `json:"extensions" yaml:"extensions"`
}

// Stats scans root recursively and aggregates counts and sizes.
// Categories come back largest first; extensions most common first.
// Extensionless files count under "(no extension)".
func (a *Analyzer) Stats(root string) (*StatsReport, error) {
	entries, err := a.scanner.Scan(root, true)
	if err != nil {
		return nil, err
	}

	report := &StatsReport{Root: root}

	byCategory := map[string]*CategoryStat{}
	byExt := map[string]int{}

	for _, e := range entries {
		report.TotalFiles++
		report.TotalBytes += e.Size

		cat := string(e.Category)
		cs, ok := byCategory[cat]
		if !ok {
			cs = &CategoryStat{Category: cat}
			byCategory[cat] = cs
		}
		cs.Count++
		cs.Size += e.Size

		ext := e.Ext
		if ext == "" {
			ext = noExtension
		}
		byExt[ext]++
	}

	report.TotalHuman = utils.FormatBytes(report.TotalBytes)

	for _, cs := range byCategory {
		cs.SizeHuman = utils.FormatBytes(cs.Size)
		report.Categories = append(report.Categories, *cs)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		if report.Categories[i].Size != report.Categories[j].Size {
			return report.Categories[i].Size > report.Categories[j].Size
		}
		return report.Categories[i].Category < report.Categories[j].Category
	})

	exts := []ExtensionStat{}
	for ext, count := range byExt {
		exts = append(exts, ExtensionStat{Ext: ext, Count: count})
	}
	sort.Slice(exts, func(i, j int) bool {
		if exts[i].Count != exts[j].Count {
			return exts[i].Count > exts[j].Count
		}
		return exts[i].Ext < exts[j].Ext
	})

	report.Extensions = exts

	return report, nil
}
