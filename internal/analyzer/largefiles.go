package analyzer

import (
	"sort"

	"github.com/fenilsonani/tidyfiles/internal/category"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

// LargeFile is one file at or above the size threshold.
type LargeFile struct {
	RelPath   string            `json:"rel_path" yaml:"rel_path"`
	Size      int64             `json:"size" yaml:"size"`
	SizeHuman string            `json:"size_human" yaml:"size_human"`
	Category  category.Category `json:"category" yaml:"category"`
}

// LargeFileReport lists the biggest files in a tree.
type LargeFileReport struct {
	Root       string      `json:"root" yaml:"root"`
	MinSize    int64       `json:"min_size" yaml:"min_size"`
	MinHuman   string      `json:"min_human" yaml:"min_human"`
	Files      []LargeFile `json:"files" yaml:"files"`
	Omitted    int         `json:"omitted,omitempty" yaml:"omitted,omitempty"`
	TotalCount int         `json:"total_count" yaml:"total_count"`
	TotalBytes int64       `json:"total_bytes" yaml:"total_bytes"`
	TotalHuman string      `json:"total_human" yaml:"total_human"`
}

// FindLargeFiles scans root recursively for files of at least minSize
// bytes, largest first. The list is capped per the analyzer's limits;
// the byte total covers every matching file, listed or not.
func (a *Analyzer) FindLargeFiles(root string, minSize int64) (*LargeFileReport, error) {
	entries, err := a.scanner.Scan(root, true)
	if err != nil {
		return nil, err
	}

	report := &LargeFileReport{
		Root:     root,
		MinSize:  minSize,
		MinHuman: utils.FormatBytes(minSize),
	}

	matched := []LargeFile{}
	for _, e := range entries {
		if e.Size < minSize {
			continue
		}
		matched = append(matched, LargeFile{
			RelPath:   e.RelPath,
			Size:      e.Size,
			SizeHuman: utils.FormatBytes(e.Size),
			Category:  e.Category,
		})
		report.TotalBytes += e.Size
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Size != matched[j].Size {
			return matched[i].Size > matched[j].Size
		}
		return matched[i].RelPath < matched[j].RelPath
	})

	report.TotalCount = len(matched)
	report.TotalHuman = utils.FormatBytes(report.TotalBytes)

	if len(matched) > a.limits.LargeFiles {
		report.Files = matched[:a.limits.LargeFiles]
		report.Omitted = len(matched) - a.limits.LargeFiles
	} else {
		report.Files = matched
	}

	return report, nil
}
