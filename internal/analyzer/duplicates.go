package analyzer

import (
	"sort"

	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

// DuplicateGroup holds files sharing one byte size. Matching sizes mark
// candidates only; contents are never compared.
type DuplicateGroup struct {
	Size      int64    `json:"size" yaml:"size"`
	SizeHuman string   `json:"size_human" yaml:"size_human"`
	Files     []string `json:"files" yaml:"files"`
	Omitted   int      `json:"omitted,omitempty" yaml:"omitted,omitempty"`
	Total     int      `json:"total" yaml:"total"`
}

// DuplicateReport lists duplicate candidates found in a tree.
type DuplicateReport struct {
	Root          string           `json:"root" yaml:"root"`
	Scanned       int              `json:"scanned" yaml:"scanned"`
	Groups        []DuplicateGroup `json:"groups" yaml:"groups"`
	GroupsOmitted int              `json:"groups_omitted,omitempty" yaml:"groups_omitted,omitempty"`
	TotalGroups   int              `json:"total_groups" yaml:"total_groups"`
	WastedBytes   int64            `json:"wasted_bytes" yaml:"wasted_bytes"`
	WastedHuman   string           `json:"wasted_human" yaml:"wasted_human"`
}

// FindDuplicates scans root recursively and groups same-sized files.
// Zero-byte files are ignored. Groups come back largest first, capped
// per the analyzer's limits; wasted-space totals cover every group,
// capped or not.
func (a *Analyzer) FindDuplicates(root string) (*DuplicateReport, error) {
	entries, err := a.scanner.Scan(root, true)
	if err != nil {
		return nil, err
	}

	bySize := map[int64][]string{}
	for _, e := range entries {
		if e.Size == 0 {
			continue
		}
		bySize[e.Size] = append(bySize[e.Size], e.RelPath)
	}

	report := &DuplicateReport{Root: root, Scanned: len(entries)}

	sizes := []int64{}
	for size, files := range bySize {
		if len(files) > 1 {
			sizes = append(sizes, size)
			report.TotalGroups++
			report.WastedBytes += size * int64(len(files)-1)
		}
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })

	for _, size := range sizes {
		if len(report.Groups) >= a.limits.DuplicateGroups {
			report.GroupsOmitted = report.TotalGroups - len(report.Groups)
			break
		}

		files := bySize[size]
		sort.Strings(files)

		group := DuplicateGroup{
			Size:      size,
			SizeHuman: utils.FormatBytes(size),
			Total:     len(files),
		}
		if len(files) > a.limits.GroupMembers {
			group.Files = files[:a.limits.GroupMembers]
			group.Omitted = len(files) - a.limits.GroupMembers
		} else {
			group.Files = files
		}
		report.Groups = append(report.Groups, group)
	}

	report.WastedHuman = utils.FormatBytes(report.WastedBytes)
	return report, nil
}
