// Package analyzer runs read-only inspections over directory trees,
// reporting duplicate candidates, large files and aggregate statistics.
package analyzer

import (
	"github.com/fenilsonani/tidyfiles/internal/scanner"
)

// Limits caps how many items the duplicate and large-file reports
// carry. Anything beyond a cap is counted, not listed. Stats reports
// are never capped here; they keep full aggregates and the renderer
// decides how many rows to show.
type Limits struct {
	DuplicateGroups int `json:"duplicate_groups" yaml:"duplicate_groups"`
	GroupMembers    int `json:"group_members" yaml:"group_members"`
	LargeFiles      int `json:"large_files" yaml:"large_files"`
}

// DefaultLimits returns the standard report caps.
func DefaultLimits() Limits {
	return Limits{
		DuplicateGroups: 10,
		GroupMembers:    5,
		LargeFiles:      15,
	}
}

// Analyzer runs read-only analyses over a scanner.
type Analyzer struct {
	scanner *scanner.Scanner
	limits  Limits
}

// New creates an Analyzer with the given report caps.
func New(s *scanner.Scanner, limits Limits) *Analyzer {
	return &Analyzer{scanner: s, limits: limits}
}
