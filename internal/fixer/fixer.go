// Package fixer applies the textual edits attached to findings back onto
// the original source. Edits are range-based and column-precise; they are
// validated for overlap and applied bottom-up so earlier edits never
// shift the offsets of later ones.
package fixer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tt "github.com/elmlint/elin/internal/types"
)

// maxPasses bounds the fix/re-lint convergence loop. Each pass emits at
// most one fix per original region, so a handful of passes settles any
// realistic chain of rewrites.
const maxPasses = 10

type Fixer struct {
	DryRun bool
}

func New(dryRun bool) *Fixer {
	return &Fixer{DryRun: dryRun}
}

// offsetOf converts a 1-based position into a byte offset in src.
// Lines are separated by single '\n' bytes.
func offsetOf(lineStarts []int, pos tt.Position) (int, error) {
	if pos.Line < 1 || pos.Line > len(lineStarts) {
		return 0, fmt.Errorf("position %d:%d outside source", pos.Line, pos.Column)
	}
	return lineStarts[pos.Line-1] + pos.Column - 1, nil
}

func computeLineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// ApplyEdits applies one finding's edit list to src. The edits must not
// overlap; applying them together yields the rewritten source.
func ApplyEdits(src string, edits []tt.Edit) (string, error) {
	if len(edits) == 0 {
		return src, nil
	}
	sorted := make([]tt.Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Before(sorted[j].Range.Start)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Range.Overlaps(sorted[i].Range) {
			return "", fmt.Errorf("overlapping edits at %d:%d",
				sorted[i].Range.Start.Line, sorted[i].Range.Start.Column)
		}
	}

	lineStarts := computeLineStarts(src)
	var b strings.Builder
	last := 0
	for _, e := range sorted {
		start, err := offsetOf(lineStarts, e.Range.Start)
		if err != nil {
			return "", err
		}
		end, err := offsetOf(lineStarts, e.Range.End)
		if err != nil {
			return "", err
		}
		if start < last || end < start || end > len(src) {
			return "", fmt.Errorf("edit range %d:%d out of order",
				e.Range.Start.Line, e.Range.Start.Column)
		}
		b.WriteString(src[last:start])
		b.WriteString(e.New)
		last = end
	}
	b.WriteString(src[last:])
	return b.String(), nil
}

// ApplyIssues applies every fixable finding whose matched range does not
// overlap a finding already applied in this pass. It returns the new
// source and the number of findings applied.
func ApplyIssues(src string, issues []tt.Issue) (string, int, error) {
	fixable := make([]tt.Issue, 0, len(issues))
	for _, is := range issues {
		if is.HasFix() {
			fixable = append(fixable, is)
		}
	}
	if len(fixable) == 0 {
		return src, 0, nil
	}
	sort.Slice(fixable, func(i, j int) bool {
		return fixable[i].Range.Start.Before(fixable[j].Range.Start)
	})

	var taken []tt.Range
	var edits []tt.Edit
	applied := 0
	for _, is := range fixable {
		overlap := false
		for _, r := range taken {
			if r.Overlaps(is.Range) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		taken = append(taken, is.Range)
		edits = append(edits, is.Fix...)
		applied++
	}

	out, err := ApplyEdits(src, edits)
	if err != nil {
		return "", 0, err
	}
	return out, applied, nil
}

// Fix runs the lint-apply loop on one file until no fixable finding
// remains, then writes the result back. relint re-runs the whole pass on
// the current source, mirroring the single-step rewrite model: one fix
// per region per pass, convergence by iteration.
func (f *Fixer) Fix(filename string, relint func(src string) ([]tt.Issue, error)) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	src := string(content)
	total := 0

	for pass := 0; pass < maxPasses; pass++ {
		issues, err := relint(src)
		if err != nil {
			return fmt.Errorf("failed to lint %s: %w", filename, err)
		}
		if f.DryRun {
			for _, is := range issues {
				if is.HasFix() {
					fmt.Printf("Would fix %s at line %d: %s\n", filename, is.Range.Start.Line, is.Message)
				}
			}
			return nil
		}
		next, applied, err := ApplyIssues(src, issues)
		if err != nil {
			return fmt.Errorf("failed to apply fixes to %s: %w", filename, err)
		}
		if applied == 0 {
			break
		}
		src = next
		total += applied
	}

	if total == 0 {
		return nil
	}
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("Fixed %d issue(s) in %s\n", total, filename)
	return nil
}
