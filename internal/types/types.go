package types

import "strings"

// Position is a 1-based line/column location in an Elm source file.
type Position struct {
	Line   int
	Column int
}

// Before reports whether p is strictly before q in source order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Range spans from Start (inclusive) to End (exclusive) in a source file.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether r fully encloses s.
func (r Range) Contains(s Range) bool {
	return !s.Start.Before(r.Start) && !r.End.Before(s.End)
}

// Overlaps reports whether r and s share at least one position.
func (r Range) Overlaps(s Range) bool {
	return r.Start.Before(s.End) && s.Start.Before(r.End)
}

// Edit is a single textual change against the original source.
// A removal is an Edit with an empty New; an insertion is an Edit whose
// Range is empty (Start == End).
type Edit struct {
	Range Range
	New   string
}

// Remove builds an edit that deletes the text spanned by r.
func Remove(r Range) Edit {
	return Edit{Range: r}
}

// ReplaceWith builds an edit that substitutes text for the span r.
func ReplaceWith(r Range, text string) Edit {
	return Edit{Range: r, New: text}
}

// InsertAt builds a zero-width edit that splices text in at p.
func InsertAt(p Position, text string) Edit {
	return Edit{Range: Range{Start: p, End: p}, New: text}
}

// Issue represents a simplification opportunity found in a module.
// Fix is nil when the rule offers no automatic rewrite.
type Issue struct {
	Rule     string
	Filename string
	Severity Severity
	Message  string
	Details  []string
	Range    Range
	Fix      []Edit
}

// HasFix reports whether the issue carries an automatic rewrite.
func (i Issue) HasFix() bool {
	return len(i.Fix) > 0
}

// SourceCode stores the content of a source file, split into lines.
type SourceCode struct {
	Lines []string
}

// NewSourceCode splits source text into a SourceCode value.
func NewSourceCode(src string) *SourceCode {
	return &SourceCode{Lines: strings.Split(src, "\n")}
}

// Snippet returns the exact original text spanned by r.
// Out-of-bounds ranges yield an empty string rather than panicking; the
// engine only ever asks for ranges the parser produced.
func (s *SourceCode) Snippet(r Range) string {
	if r.Start.Line < 1 || r.End.Line > len(s.Lines) || r.End.Before(r.Start) {
		return ""
	}
	if r.Start.Line == r.End.Line {
		line := s.Lines[r.Start.Line-1]
		if r.Start.Column-1 > len(line) || r.End.Column-1 > len(line) {
			return ""
		}
		return line[r.Start.Column-1 : r.End.Column-1]
	}
	var b strings.Builder
	for ln := r.Start.Line; ln <= r.End.Line; ln++ {
		line := s.Lines[ln-1]
		switch ln {
		case r.Start.Line:
			if r.Start.Column-1 <= len(line) {
				b.WriteString(line[r.Start.Column-1:])
			}
		case r.End.Line:
			b.WriteString("\n")
			if r.End.Column-1 <= len(line) {
				b.WriteString(line[:r.End.Column-1])
			}
		default:
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

// String joins the lines back into the full source text.
func (s *SourceCode) String() string {
	return strings.Join(s.Lines, "\n")
}
