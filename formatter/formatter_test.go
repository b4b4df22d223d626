package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/elmlint/elin/internal/types"
)

func init() {
	// keep the assertions free of escape codes
	color.NoColor = true
}

func span(sl, sc, el, ec int) tt.Range {
	return tt.Range{
		Start: tt.Position{Line: sl, Column: sc},
		End:   tt.Position{Line: el, Column: ec},
	}
}

func TestGenerateFormattedIssue(t *testing.T) {
	src := tt.NewSourceCode("module Test exposing (..)\n\na = x || True\n")
	issue := tt.Issue{
		Rule:     "simplify-boolean",
		Severity: tt.SeverityWarning,
		Filename: "test.elm",
		Message:  "Part of the expression is unnecessary",
		Details:  []string{"The expression can be replaced by the value it always evaluates to."},
		Range:    span(3, 5, 3, 14),
		Fix:      []tt.Edit{tt.ReplaceWith(span(3, 5, 3, 14), "True")},
	}

	out := GenerateFormattedIssue([]tt.Issue{issue}, src)

	assert.Contains(t, out, "warning: simplify-boolean")
	assert.Contains(t, out, "--> test.elm:3:5")
	assert.Contains(t, out, "3 | a = x || True")
	assert.Contains(t, out, strings.Repeat("~", 9))
	assert.Contains(t, out, "= Part of the expression is unnecessary")
	assert.Contains(t, out, "Suggestion:")
	assert.Contains(t, out, "3 | a = True")
	assert.Contains(t, out, "Note: The expression can be replaced by the value it always evaluates to.")
}

func TestGenerateFormattedIssueWithoutFix(t *testing.T) {
	src := tt.NewSourceCode("module Test exposing (..)\n\na = x || True\n")
	issue := tt.Issue{
		Rule:     "simplify-boolean",
		Severity: tt.SeverityWarning,
		Filename: "test.elm",
		Message:  "Part of the expression is unnecessary",
		Range:    span(3, 5, 3, 14),
	}

	out := GenerateFormattedIssue([]tt.Issue{issue}, src)

	assert.Contains(t, out, "Part of the expression is unnecessary")
	assert.NotContains(t, out, "Suggestion:")
	assert.NotContains(t, out, "Note: ")
}

func TestGenerateFormattedIssueSeverities(t *testing.T) {
	src := tt.NewSourceCode("module Test exposing (..)\n\na = Cmd.batch []\n")

	errIssue := tt.Issue{
		Rule:     "simplify-boolean",
		Severity: tt.SeverityError,
		Filename: "test.elm",
		Message:  "Part of the expression is unnecessary",
		Range:    span(3, 5, 3, 14),
	}
	infoIssue := tt.Issue{
		Rule:     "simplify-platform",
		Severity: tt.SeverityInfo,
		Filename: "test.elm",
		Message:  "The call to Cmd.batch will result in Cmd.none",
		Range:    span(3, 5, 3, 17),
	}

	assert.Contains(t, GenerateFormattedIssue([]tt.Issue{errIssue}, src), "error: ")
	assert.Contains(t, GenerateFormattedIssue([]tt.Issue{infoIssue}, src), "info: ")
}

func TestFixPreviewMultiLine(t *testing.T) {
	// the preview shows the rewritten region after applying the edits
	src := tt.NewSourceCode("a =\n    case p of\n        True ->\n            1\n\n        False ->\n            2\n")
	issue := tt.Issue{
		Rule:     "simplify-case",
		Severity: tt.SeverityWarning,
		Filename: "test.elm",
		Message:  "The case expression over a boolean can be written as an if expression",
		Range:    span(2, 5, 7, 14),
		Fix:      []tt.Edit{tt.ReplaceWith(span(2, 5, 7, 14), "if p then 1 else 2")},
	}

	out := GenerateFormattedIssue([]tt.Issue{issue}, src)
	assert.Contains(t, out, "Suggestion:")
	assert.Contains(t, out, "if p then 1 else 2")
}

func TestFindCommonIndent(t *testing.T) {
	assert.Equal(t, "    ", findCommonIndent([]string{"    a", "    b"}))
	assert.Equal(t, "  ", findCommonIndent([]string{"  a", "    b"}))
	assert.Equal(t, "", findCommonIndent([]string{"a", "    b"}))
	// blank lines do not count against the common prefix
	assert.Equal(t, "    ", findCommonIndent([]string{"    a", "", "    b"}))
	assert.Equal(t, "", findCommonIndent(nil))
}

func TestCalculateVisualColumn(t *testing.T) {
	assert.Equal(t, 4, calculateVisualColumn("a = x", 5))
	// a tab expands to the next tab stop
	assert.Equal(t, 8, calculateVisualColumn("\tx", 2))
	assert.Equal(t, 0, calculateVisualColumn("abc", -1))
}
