package fixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/elmlint/elin/internal/types"
)

func rng(sl, sc, el, ec int) tt.Range {
	return tt.Range{
		Start: tt.Position{Line: sl, Column: sc},
		End:   tt.Position{Line: el, Column: ec},
	}
}

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		edits []tt.Edit
		want  string
	}{
		{
			name:  "no edits",
			src:   "a = 1\n",
			edits: nil,
			want:  "a = 1\n",
		},
		{
			name:  "replace within a line",
			src:   "a = x || True\n",
			edits: []tt.Edit{tt.ReplaceWith(rng(1, 5, 1, 14), "True")},
			want:  "a = True\n",
		},
		{
			name: "two edits on one line apply independently",
			src:  "a = f x y\n",
			edits: []tt.Edit{
				tt.ReplaceWith(rng(1, 5, 1, 6), "g"),
				tt.Remove(rng(1, 8, 1, 10)),
			},
			want: "a = g x\n",
		},
		{
			name:  "insertion",
			src:   "a = 1\n",
			edits: []tt.Edit{tt.InsertAt(tt.Position{Line: 1, Column: 1}, "-- ")},
			want:  "-- a = 1\n",
		},
		{
			name:  "removal across lines",
			src:   "a =\n    1 +\n    0\n",
			edits: []tt.Edit{tt.Remove(rng(2, 6, 3, 6))},
			want:  "a =\n    1\n",
		},
		{
			name: "unsorted input is sorted before applying",
			src:  "a = b ++ c\n",
			edits: []tt.Edit{
				tt.ReplaceWith(rng(1, 10, 1, 11), "z"),
				tt.ReplaceWith(rng(1, 5, 1, 6), "y"),
			},
			want: "a = y ++ z\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyEdits(tc.src, tc.edits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyEditsRejectsOverlap(t *testing.T) {
	t.Parallel()

	_, err := ApplyEdits("a = x || y\n", []tt.Edit{
		tt.ReplaceWith(rng(1, 1, 1, 6), "b"),
		tt.ReplaceWith(rng(1, 4, 1, 9), "c"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping edits")
}

func TestApplyEditsRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := ApplyEdits("a = 1\n", []tt.Edit{
		tt.ReplaceWith(rng(5, 1, 5, 2), "x"),
	})
	assert.Error(t, err)
}

func TestApplyIssuesSkipsOverlapping(t *testing.T) {
	t.Parallel()

	src := "a = x || y || z\n"
	issues := []tt.Issue{
		{
			Rule:    "simplify-boolean",
			Message: "first",
			Range:   rng(1, 5, 1, 16),
			Fix:     []tt.Edit{tt.ReplaceWith(rng(1, 5, 1, 16), "x")},
		},
		{
			Rule:    "simplify-boolean",
			Message: "nested inside the first",
			Range:   rng(1, 10, 1, 16),
			Fix:     []tt.Edit{tt.ReplaceWith(rng(1, 10, 1, 16), "y")},
		},
		{
			Rule:    "simplify-boolean",
			Message: "no fix attached",
			Range:   rng(1, 1, 1, 2),
		},
	}

	out, applied, err := ApplyIssues(src, issues)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, "a = x\n", out)
}

func TestFixerFixConvergesAndWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.elm")
	require.NoError(t, os.WriteFile(path, []byte("a = x || True\n"), 0o644))

	// lint stub: one finding while the pattern is still present
	relint := func(src string) ([]tt.Issue, error) {
		if src != "a = x || True\n" {
			return nil, nil
		}
		return []tt.Issue{{
			Rule:    "simplify-boolean",
			Message: "Part of the expression is unnecessary",
			Range:   rng(1, 5, 1, 14),
			Fix:     []tt.Edit{tt.ReplaceWith(rng(1, 5, 1, 14), "True")},
		}}, nil
	}

	require.NoError(t, New(false).Fix(path, relint))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a = True\n", string(content))
}

func TestFixerDryRunLeavesFileAlone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.elm")
	require.NoError(t, os.WriteFile(path, []byte("a = x || True\n"), 0o644))

	relint := func(src string) ([]tt.Issue, error) {
		return []tt.Issue{{
			Rule:    "simplify-boolean",
			Message: "Part of the expression is unnecessary",
			Range:   rng(1, 5, 1, 14),
			Fix:     []tt.Edit{tt.ReplaceWith(rng(1, 5, 1, 14), "True")},
		}}, nil
	}

	require.NoError(t, New(true).Fix(path, relint))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a = x || True\n", string(content))
}
