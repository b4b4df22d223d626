package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPositionBefore(t *testing.T) {
	t.Parallel()

	assert.True(t, Position{Line: 1, Column: 5}.Before(Position{Line: 2, Column: 1}))
	assert.True(t, Position{Line: 3, Column: 2}.Before(Position{Line: 3, Column: 4}))
	assert.False(t, Position{Line: 3, Column: 4}.Before(Position{Line: 3, Column: 4}))
	assert.False(t, Position{Line: 4, Column: 1}.Before(Position{Line: 3, Column: 9}))
}

func TestRangeContainsAndOverlaps(t *testing.T) {
	t.Parallel()

	outer := Range{Start: Position{1, 1}, End: Position{1, 10}}
	inner := Range{Start: Position{1, 3}, End: Position{1, 6}}
	after := Range{Start: Position{1, 10}, End: Position{1, 12}}

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Overlaps(inner))
	assert.False(t, outer.Overlaps(after))
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	code := NewSourceCode("a = not True\nb =\n    [ 1\n    , 2\n    ]\n")

	single := Range{Start: Position{1, 5}, End: Position{1, 13}}
	assert.Equal(t, "not True", code.Snippet(single))

	multi := Range{Start: Position{3, 5}, End: Position{5, 6}}
	assert.Equal(t, "[ 1\n    , 2\n    ]", code.Snippet(multi))

	outOfBounds := Range{Start: Position{9, 1}, End: Position{9, 2}}
	assert.Equal(t, "", code.Snippet(outOfBounds))
}

func TestIssueHasFix(t *testing.T) {
	t.Parallel()

	assert.False(t, Issue{}.HasFix())
	withFix := Issue{Fix: []Edit{ReplaceWith(Range{}, "x")}}
	assert.True(t, withFix.HasFix())
}

func TestSeverityStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "off", SeverityOff.String())

	for _, s := range []string{"error", "warning", "info", "off"} {
		sev, err := ParseSeverity(s)
		require.NoError(t, err)
		assert.Equal(t, s, sev.String())
	}

	sev, err := ParseSeverity("warn")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, sev)

	_, err = ParseSeverity("loud")
	assert.Error(t, err)
}

func TestConfigRuleYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(ConfigRule{Severity: SeverityInfo})
	require.NoError(t, err)
	assert.Equal(t, "severity: info\n", string(out))

	var rule ConfigRule
	require.NoError(t, yaml.Unmarshal([]byte("severity: off\n"), &rule))
	assert.Equal(t, SeverityOff, rule.Severity)

	assert.Error(t, yaml.Unmarshal([]byte("severity: loud\n"), &rule))
}
