package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tt "github.com/elmlint/elin/internal/types"
)

type mockLintEngine struct {
	mock.Mock
}

func (m *mockLintEngine) Run(filePath string) ([]tt.Issue, error) {
	args := m.Called(filePath)
	issues, _ := args.Get(0).([]tt.Issue)
	return issues, args.Error(1)
}

func (m *mockLintEngine) RunSource(filename, source string) ([]tt.Issue, error) {
	args := m.Called(filename, source)
	issues, _ := args.Get(0).([]tt.Issue)
	return issues, args.Error(1)
}

func (m *mockLintEngine) IgnoreRule(rule string) {
	m.Called(rule)
}

func sampleIssue(filename string) tt.Issue {
	return tt.Issue{
		Rule:     "simplify-boolean",
		Filename: filename,
		Message:  "Part of the expression is unnecessary",
		Range: tt.Range{
			Start: tt.Position{Line: 3, Column: 5},
			End:   tt.Position{Line: 3, Column: 14},
		},
	}
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	engine := new(mockLintEngine)
	engine.On("Run", "sample.elm").Return([]tt.Issue{sampleIssue("sample.elm")}, nil)

	issues, err := ProcessFile(engine, "sample.elm")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "sample.elm", issues[0].Filename)
	engine.AssertExpectations(t)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.elm")
	require.NoError(t, os.WriteFile(path, []byte("module Test exposing (a)\n\na = x || True\n"), 0o644))

	engine := new(mockLintEngine)
	engine.On("Run", path).Return([]tt.Issue{sampleIssue(path)}, nil)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
	engine.AssertExpectations(t)
}

func TestProcessPathSkipsOtherExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	engine := new(mockLintEngine)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
	engine.AssertNotCalled(t, "Run", mock.Anything)
}

func TestProcessPathMissing(t *testing.T) {
	t.Parallel()

	engine := new(mockLintEngine)
	_, err := ProcessPath(context.Background(), nil, engine, filepath.Join(t.TempDir(), "nope"), ProcessFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing")
}

func TestProcessSources(t *testing.T) {
	t.Parallel()

	first := "module A exposing (a)\n\na = 1\n"
	second := "module B exposing (b)\n\nb = not True\n"

	engine := new(mockLintEngine)
	engine.On("RunSource", "", first).Return(nil, nil)
	engine.On("RunSource", "", second).Return([]tt.Issue{sampleIssue("")}, nil)

	issues, err := ProcessSources(context.Background(), nil, engine, []string{first, second}, ProcessSource)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
	engine.AssertExpectations(t)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()

	assert.True(t, hasDesiredExtension("src/Main.elm"))
	assert.False(t, hasDesiredExtension("src/main.go"))
	assert.False(t, hasDesiredExtension("Main.elm.bak"))
	assert.False(t, hasDesiredExtension("Main"))
}

func TestParseConfigurationFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".elin.yaml")
	content := `name: sample
rules:
  simplify-boolean:
    severity: off
  simplify-platform:
    severity: error
ignore-case-types:
  - Maybe.Maybe
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := parseConfigurationFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", config.Name)
	assert.Equal(t, tt.SeverityOff, config.Rules["simplify-boolean"].Severity)
	assert.Equal(t, tt.SeverityError, config.Rules["simplify-platform"].Severity)
	assert.Equal(t, []string{"Maybe.Maybe"}, config.IgnoreCaseTypes)

	// an empty path or a missing file falls back to the defaults
	config, err = parseConfigurationFile("")
	require.NoError(t, err)
	assert.Empty(t, config.Rules)

	config, err = parseConfigurationFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, config.Rules)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rules: notamap\n"), 0o644))
	_, err = parseConfigurationFile(bad)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)
	require.NotNil(t, engine)

	issues, err := engine.RunSource("test.elm", "module Test exposing (a)\n\na = x || True\n")
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestNewAppliesConfiguration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".elin.yaml")
	content := `rules:
  simplify-boolean:
    severity: off
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	engine, err := New(path)
	require.NoError(t, err)

	issues, err := engine.RunSource("test.elm", "module Test exposing (a)\n\na = x || True\n")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestNewRejectsUnknownIgnoredTypes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".elin.yaml")
	content := `ignore-case-types:
  - Bogus.Type
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := New(path)
	require.Error(t, err)
	assert.EqualError(t, err, "Could not find type names: `Bogus.Type`")
}
