package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralt/bundlediff/internal/models"
	"github.com/ralt/bundlediff/internal/render"
	"github.com/ralt/bundlediff/internal/utils"
)

const (
	leftBundles = `{"data":[
		{"symbolicName":"org.example.core","name":"Core","version":"1.0","state":"ACTIVE"},
		{"symbolicName":"org.example.api","name":"API","version":"1.0","state":"ACTIVE"},
		{"symbolicName":"org.example.old","name":"Old","version":"0.1","state":"RESOLVED"}
	]}`
	rightBundles = `{"data":[
		{"symbolicName":"org.example.core","name":"Core","version":"2.0","state":"ACTIVE"},
		{"symbolicName":"org.example.api","name":"API","version":"1.0","state":"ACTIVE"},
		{"symbolicName":"org.example.new","name":"New","version":"0.2","state":"INSTALLED"}
	]}`
	leftPackages = `{"results":[
		{"name":"p","group":"g","version":"1","created":"2024-01-01T00:00:00Z","size":1024,"installed":true}
	]}`
	rightPackages = `{"results":[]}`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeReport(t *testing.T, data string) models.Report {
	t.Helper()
	var raw struct {
		Variant     string              `json:"variant"`
		Summary     models.Summary      `json:"summary"`
		Differences []models.DiffRecord `json:"differences"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return models.Report{Summary: raw.Summary, Differences: raw.Differences}
}

func TestCompareBundlesJSON(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.json", leftBundles)
	right := writeFile(t, dir, "right.json", rightBundles)

	out, err := execute(t, "", "compare", left, right, "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, models.Summary{OnlyInFirst: 1, OnlyInSecond: 1, Different: 1}, report.Summary)
	require.Len(t, report.Differences, 3)

	assert.Equal(t, "org.example.core", report.Differences[0].SymbolicName)
	assert.Equal(t, models.StatusDifferent, report.Differences[0].Status)
	assert.Equal(t, "1.0", report.Differences[0].Version1)
	assert.Equal(t, "2.0", report.Differences[0].Version2)
	assert.Equal(t, "org.example.old", report.Differences[1].SymbolicName)
	assert.Equal(t, "org.example.new", report.Differences[2].SymbolicName)
	assert.Equal(t, models.StatusOnlyInSecond, report.Differences[2].Status)
}

func TestCompareSorted(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.json", leftBundles)
	right := writeFile(t, dir, "right.json", rightBundles)

	out, err := execute(t, "", "compare", left, right, "-f", "json", "--sort", "version1", "--order", "desc")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Differences, 3)
	assert.Equal(t, "1.0", report.Differences[0].Version1)
	assert.Equal(t, "0.1", report.Differences[1].Version1)
	assert.Equal(t, "", report.Differences[2].Version1)
}

func TestComparePackagesFromStdin(t *testing.T) {
	right := writeFile(t, t.TempDir(), "right.json", rightPackages)

	out, err := execute(t, leftPackages, "compare", "-", right, "-f", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Differences, 1)
	d := report.Differences[0]
	assert.Equal(t, models.StatusOnlyInFirst, d.Status)
	assert.Equal(t, "p", d.Name)
	assert.Equal(t, "g", d.SymbolicName)
	assert.Equal(t, "1 KB", d.Size1)
	assert.Equal(t, "Installed", d.State1)
}

func TestCompareCompressedInput(t *testing.T) {
	dir := t.TempDir()
	gz, err := utils.GzipCompress([]byte(leftBundles))
	require.NoError(t, err)
	left := writeFile(t, dir, "left.json.gz", string(gz))
	right := writeFile(t, dir, "right.json", leftBundles)

	out, err := execute(t, "", "compare", left, right, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, render.NoDifferencesMessage)
}

func TestCompareTable(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.json", leftBundles)
	right := writeFile(t, dir, "right.json", rightBundles)

	out, err := execute(t, "", "compare", left, right, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Symbolic Name")
	assert.Contains(t, out, "2.0 *")
	assert.Contains(t, out, "+ Only in Second")
}

func TestCompareErrors(t *testing.T) {
	dir := t.TempDir()
	bundles := writeFile(t, dir, "bundles.json", leftBundles)
	packages := writeFile(t, dir, "packages.json", leftPackages)
	other := writeFile(t, dir, "other.json", `{"items":[]}`)
	invalid := writeFile(t, dir, "invalid.json", `{`)

	tests := []struct {
		name    string
		args    []string
		errType models.ErrorType
		msg     string
	}{
		{"mixed types", []string{bundles, packages}, models.ErrTypeMismatch, "same type of JSON"},
		{"one unclassified", []string{bundles, other}, models.ErrInvalidShape, "valid JSON in both inputs"},
		{"forced type without array", []string{bundles, packages, "--type", "package"}, models.ErrInvalidShape, "'results' array"},
		{"invalid json", []string{bundles, invalid}, models.ErrInvalidJSON, "Invalid JSON file"},
		{"missing file", []string{bundles, filepath.Join(dir, "nope.json")}, models.ErrInputRead, "nope.json"},
		{"bad format", []string{bundles, bundles, "-f", "html"}, models.ErrInvalidConfig, "unknown format"},
		{"bad sort", []string{bundles, bundles, "--sort", "color"}, models.ErrInvalidConfig, "unknown sort field"},
		{"bad order", []string{bundles, bundles, "--sort", "name", "--order", "up"}, models.ErrInvalidConfig, "unknown sort direction"},
		{"bad type", []string{bundles, bundles, "--type", "rpm"}, models.ErrInvalidConfig, "unknown type"},
		{"two stdin", []string{"-", "-"}, models.ErrInvalidConfig, "standard input"},
		{"key without output", []string{bundles, bundles, "--gpg-key", "key.asc"}, models.ErrInvalidConfig, "--gpg-key requires --output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", append([]string{"compare"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, models.IsErrorType(err, tt.errType), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCompareWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.json", leftBundles)
	right := writeFile(t, dir, "right.json", rightBundles)
	output := filepath.Join(dir, "reports", "diff.yaml")

	out, err := execute(t, "", "compare", left, right, "-f", "yaml", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "variant: bundle")
	assert.Contains(t, string(data), "status: Only in Second")
}

func TestCompareConfigFile(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.json", leftBundles)
	right := writeFile(t, dir, "right.json", rightBundles)
	cfg := writeFile(t, dir, "bundlediff.yaml", "format: json\nsort: symbolicName\n")

	out, err := execute(t, "", "--config", cfg, "compare", left, right)
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Differences, 3)
	assert.Equal(t, "org.example.core", report.Differences[0].SymbolicName)
	assert.Equal(t, "org.example.new", report.Differences[1].SymbolicName)
	assert.Equal(t, "org.example.old", report.Differences[2].SymbolicName)

	// Flags win over the file.
	out, err = execute(t, "", "--config", cfg, "compare", left, right, "-f", "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "variant: bundle"))
}

func TestCompareMissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.json", leftBundles)

	_, err := execute(t, "", "--config", filepath.Join(dir, "missing.yaml"), "compare", left, left)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrInvalidConfig))
}

func TestSortState(t *testing.T) {
	assert.Equal(t, "", sortState(&models.CompareConfig{}).Field)

	s := sortState(&models.CompareConfig{SortField: "name", Order: "desc"})
	assert.Equal(t, "name", s.Field)
	assert.Equal(t, "desc", s.Direction.String())

	s = sortState(&models.CompareConfig{SortField: "name", Order: "asc"})
	assert.Equal(t, "asc", s.Direction.String())
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()
	bundles := writeFile(t, dir, "bundles.json", leftBundles)
	packages := writeFile(t, dir, "packages.json", leftPackages)
	other := writeFile(t, dir, "other.json", `{"items":[]}`)
	invalid := writeFile(t, dir, "invalid.json", `{`)

	out, err := execute(t, "", "sniff", bundles, packages, other, invalid)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		bundles + ": Valid Bundle JSON",
		packages + ": Valid Package JSON",
		other + ": Invalid JSON",
		invalid + ": Invalid JSON",
	}, "\n")+"\n", out)

	_, err = execute(t, "", "sniff", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
