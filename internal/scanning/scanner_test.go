package scanning

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/stylecheck/internal/report"
	"github.com/sirkon/stylecheck/internal/rules"
)

const sample = `import os;


def main():
   x = 1 # TODO: rename
    print("a;b")



    return x
`

func TestScanner_ScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	var c report.Collector
	require.NoError(t, New(&c, nil).ScanFile(path))

	type hit struct {
		line int
		rule rules.Rule
	}
	var got []hit
	for _, v := range c.Violations() {
		assert.Equal(t, path, v.Path)
		assert.Equal(t, v.Rule.Description(), v.Message)
		got = append(got, hit{line: v.Line, rule: v.Rule})
	}

	assert.Equal(t, []hit{
		{line: 1, rule: rules.Semicolon()},
		{line: 5, rule: rules.Indentation()},
		{line: 5, rule: rules.InlineCommentSpacing()},
		{line: 5, rule: rules.Todo()},
		{line: 10, rule: rules.BlankLines()},
	}, got)
	assert.Empty(t, c.MissingPaths())
}

func TestScanner_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.py")

	var buf bytes.Buffer
	require.NoError(t, New(report.NewPrinter(&buf), nil).ScanFile(path))
	assert.Equal(t, "File "+path+" not found\n", buf.String())
}

func TestScanner_OpenError(t *testing.T) {
	var c report.Collector
	err := New(&c, nil).ScanFile(t.TempDir())
	if err == nil {
		// Some platforms allow opening a directory, reading it fails then.
		t.Skip("directory could be opened")
	}
	assert.Empty(t, c.Violations())
	assert.Empty(t, c.MissingPaths())
}

func TestScanner_Scan_TrailingWhitespace(t *testing.T) {
	// 79 characters of code followed by spaces is still within the limit.
	line := strings.Repeat("x", 79) + "      \r\n"

	var c report.Collector
	require.NoError(t, New(&c, nil).Scan("in.py", strings.NewReader(line)))
	assert.Empty(t, c.Violations())
}

func TestScanner_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	run := func() string {
		var buf bytes.Buffer
		p := report.NewPrinter(&buf)
		require.NoError(t, New(p, nil).ScanFile(path))
		require.NoError(t, p.Err())
		return buf.String()
	}

	first := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, run())
}
