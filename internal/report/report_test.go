package report

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/stylecheck/internal/rules"
)

func TestPrinter_Format(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Report(Violation{
		Path:    "pkg/main.py",
		Line:    3,
		Rule:    rules.Semicolon(),
		Message: rules.Semicolon().Description(),
	})
	p.Missing("nothere.py")
	p.Report(Violation{
		Path:    "pkg/main.py",
		Line:    10,
		Rule:    rules.BlankLines(),
		Message: rules.BlankLines().Description(),
	})

	require.NoError(t, p.Err())
	assert.Equal(t,
		"pkg/main.py: Line 3: S003 Unnecessary semicolon after a statement\n"+
			"File nothere.py not found\n"+
			"pkg/main.py: Line 10: S006 More than two blank lines preceding a code line\n",
		buf.String(),
	)
}

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk is full")
}

func TestPrinter_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w)

	p.Missing("a.py")
	p.Missing("b.py")

	require.Error(t, p.Err())
	assert.Contains(t, p.Err().Error(), "disk is full")
	assert.Equal(t, 1, w.calls)
}

func TestCollector_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		c  Collector
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Report(Violation{Path: "x.py", Line: i + 1, Rule: rules.TooLong()})
		}(i)
	}
	wg.Wait()

	vs := c.Violations()
	require.Len(t, vs, n)

	vs[0].Path = "changed"
	assert.NotEqual(t, "changed", c.Violations()[0].Path, "Violations() must return a copy")
}
