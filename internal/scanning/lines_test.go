package scanning

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix",
			input: "a\nb\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "no final newline",
			input: "a\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "windows",
			input: "a\r\nb\r\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "old mac",
			input: "a\rb\r",
			want:  []string{"a", "b"},
		},
		{
			name:  "mixed with blanks",
			input: "a\n\r\n\rb",
			want:  []string{"a", "", "", "b"},
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One byte reads make every "\r" land at the end of a buffer.
			sc := newLineScanner(iotest.OneByteReader(strings.NewReader(tt.input)))

			var got []string
			for sc.Scan() {
				got = append(got, sc.Text())
			}
			require.NoError(t, sc.Err())
			assert.Equal(t, tt.want, got)
		})
	}
}
