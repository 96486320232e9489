package scanning

import (
	"bufio"
	"bytes"
	"io"
)

// maxLineSize limits the length of a single line in bytes.
const maxLineSize = 64 << 20

// newLineScanner returns a scanner splitting text with universal newlines.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(splitLines)
	return sc
}

// splitLines is a bufio.SplitFunc treating "\n", "\r\n" and "\r" as line terminators.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		default:
			// Cannot tell "\r" from "\r\n" yet.
			return 0, nil, nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
