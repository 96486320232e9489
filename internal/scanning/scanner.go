package scanning

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sirkon/stylecheck/internal/checks"
	"github.com/sirkon/stylecheck/internal/report"
)

// Scanner checks files one at a time and passes results to its sink.
type Scanner struct {
	sink   report.Sink
	logger *slog.Logger
}

// New is [Scanner] constructor.
func New(sink report.Sink, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scanner{
		sink:   sink,
		logger: logger,
	}
}

// ScanFile checks the file at the given path.
//
// A missing file is reported to the sink and is not an error. Other I/O
// failures are returned, output produced before them stays in place.
func (s *Scanner) ScanFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.sink.Missing(path)
			return nil
		}

		return fmt.Errorf("open file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Debug("failed to close file", "path", path, "error", err)
		}
	}()

	s.logger.Debug("scanning file", "path", path)
	return s.Scan(path, file)
}

// Scan checks text from r reporting violations under the given path.
func (s *Scanner) Scan(path string, r io.Reader) error {
	var (
		state  State
		number int
	)
	emit := func(f checks.Finding) {
		s.sink.Report(report.Violation{
			Path:    path,
			Line:    number,
			Rule:    f.Rule,
			Message: f.Message,
		})
	}

	sc := newLineScanner(r)
	for sc.Scan() {
		number++
		state = state.Step(checks.Line{
			Text:   checks.TrimTrailing(sc.Text()),
			Number: number,
		}, emit)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", number+1, err)
	}

	return nil
}
