// Package input reads typed answers from the operator.
//
// Two policies exist. StrictParse fails on the first line that is not an
// integer. RetryingParse re-prompts for blank or non-numeric lines until a
// valid integer arrives. Both return io.EOF wrapped when input ends.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ErrNotANumber is returned by StrictParse for non-integer input.
var ErrNotANumber = errors.New("answer is not a number")

// Rejection describes why RetryingParse discarded a line.
type Rejection int

const (
	RejectedEmpty Rejection = iota
	RejectedNotNumber
)

// Reader asks one question and returns the parsed integer answer.
type Reader interface {
	ReadAnswer(prompt string) (int, error)
}

type lineReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newLineReader(in io.Reader, out io.Writer) lineReader {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return lineReader{in: br, out: out}
}

// readLine writes prompt and returns the next line without its terminator.
// A final line without a newline is returned before io.EOF.
func (r lineReader) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// normalize folds full-width characters (as typed through a Japanese input
// method) to their ASCII forms and trims surrounding whitespace.
func normalize(line string) string {
	return strings.TrimSpace(width.Narrow.String(line))
}

// StrictParse accepts one line per question and fails on anything that is
// not an integer. Surrounding whitespace is ignored and full-width digits
// are accepted.
type StrictParse struct {
	lineReader
}

// NewStrictParse creates a StrictParse reading from in and prompting on out.
func NewStrictParse(in io.Reader, out io.Writer) *StrictParse {
	return &StrictParse{lineReader: newLineReader(in, out)}
}

func (s *StrictParse) ReadAnswer(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(normalize(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotANumber, err)
	}
	return n, nil
}

// RetryingParse re-prompts with the same prompt until a line parses as an
// integer. There is no attempt limit.
type RetryingParse struct {
	lineReader
	reject func(Rejection)
}

// NewRetryingParse creates a RetryingParse. reject is called once for every
// discarded line and is expected to tell the operator why.
func NewRetryingParse(in io.Reader, out io.Writer, reject func(Rejection)) *RetryingParse {
	if reject == nil {
		reject = func(Rejection) {}
	}
	return &RetryingParse{lineReader: newLineReader(in, out), reject: reject}
}

func (r *RetryingParse) ReadAnswer(prompt string) (int, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}

		value := normalize(line)
		if value == "" {
			r.reject(RejectedEmpty)
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			r.reject(RejectedNotNumber)
			continue
		}
		return n, nil
	}
}

var (
	_ Reader = (*StrictParse)(nil)
	_ Reader = (*RetryingParse)(nil)
)
