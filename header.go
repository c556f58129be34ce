package mtx

import (
	"bufio"
	"fmt"
	"strings"
)

const banner = "%%MatrixMarket"

func parseValueFormat(tok string) (ValueFormat, error) {
	switch tok {
	case "real":
		return Real, nil
	case "integer":
		return Integer, nil
	case "pattern":
		return Pattern, nil
	}
	return 0, fmt.Errorf("%w: unknown value format %q", ErrFormat, tok)
}

func parseSymmetry(tok string) (Symmetry, error) {
	switch tok {
	case "general":
		return General, nil
	case "symmetric":
		return Symmetric, nil
	}
	return 0, fmt.Errorf("%w: unknown symmetry %q", ErrFormat, tok)
}

// readHeader consumes the format line, any comment lines, and the dimension
// line, leaving the scanner positioned at the first data line.
func readHeader[C Coord](scanner *bufio.Scanner) (Header[C], error) {
	var h Header[C]

	if !scanner.Scan() {
		return h, fmt.Errorf("%w: empty file", ErrFormat)
	}
	format := newTokens(scanner.Text(), ' ')
	if format.count() != 5 {
		return h, fmt.Errorf("%w: ill-shaped format line", ErrFormat)
	}
	if tok := format.pop(); tok != banner {
		return h, fmt.Errorf("%w: missing %s banner", ErrFormat, banner)
	}
	if tok := format.pop(); tok != "matrix" {
		return h, fmt.Errorf("%w: unsupported object %q, only matrix is supported", ErrFormat, tok)
	}
	if tok := format.pop(); tok != "coordinate" {
		return h, fmt.Errorf("%w: unsupported format %q, only coordinate matrices are supported", ErrFormat, tok)
	}

	var err error
	if h.Format, err = parseValueFormat(format.pop()); err != nil {
		return h, err
	}
	if h.Symmetry, err = parseSymmetry(format.pop()); err != nil {
		return h, err
	}

	// Comment lines run from the format line to the dimension line.
	var line string
	for {
		if !scanner.Scan() {
			return h, fmt.Errorf("%w: missing dimension line", ErrFormat)
		}
		line = scanner.Text()
		if !strings.HasPrefix(line, "%") {
			break
		}
	}

	size := newTokens(line, ' ')
	if size.count() != 3 {
		return h, fmt.Errorf("%w: ill-shaped dimension line", ErrFormat)
	}
	if h.NumRows, err = parseCoord[C](size.pop()); err != nil {
		return h, err
	}
	if h.NumCols, err = parseCoord[C](size.pop()); err != nil {
		return h, err
	}
	if h.NumNonzeros, err = parseCoord[C](size.pop()); err != nil {
		return h, err
	}
	if h.NumRows < 0 || h.NumCols < 0 || h.NumNonzeros < 0 {
		return h, fmt.Errorf("%w: negative dimension", ErrFormat)
	}
	return h, nil
}
