package mtx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// DecodeCSR reads a Matrix Market coordinate file into compressed sparse row
// form. C is the caller's index width, V the stored value type. Files ending
// in .gz are decompressed on the fly.
func DecodeCSR[C Coord, V Value](path string) (*CSRMatrix[C, V], error) {
	header, nonzeros, err := readFile[C, V](path)
	if err != nil {
		return nil, err
	}

	offsets, indices, values := compress(nonzeros, header.NumRows, byRow[C, V])
	return &CSRMatrix[C, V]{
		NumRows:     header.NumRows,
		NumCols:     header.NumCols,
		NumNonzeros: C(len(values)),
		RowOffsets:  offsets,
		ColIndices:  indices,
		Values:      values,
	}, nil
}

// DecodeCSC is DecodeCSR's column-major counterpart.
func DecodeCSC[C Coord, V Value](path string) (*CSCMatrix[C, V], error) {
	header, nonzeros, err := readFile[C, V](path)
	if err != nil {
		return nil, err
	}

	offsets, indices, values := compress(nonzeros, header.NumCols, byCol[C, V])
	return &CSCMatrix[C, V]{
		NumRows:     header.NumRows,
		NumCols:     header.NumCols,
		NumNonzeros: C(len(values)),
		ColOffsets:  offsets,
		RowIndices:  indices,
		Values:      values,
	}, nil
}

func readFile[C Coord, V Value](path string) (Header[C], []nonzero[C, V], error) {
	f, err := os.Open(path)
	if err != nil {
		return Header[C]{}, nil, fmt.Errorf("mtx: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return Header[C]{}, nil, fmt.Errorf("mtx: open %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	scanner := bufio.NewScanner(r)
	header, err := readHeader[C](scanner)
	if err != nil {
		return Header[C]{}, nil, err
	}
	nonzeros, err := readNonzeros[C, V](scanner, header)
	if err != nil {
		return Header[C]{}, nil, err
	}
	return header, nonzeros, nil
}

// readNonzeros consumes exactly header.NumNonzeros data lines, accumulating
// COO entries. Off-diagonal entries of symmetric files are mirrored here and
// nowhere else, so the accumulator may grow to twice the declared count.
// Duplicate coordinates stay separate entries; nothing is summed.
func readNonzeros[C Coord, V Value](scanner *bufio.Scanner, header Header[C]) ([]nonzero[C, V], error) {
	nonzeros := make([]nonzero[C, V], 0, int(header.NumNonzeros))
	for i := C(0); i < header.NumNonzeros; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: unexpected end of file after %d data lines", ErrFormat, int64(i))
		}
		line := newTokens(scanner.Text(), ' ')

		want := 3
		if header.Format == Pattern {
			want = 2
		}
		if line.count() != want {
			return nil, fmt.Errorf("%w: ill-shaped data line %q", ErrFormat, scanner.Text())
		}

		row, err := parseCoord[C](line.pop())
		if err != nil {
			return nil, err
		}
		col, err := parseCoord[C](line.pop())
		if err != nil {
			return nil, err
		}
		value := V(1)
		if header.Format != Pattern {
			if value, err = parseValue[V](line.pop(), header.Format); err != nil {
				return nil, err
			}
		}

		// Bounds are checked on the 1-indexed values, before the shift.
		if row < 1 || row > header.NumRows {
			return nil, fmt.Errorf("%w: row %d out of bounds [1,%d]", ErrFormat, int64(row), int64(header.NumRows))
		}
		if col < 1 || col > header.NumCols {
			return nil, fmt.Errorf("%w: col %d out of bounds [1,%d]", ErrFormat, int64(col), int64(header.NumCols))
		}
		row--
		col--

		nonzeros = append(nonzeros, nonzero[C, V]{row, col, value})
		if header.Symmetry == Symmetric && row != col {
			nonzeros = append(nonzeros, nonzero[C, V]{col, row, value})
		}
	}
	return nonzeros, nil
}
