package mtx

import (
	"fmt"
	"io"
)

func (s Symmetry) String() string {
	if s == Symmetric {
		return "symmetric"
	}
	return "general"
}

func (f ValueFormat) String() string {
	switch f {
	case Integer:
		return "integer"
	case Pattern:
		return "pattern"
	}
	return "real"
}

func (h Header[C]) String() string {
	return fmt.Sprintf("%d x %d %s %s matrix, %d declared nonzeros",
		int64(h.NumRows), int64(h.NumCols), h.Format, h.Symmetry, int64(h.NumNonzeros))
}

// Dump writes one "row col value" line per stored entry, 0-indexed, in
// row-major order.
func (m *CSRMatrix[C, V]) Dump(w io.Writer) error {
	for i := C(0); i < m.NumRows; i++ {
		for k := m.RowOffsets[i]; k < m.RowOffsets[i+1]; k++ {
			if _, err := fmt.Fprintf(w, "%d %d %v\n", int64(i), int64(m.ColIndices[k]), m.Values[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dump writes one "row col value" line per stored entry, 0-indexed, in
// column-major order.
func (m *CSCMatrix[C, V]) Dump(w io.Writer) error {
	for j := C(0); j < m.NumCols; j++ {
		for k := m.ColOffsets[j]; k < m.ColOffsets[j+1]; k++ {
			if _, err := fmt.Fprintf(w, "%d %d %v\n", int64(m.RowIndices[k]), int64(j), m.Values[k]); err != nil {
				return err
			}
		}
	}
	return nil
}
