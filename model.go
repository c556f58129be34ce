package mtx // import "mtx"

import "golang.org/x/exp/constraints"

// Coord is the set of integer types usable as row and column indices.
type Coord interface {
	constraints.Integer
}

// Value is the set of numeric types usable as stored entry values.
type Value interface {
	constraints.Integer | constraints.Float
}

// Symmetry is the symmetry flag of the format line.
type Symmetry int

const (
	General Symmetry = iota
	Symmetric
)

// ValueFormat is the value encoding of the format line. Pattern files carry
// no value field; every listed position has the implicit value 1.
type ValueFormat int

const (
	Real ValueFormat = iota
	Integer
	Pattern
)

// Header holds the decoded format and dimension lines of a coordinate file.
type Header[C Coord] struct {
	Symmetry    Symmetry
	Format      ValueFormat
	NumRows     C
	NumCols     C
	NumNonzeros C // declared data line count, before symmetry expansion
}

// nonzero is one COO entry, 0-indexed after the reader's index shift.
type nonzero[C Coord, V Value] struct {
	row   C
	col   C
	value V
}

// CSRMatrix is a sparse matrix in compressed sparse row form. RowOffsets has
// length NumRows+1, is non-decreasing, starts at 0 and ends at NumNonzeros;
// row i owns ColIndices[RowOffsets[i]:RowOffsets[i+1]], sorted ascending.
//
// Duplicate coordinates in the input stay separate entries, in arrival
// order. Consumers that want summed multiplicities fold them afterwards.
type CSRMatrix[C Coord, V Value] struct {
	NumRows     C
	NumCols     C
	NumNonzeros C // stored entry count, after symmetry expansion
	RowOffsets  []C
	ColIndices  []C
	Values      []V
}

// CSCMatrix is a sparse matrix in compressed sparse column form, the
// column-major mirror of CSRMatrix.
type CSCMatrix[C Coord, V Value] struct {
	NumRows     C
	NumCols     C
	NumNonzeros C
	ColOffsets  []C
	RowIndices  []C
	Values      []V
}
