package mtx

// MulVec computes dst = M*x. dst must have length NumRows and x length
// NumCols; a mismatch panics.
func (m *CSRMatrix[C, V]) MulVec(dst, x []V) {
	if len(x) != int(m.NumCols) {
		panic("mtx: x length does not match NumCols")
	}
	if len(dst) != int(m.NumRows) {
		panic("mtx: dst length does not match NumRows")
	}

	for i := C(0); i < m.NumRows; i++ {
		var sum V
		for k := m.RowOffsets[i]; k < m.RowOffsets[i+1]; k++ {
			sum += m.Values[k] * x[m.ColIndices[k]]
		}
		dst[i] = sum
	}
}

// MulVec computes dst = M*x by scattering one column at a time.
func (m *CSCMatrix[C, V]) MulVec(dst, x []V) {
	if len(x) != int(m.NumCols) {
		panic("mtx: x length does not match NumCols")
	}
	if len(dst) != int(m.NumRows) {
		panic("mtx: dst length does not match NumRows")
	}

	for i := range dst {
		dst[i] = 0
	}
	for j := C(0); j < m.NumCols; j++ {
		xj := x[j]
		for k := m.ColOffsets[j]; k < m.ColOffsets[j+1]; k++ {
			dst[m.RowIndices[k]] += m.Values[k] * xj
		}
	}
}
