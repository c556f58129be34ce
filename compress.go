package mtx

import "golang.org/x/exp/slices"

// byRow and byCol pick the compression axis: CSR sorts on (row, col), CSC on
// (col, row).
func byRow[C Coord, V Value](nz nonzero[C, V]) (major, minor C) { return nz.row, nz.col }
func byCol[C Coord, V Value](nz nonzero[C, V]) (major, minor C) { return nz.col, nz.row }

// compress folds an unordered COO accumulator into offset/index/value arrays
// along the chosen major axis. The sort is stable, so entries with equal
// coordinates keep their arrival order. Empty major slices, leading or
// trailing, show up as repeated offsets.
func compress[C Coord, V Value](nonzeros []nonzero[C, V], majorDim C, key func(nonzero[C, V]) (C, C)) (offsets, indices []C, values []V) {
	slices.SortStableFunc(nonzeros, func(a, b nonzero[C, V]) int {
		aMajor, aMinor := key(a)
		bMajor, bMinor := key(b)
		if c := compareCoord(aMajor, bMajor); c != 0 {
			return c
		}
		return compareCoord(aMinor, bMinor)
	})

	offsets = make([]C, 1, int(majorDim)+1)
	indices = make([]C, 0, len(nonzeros))
	values = make([]V, 0, len(nonzeros))

	cursor := C(0)
	for _, nz := range nonzeros {
		major, minor := key(nz)
		for cursor < major {
			offsets = append(offsets, C(len(indices)))
			cursor++
		}
		indices = append(indices, minor)
		values = append(values, nz.value)
	}
	for cursor < majorDim {
		offsets = append(offsets, C(len(indices)))
		cursor++
	}
	return offsets, indices, values
}
