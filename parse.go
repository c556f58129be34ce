package mtx

import (
	"fmt"
	"strconv"
)

// parseCoord parses a base-10 integer token into the caller's coordinate
// type. Unparsable tokens are an error, never a silent zero.
func parseCoord[C Coord](tok string) (C, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
	}
	return C(n), nil
}

// parseValue parses a value token according to the header's value format:
// integer files parse strictly as integers, real files as floats.
func parseValue[V Value](tok string, format ValueFormat) (V, error) {
	if format == Integer {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
		}
		return V(n), nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
	}
	return V(f), nil
}

func compareCoord[C Coord](a, b C) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
