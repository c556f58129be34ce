package mtx

import "strings"

// tokens is one split input line with a read cursor. The field list is fixed
// at construction; only the cursor moves. Splitting keeps empty segments, so
// repeated separators produce empty tokens and fail the count checks in the
// parsing stages.
type tokens struct {
	fields []string
	next   int
}

func newTokens(line string, sep byte) *tokens {
	return &tokens{fields: strings.Split(line, string(sep))}
}

func (t *tokens) count() int {
	return len(t.fields) - t.next
}

func (t *tokens) peek() string {
	if t.count() == 0 {
		panic("mtx: peek on empty token list")
	}
	return t.fields[t.next]
}

func (t *tokens) pop() string {
	if t.count() == 0 {
		panic("mtx: pop on empty token list")
	}
	tok := t.fields[t.next]
	t.next++
	return tok
}
