package peg

// Source is an immutable, finite sequence of symbols with random access.
type Source[S any] interface {
	At(pos int) S // symbol at position 0 ≤ pos < Len()
	Len() int     // number of symbols
}

// RuneSource is a source of runes, created from a string.
// Positions are rune indices, not byte offsets.
type RuneSource struct {
	runes []rune
}

var _ Source[rune] = (*RuneSource)(nil)

// NewRuneSource creates a source from a string.
func NewRuneSource(s string) *RuneSource {
	return &RuneSource{runes: []rune(s)}
}

// At is part of interface Source.
func (src *RuneSource) At(pos int) rune {
	return src.runes[pos]
}

// Len is part of interface Source.
func (src *RuneSource) Len() int {
	return len(src.runes)
}

// Slice returns the text between rune positions begin and end.
func (src *RuneSource) Slice(begin, end int) string {
	return string(src.runes[begin:end])
}

// SliceSource is a source over a slice of arbitrary symbols.
type SliceSource[S any] []S

// NewSliceSource wraps a slice of symbols. The slice must not be modified
// while a parse is running.
func NewSliceSource[S any](syms []S) SliceSource[S] {
	return SliceSource[S](syms)
}

// At is part of interface Source.
func (src SliceSource[S]) At(pos int) S {
	return src[pos]
}

// Len is part of interface Source.
func (src SliceSource[S]) Len() int {
	return len(src)
}
