/*
Package hobj reads higher objects, i.e. 4-dimensional polytopes, from a
text description.

A source contains any number of object blocks. Every block starts with a
header naming the object, followed by one or more vertex lines and one or more
facet lines:

    # a 4-simplex, degenerated into 3 dimensions
    o Simplex
    v  1 -1 -1 -1
    v -1  1 -1 -1
    v -1 -1  1 -1
    f 0 1 2          # indices are 0-based

Vertices carry four coordinates x, y, z and w. Facets are triangles
referencing vertices by index. Keywords are case-insensitive, '#' starts a
comment extending to the end of the line. The complete syntax is available
in EBNF notation as Syntax.

Read parses a source and returns a Collection, mapping object names to
higher objects:

    objects, err := hobj.Read(source)
    if errors.Is(err, hobj.ErrInvalidFormat) {
        …
    }

Errors in the format do not carry line information. A FormatError reports
the furthest position the parser has reached, which usually is close to
the offending input.

Configuration

By default, an object re-defined later in a source silently replaces the
earlier one. Option RejectDuplicates changes this. If the option is not
given, the global configuration key 'hobj-reject-duplicates' is consulted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hobj

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cube4d.hobj'.
func tracer() tracing.Trace {
	return tracing.Select("cube4d.hobj")
}

// Errors returned by Read and by the constructors of higher objects.
var (
	ErrInvalidFormat = errors.New("invalid higher object source")
	ErrFacetIndex    = errors.New("facet index out of range")
	ErrDuplicateName = errors.New("duplicate object name")
)
