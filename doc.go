/*
Package cube4d reads descriptions of 4-dimensional polytopes ("higher objects").

A higher object is a named list of 4D vertices plus triangular facets. Sources
are plain text, parsed by a small backtracking parser-combinator framework.
Package structure is as follows:

■ peg: Package peg implements a backtracking (PEG-style) parser-combinator
framework: a symbol cursor with a mark stack, a set of combinators and a fluent
grammar builder.

■ scanner: Package scanner provides a tokenizer interface and an adapter for
lexmachine DFA lexers.

■ hobj: Package hobj implements the grammar for higher-object sources and
builds the polytope models from parse trees.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cube4d
