package hobj

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Syntax is the syntax of higher object sources in EBNF notation, as
// understood by package golang.org/x/exp/ebnf. An optional lineend stands
// for the end of input.
const Syntax = `
root    = { object } { space } .
object  = { space } header vline { { space } vline } fline { { space } fline } .

header  = [ blanks ] ( "o" | "O" ) blanks name [ blanks ] lineend .
vline   = [ blanks ] ( "v" | "V" ) blanks number blanks number blanks number blanks number [ blanks ] lineend .
fline   = [ blanks ] ( "f" | "F" ) blanks index blanks index blanks index [ blanks ] lineend .

name    = ( letter | "_" ) { letter | digit | "_" } .
number  = [ "+" | "-" ] digit { digit } [ "." digit { digit } ] .
index   = nonzero { digit } | "0" .

lineend = [ comment | eol ] .
comment = "#" { char } [ eol ] .
space   = comment | blanks | eol .
blanks  = blank { blank } .
blank   = " " | "\t" | "\f" | "\v" .
eol     = "\n" | "\r" [ "\n" ] .

letter  = "a" … "z" | "A" … "Z" .
digit   = "0" … "9" .
nonzero = "1" … "9" .
char    = "\x00" … "\x09" | "\x0b" … "\x0c" | "\x0e" … "\U0010FFFF" .
`

// SyntaxGrammar parses Syntax and verifies it, starting from production
// 'root'.
func SyntaxGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("hobj", strings.NewReader(Syntax))
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(g, "root"); err != nil {
		return nil, err
	}
	return g, nil
}
